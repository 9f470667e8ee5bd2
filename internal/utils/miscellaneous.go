package utils

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

func MustSucceed(err error) {
	if err != nil {
		panic(err)
	}
}

func CopyMap[K comparable, V any](m map[K]V) map[K]V {
	mapCopy := make(map[K]V, len(m))
	for k, v := range m {
		mapCopy[k] = v
	}

	return mapCopy
}
