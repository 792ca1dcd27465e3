package service

import "iter"

// Divide разбивает список на пачки не больше n элементов, сохраняя порядок.
// Последовательность ленивая: новая итерация начинается только повторным вызовом.
func Divide[T any](list []T, n int) iter.Seq[[]T] {
	if n <= 0 {
		panic("service: chunk size must be positive")
	}
	return func(yield func([]T) bool) {
		for i := 0; i < len(list); i += n {
			end := min(i+n, len(list))
			if !yield(list[i:end:end]) {
				return
			}
		}
	}
}
