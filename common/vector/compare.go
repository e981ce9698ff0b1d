package vector

import "cmp"

// EqualFunc 长度相同且对应元素均满足 eq
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	if v.size != other.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !eq(v.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// CompareFunc 按字典序比较 公共前缀相同时较短者较小
func (v *Vector[T]) CompareFunc(other *Vector[T], compare func(a, b T) int) int {
	n := min(v.size, other.size)
	for i := 0; i < n; i++ {
		if c := compare(v.data[i], other.data[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(v.size, other.size)
}

// Equal 逐元素相等
func Equal[T comparable](a, b *Vector[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// Compare 字典序比较 a < b 返回 -1 相等返回 0 a > b 返回 1
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return a.CompareFunc(b, cmp.Compare[T])
}

// CompareSize 仅比较元素个数
func CompareSize[T any](a, b *Vector[T]) int {
	return cmp.Compare(a.size, b.size)
}
