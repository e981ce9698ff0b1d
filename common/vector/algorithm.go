package vector

import "cmp"

const (
	// 长度不超过该值的区间直接插入排序
	insertionSortThreshold = 12
)

// SortFunc 稳定排序 compare 返回负数/零/正数 表示 a 小于/等于/大于 b
//
// 自顶向下归并排序 O(n log n) 辅助空间 ceil(n/2)
// 每次合并只使用与左半区间等长的辅助空间
func (v *Vector[T]) SortFunc(compare func(a, b T) int) {
	if v.size < 2 {
		return
	}
	data := v.data[:v.size]
	aux := make([]T, (len(data)+1)/2)
	mergeSort(data, aux, compare)
	clear(aux)
}

// Sort 按 cmp.Compare 升序稳定排序
func Sort[T cmp.Ordered](v *Vector[T]) {
	v.SortFunc(cmp.Compare[T])
}

// IsSortedFunc 是否按 compare 非降序
func (v *Vector[T]) IsSortedFunc(compare func(a, b T) int) bool {
	for i := 1; i < v.size; i++ {
		if compare(v.data[i-1], v.data[i]) > 0 {
			return false
		}
	}
	return true
}

// mergeSort 对 data 排序 len(aux) >= ceil(len(data)/2)
func mergeSort[T any](data, aux []T, compare func(a, b T) int) {
	if len(data) <= insertionSortThreshold {
		insertionSort(data, compare)
		return
	}
	mid := len(data) / 2
	mergeSort(data[:mid], aux, compare)
	mergeSort(data[mid:], aux, compare)
	// 已经有序 无需合并
	if compare(data[mid-1], data[mid]) <= 0 {
		return
	}
	merge(data, mid, aux[:mid], compare)
}

// merge 合并 data[:mid] 与 data[mid:] 两个有序区间
// 左区间先拷贝到 left 右区间原地读取 相等时优先取左侧以保持稳定
func merge[T any](data []T, mid int, left []T, compare func(a, b T) int) {
	copy(left, data[:mid])
	i, j, k := 0, mid, 0
	for i < len(left) && j < len(data) {
		if compare(data[j], left[i]) < 0 {
			data[k] = data[j]
			j++
		} else {
			data[k] = left[i]
			i++
		}
		k++
	}
	// 右区间剩余部分已在原位
	copy(data[k:], left[i:])
}

// insertionSort 稳定插入排序
func insertionSort[T any](data []T, compare func(a, b T) int) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && compare(data[j], data[j-1]) < 0; j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

// BinarySearchFunc 在按 compare 升序的 Vector 中二分查找 target
// 返回命中的下标 未找到返回 -1
func (v *Vector[T]) BinarySearchFunc(target T, compare func(a, b T) int) int {
	low, high := 0, v.size-1
	for low <= high {
		middle := low + (high-low)/2
		switch c := compare(v.data[middle], target); {
		case c == 0:
			return middle
		case c < 0:
			low = middle + 1
		default:
			high = middle - 1
		}
	}
	return -1
}

// BinarySearch 在升序 Vector 中二分查找 x 未找到返回 -1
func BinarySearch[T cmp.Ordered](v *Vector[T], x T) int {
	return v.BinarySearchFunc(x, cmp.Compare[T])
}

// IndexFunc 第一个满足 predicate 的下标 不存在返回 -1
func (v *Vector[T]) IndexFunc(predicate func(T, int) bool) int {
	for i := 0; i < v.size; i++ {
		if predicate(v.data[i], i) {
			return i
		}
	}
	return -1
}

// LastIndexFunc 最后一个满足 predicate 的下标 不存在返回 -1
func (v *Vector[T]) LastIndexFunc(predicate func(T, int) bool) int {
	for i := v.size - 1; i >= 0; i-- {
		if predicate(v.data[i], i) {
			return i
		}
	}
	return -1
}

// FindFunc 第一个满足 predicate 的元素指针 不存在返回 nil
func (v *Vector[T]) FindFunc(predicate func(T, int) bool) *T {
	if i := v.IndexFunc(predicate); i >= 0 {
		return &v.data[i]
	}
	return nil
}

// FindLastFunc 最后一个满足 predicate 的元素指针 不存在返回 nil
func (v *Vector[T]) FindLastFunc(predicate func(T, int) bool) *T {
	if i := v.LastIndexFunc(predicate); i >= 0 {
		return &v.data[i]
	}
	return nil
}

// IndexOf x 第一次出现的下标 不存在返回 -1
func IndexOf[T comparable](v *Vector[T], x T) int {
	return v.IndexFunc(func(e T, _ int) bool { return e == x })
}

// LastIndexOf x 最后一次出现的下标 不存在返回 -1
func LastIndexOf[T comparable](v *Vector[T], x T) int {
	return v.LastIndexFunc(func(e T, _ int) bool { return e == x })
}

// Find 第一个等于 x 的元素指针 不存在返回 nil
func Find[T comparable](v *Vector[T], x T) *T {
	return v.FindFunc(func(e T, _ int) bool { return e == x })
}

// FindLast 最后一个等于 x 的元素指针 不存在返回 nil
func FindLast[T comparable](v *Vector[T], x T) *T {
	return v.FindLastFunc(func(e T, _ int) bool { return e == x })
}

// Contains 是否包含 x
func Contains[T comparable](v *Vector[T], x T) bool {
	return IndexOf(v, x) >= 0
}

// Reverse 原地反转
func (v *Vector[T]) Reverse() {
	for i, j := 0, v.size-1; i < j; i, j = i+1, j-1 {
		v.data[i], v.data[j] = v.data[j], v.data[i]
	}
}

// Shuffle Fisher-Yates 洗牌 随机数来自 WithRandSource 注入的随机数源
func (v *Vector[T]) Shuffle() {
	src := v.randSource()
	for i := v.size; i > 1; i-- {
		j := int(src.UintN(uint(i)))
		v.data[j], v.data[i-1] = v.data[i-1], v.data[j]
	}
}

// RandomIndex [0, size) 内均匀分布的随机下标
func (v *Vector[T]) RandomIndex() (int, error) {
	if err := v.checkNotEmpty(); err != nil {
		return -1, err
	}
	return int(v.randSource().UintN(uint(v.size))), nil
}

// RemoveIf 移除所有满足 predicate 的元素 保持剩余元素相对顺序
// 返回移除个数
func (v *Vector[T]) RemoveIf(predicate func(T) bool) int {
	kept := 0
	for i := 0; i < v.size; i++ {
		if predicate(v.data[i]) {
			continue
		}
		if kept != i {
			v.data[kept] = v.data[i]
		}
		kept++
	}
	removed := v.size - kept
	if removed > 0 {
		v.truncate(kept)
	}
	return removed
}

// ForEach 用 fn 的返回值原地替换每个元素
func (v *Vector[T]) ForEach(fn func(T, int) T) {
	for i := 0; i < v.size; i++ {
		v.data[i] = fn(v.data[i], i)
	}
}

// Every 所有元素都满足 predicate 空 Vector 返回 true
func (v *Vector[T]) Every(predicate func(T, int) bool) bool {
	for i := 0; i < v.size; i++ {
		if !predicate(v.data[i], i) {
			return false
		}
	}
	return true
}

// Any 存在元素满足 predicate
func (v *Vector[T]) Any(predicate func(T, int) bool) bool {
	return v.IndexFunc(predicate) >= 0
}
