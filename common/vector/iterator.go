package vector

import (
	"iter"
	"unsafe"
)

// Iterator 正向迭代器 不持有缓冲区所有权
//
// 迭代器直接指向 Vector 的缓冲区 任何重新分配或移位操作
// (扩容/缩容/Clear/头部或中间插入删除/RemoveIf/Move/Swap) 之后都不应再解引用
// Valid 可用于检查这一点 解引用本身不做检查
type Iterator[T any] struct {
	owner *Vector[T]
	data  []T
	pos   int
	gen   uint64
}

// Begin 指向首元素
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{owner: v, data: v.data, pos: 0, gen: v.generation}
}

// End 指向尾元素之后
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{owner: v, data: v.data, pos: v.size, gen: v.generation}
}

// Next 前进一位 (++)
func (it *Iterator[T]) Next() {
	it.pos++
}

// Prev 后退一位 (--)
func (it *Iterator[T]) Prev() {
	it.pos--
}

// Advance 返回偏移 k 位后的迭代器
func (it Iterator[T]) Advance(k int) Iterator[T] {
	it.pos += k
	return it
}

// Value 解引用
func (it Iterator[T]) Value() T {
	return it.data[it.pos]
}

// Ref 元素指针
func (it Iterator[T]) Ref() *T {
	return &it.data[it.pos]
}

// Set 写入当前位置
func (it Iterator[T]) Set(value T) {
	it.data[it.pos] = value
}

// At 偏移 k 处元素的指针 ([]) 不检查是否越过 size
func (it Iterator[T]) At(k int) *T {
	return &it.data[it.pos+k]
}

// Index 当前位置在缓冲区中的下标
func (it Iterator[T]) Index() int {
	return it.pos
}

// Equal 比较指向的地址
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return unsafe.SliceData(it.data) == unsafe.SliceData(other.data) && it.pos == other.pos
}

// Valid 创建之后所属 Vector 是否未发生重新分配或移位
func (it Iterator[T]) Valid() bool {
	return it.owner != nil && it.owner.generation == it.gen
}

// ReverseIterator 反向迭代器 Next 向低下标移动 失效规则同 Iterator
type ReverseIterator[T any] struct {
	owner *Vector[T]
	data  []T
	pos   int
	gen   uint64
}

// RBegin 指向尾元素
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{owner: v, data: v.data, pos: v.size - 1, gen: v.generation}
}

// REnd 指向首元素之前
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{owner: v, data: v.data, pos: -1, gen: v.generation}
}

// Next 向低下标移动一位 (++)
func (it *ReverseIterator[T]) Next() {
	it.pos--
}

// Prev 向高下标移动一位 (--)
func (it *ReverseIterator[T]) Prev() {
	it.pos++
}

// Advance 返回反向偏移 k 位后的迭代器
func (it ReverseIterator[T]) Advance(k int) ReverseIterator[T] {
	it.pos -= k
	return it
}

// Value 解引用
func (it ReverseIterator[T]) Value() T {
	return it.data[it.pos]
}

// Ref 元素指针
func (it ReverseIterator[T]) Ref() *T {
	return &it.data[it.pos]
}

// Set 写入当前位置
func (it ReverseIterator[T]) Set(value T) {
	it.data[it.pos] = value
}

// At 反向偏移 k 处元素的指针 ([])
func (it ReverseIterator[T]) At(k int) *T {
	return &it.data[it.pos-k]
}

// Index 当前位置在缓冲区中的下标
func (it ReverseIterator[T]) Index() int {
	return it.pos
}

// Equal 比较指向的地址
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return unsafe.SliceData(it.data) == unsafe.SliceData(other.data) && it.pos == other.pos
}

// Valid 创建之后所属 Vector 是否未发生重新分配或移位
func (it ReverseIterator[T]) Valid() bool {
	return it.owner != nil && it.owner.generation == it.gen
}

// All 按下标升序遍历
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values 按下标升序遍历元素
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward 按下标降序遍历
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
