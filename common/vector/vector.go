package vector

import (
	"log/slog"

	"github.com/peng-qing/go_vector/common/options"
	"github.com/peng-qing/go_vector/common/random"
)

// Vector 动态数组 线程不安全
//
// 底层为一块连续缓冲区 data, len(data) 即容量
// [0, size) 为有效元素 [size, capacity) 已分配但逻辑上不存在 保持零值
// 零值 Vector 可直接使用
type Vector[T any] struct {
	data       []T           // 缓冲区
	size       int           // 元素个数
	capacity   int           // 已分配槽位数
	generation uint64        // 每次重新分配或移位时递增 迭代器据此判断失效
	logger     *slog.Logger  // 日志
	rand       random.Source // 随机数源
}

// New 创建空的 Vector
// WithCapacity 预留失败时记录错误日志 返回空 Vector
func New[T any](opts ...Option) *Vector[T] {
	conf := options.Apply(&config{}, opts...)
	v := &Vector[T]{
		logger: conf.logger,
		rand:   conf.rand,
	}
	if conf.capacity != 0 {
		if err := v.Reserve(conf.capacity); err != nil {
			v.log().Error("[Vector] New reserve failed", slog.Int("capacity", conf.capacity), slog.Any("err", err))
		}
	}
	return v
}

// NewWithSize 创建包含 size 个零值元素的 Vector
func NewWithSize[T any](size int, opts ...Option) (*Vector[T], error) {
	var zero T
	return NewFilled(size, zero, opts...)
}

// NewFilled 创建包含 size 个 value 的 Vector
func NewFilled[T any](size int, value T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.AssignFill(size, value); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice 从已有序列创建 Vector 元素被复制 容量等于 len(values)
func FromSlice[T any](values []T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	if len(values) == 0 {
		return v
	}
	v.data = make([]T, len(values))
	copy(v.data, values)
	v.size = len(values)
	v.capacity = len(values)
	return v
}

// Of 字面量构造
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// log 获取日志
func (v *Vector[T]) log() *slog.Logger {
	if v.logger == nil {
		return slog.Default()
	}
	return v.logger
}

// randSource 获取随机数源
func (v *Vector[T]) randSource() random.Source {
	if v.rand == nil {
		return random.Default()
	}
	return v.rand
}

// Size 元素个数
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity 已分配容量
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// FreeCapacity 剩余可用容量
func (v *Vector[T]) FreeCapacity() int {
	return v.capacity - v.size
}

// MaxSize 容量上限
func (v *Vector[T]) MaxSize() int {
	return MaxCapacity
}

// Empty 是否为空
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Data 有效元素视图 与 Vector 共享存储
// 重新分配或移位后视图失效
func (v *Vector[T]) Data() []T {
	return v.data[:v.size]
}

// Value 有效元素的副本
func (v *Vector[T]) Value() []T {
	values := make([]T, v.size)
	copy(values, v.data[:v.size])
	return values
}

// At 获取 index 处的元素
func (v *Vector[T]) At(index int) (T, error) {
	if err := v.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return v.data[index], nil
}

// Ref 获取 index 处元素的指针 指向缓冲区内部
func (v *Vector[T]) Ref(index int) (*T, error) {
	if err := v.checkIndex(index); err != nil {
		return nil, err
	}
	return &v.data[index], nil
}

// Set 覆盖 index 处的元素
func (v *Vector[T]) Set(index int, value T) error {
	if err := v.checkIndex(index); err != nil {
		return err
	}
	v.data[index] = value
	return nil
}

// Front 首元素
func (v *Vector[T]) Front() (T, error) {
	if err := v.checkNotEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return v.data[0], nil
}

// Back 尾元素
func (v *Vector[T]) Back() (T, error) {
	if err := v.checkNotEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return v.data[v.size-1], nil
}

// Middle 中间元素 偶数长度取偏左的一个
func (v *Vector[T]) Middle() (T, error) {
	if err := v.checkNotEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return v.data[v.Midpoint()], nil
}

// Midpoint 中点下标 (size-1)/2
func (v *Vector[T]) Midpoint() int {
	return midpointOf(v.size)
}

// midpointOf 长度为 length 的序列的中点下标
func midpointOf(length int) int {
	if length <= 1 {
		return 0
	}
	return (length - 1) / 2
}

// Clone 深拷贝 新 Vector 拥有独立的缓冲区 容量等于 size
func (v *Vector[T]) Clone() *Vector[T] {
	clone := &Vector[T]{
		logger: v.logger,
		rand:   v.rand,
	}
	if v.size > 0 {
		clone.data = make([]T, v.size)
		copy(clone.data, v.data[:v.size])
		clone.size = v.size
		clone.capacity = v.size
	}
	return clone
}

// Move 转移缓冲区所有权到新 Vector 原 Vector 置空
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{
		data:     v.data,
		size:     v.size,
		capacity: v.capacity,
		logger:   v.logger,
		rand:     v.rand,
	}
	v.data = nil
	v.size = 0
	v.capacity = 0
	v.generation++
	return moved
}

// Swap 交换两个 Vector 的缓冲区
func (v *Vector[T]) Swap(other *Vector[T]) {
	if other == nil || v == other {
		return
	}
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.generation++
	other.generation++
}
