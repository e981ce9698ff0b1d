package container

import "github.com/peng-qing/go_vector/common/vector"

// Queue 先进先出队列 线程不安全
// 基于 vector.Vector 出队需要整体前移 O(n) 适合元素较少的场景
type Queue[T any] struct {
	data *vector.Vector[T]
}

// NewQueue 创建队列
func NewQueue[T any](opts ...vector.Option) *Queue[T] {
	return &Queue[T]{
		data: vector.New[T](opts...),
	}
}

// Empty 判断队列是否为空
func (q *Queue[T]) Empty() bool {
	return q.data.Empty()
}

// Size 获取队列长度
func (q *Queue[T]) Size() int {
	return q.data.Size()
}

// Clear 清空队列 释放存储
func (q *Queue[T]) Clear() {
	q.data.Clear()
}

// Value 获取队列数据 队首在前
func (q *Queue[T]) Value() []T {
	return q.data.Value()
}

// Push 入队
func (q *Queue[T]) Push(val T) error {
	return q.data.PushBack(val)
}

// Pop 出队 队列为空时返回 false
func (q *Queue[T]) Pop() (val T, ok bool) {
	val, err := q.data.PopFront()
	if err != nil {
		return val, false
	}
	return val, true
}

// Front 查看队首
func (q *Queue[T]) Front() (val T, ok bool) {
	val, err := q.data.Front()
	if err != nil {
		return val, false
	}
	return val, true
}
