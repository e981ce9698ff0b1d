package vector

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

const (
	// MaxCapacity 容量上限
	MaxCapacity = math.MaxInt32
	// 超过该容量后按 25% 增长
	linearGrowthThreshold = 1000
)

// NextCapacity 扩容策略
// 0 -> 1, 小于 1000 翻倍, 否则增长 1/4, 结果不超过 MaxCapacity
func NextCapacity(current int) int {
	var next int
	switch {
	case current <= 0:
		next = 1
	case current >= linearGrowthThreshold:
		next = current + current/4
	default:
		next = current * 2
	}
	if next > MaxCapacity || next < current {
		next = MaxCapacity
	}
	return next
}

// GenerateNewCapacity 下一次扩容后的容量
func (v *Vector[T]) GenerateNewCapacity() int {
	return NextCapacity(v.capacity)
}

// Reserve 预留至少 capacity 个槽位 不大于当前容量时不做处理
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity <= v.capacity {
		return nil
	}
	return v.reallocate(capacity)
}

// Resize 将容量调整为 capacity
// 扩大时元素个数不变 缩小时截断多出的元素 相等时不做处理
func (v *Vector[T]) Resize(capacity int) error {
	if capacity < 0 {
		return errors.Wrapf(ErrInvalidCapacity, "resize to %d", capacity)
	}
	if capacity == v.capacity {
		return nil
	}
	return v.reallocate(capacity)
}

// ShrinkToFit 释放多余容量 使容量等于元素个数
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == v.capacity {
		return nil
	}
	return v.reallocate(v.size)
}

// Clear 释放缓冲区 元素个数和容量归零
func (v *Vector[T]) Clear() {
	if v.capacity == 0 {
		return
	}
	v.data = nil
	v.size = 0
	v.capacity = 0
	v.generation++
}

// grow 满容量时按扩容策略扩容
func (v *Vector[T]) grow() error {
	if v.size < v.capacity {
		return nil
	}
	if v.capacity >= MaxCapacity {
		return errors.Wrapf(ErrAllocation, "capacity %d already at limit", v.capacity)
	}
	return v.reallocate(v.GenerateNewCapacity())
}

// reserveFor 保证还能容纳 extra 个元素
// 剩余容量不足时一次性预留 size+extra
func (v *Vector[T]) reserveFor(extra int) error {
	if extra <= v.FreeCapacity() {
		return nil
	}
	required := v.size + extra
	if required > MaxCapacity || required < v.size {
		return errors.Wrapf(ErrAllocation, "size %d + %d exceeds limit", v.size, extra)
	}
	return v.reallocate(required)
}

// reallocate 重新分配 capacity 个槽位并迁移元素
// 失败时 Vector 保持原状
func (v *Vector[T]) reallocate(capacity int) error {
	buf, err := allocate[T](capacity)
	if err != nil {
		v.log().Error("[Vector] reallocate failed", slog.Int("size", v.size), slog.Int("capacity", v.capacity), slog.Int("request", capacity), slog.Any("err", err))
		return err
	}

	if v.log().Enabled(context.Background(), slog.LevelDebug) {
		var zero T
		bytes := uint64(capacity) * uint64(unsafe.Sizeof(zero))
		v.log().Debug("[Vector] reallocate", slog.Int("size", v.size), slog.Int("oldCapacity", v.capacity), slog.Int("newCapacity", capacity), slog.String("memory", humanize.IBytes(bytes)))
	}

	keep := min(v.size, capacity)
	copy(buf, v.data[:keep])
	v.data = buf
	v.size = keep
	v.capacity = capacity
	v.generation++
	return nil
}

// allocate 申请 capacity 个槽位 capacity 为 0 时返回 nil
// 运行时拒绝分配产生的 panic 转换为 ErrAllocation
func allocate[T any](capacity int) (buf []T, err error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	if capacity > MaxCapacity {
		return nil, errors.Wrapf(ErrAllocation, "capacity %d exceeds limit %d", capacity, MaxCapacity)
	}
	if capacity == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errors.Wrapf(ErrAllocation, "capacity %d: %s", capacity, fmt.Sprint(r))
		}
	}()
	return make([]T, capacity), nil
}
