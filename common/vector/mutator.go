package vector

import "github.com/pkg/errors"

// PushBack 尾部追加 均摊 O(1)
func (v *Vector[T]) PushBack(value T) error {
	if err := v.grow(); err != nil {
		return err
	}
	v.data[v.size] = value
	v.size++
	return nil
}

// EmplaceBack 在尾部槽位上就地构造元素 construct 收到的槽位为零值
func (v *Vector[T]) EmplaceBack(construct func(slot *T)) error {
	return v.Emplace(v.size, construct)
}

// PushFront 头部插入 O(n)
func (v *Vector[T]) PushFront(value T) error {
	return v.insertAt(0, value)
}

// EmplaceFront 在头部就地构造元素
func (v *Vector[T]) EmplaceFront(construct func(slot *T)) error {
	return v.Emplace(0, construct)
}

// PushMiddle 插入到中点 中点按插入后的长度计算
// 例如 [1 2 3] 插入 5 得到 [1 5 2 3]
func (v *Vector[T]) PushMiddle(value T) error {
	return v.insertAt(midpointOf(v.size+1), value)
}

// Insert 在 index 处插入 原 index 及之后的元素后移一位
// index 取值范围 [0, size] index == size 等价于 PushBack
func (v *Vector[T]) Insert(index int, value T) error {
	if err := v.checkInsertIndex(index); err != nil {
		return err
	}
	return v.insertAt(index, value)
}

// Emplace 在 index 处腾出槽位后就地构造元素 index 规则同 Insert
func (v *Vector[T]) Emplace(index int, construct func(slot *T)) error {
	if err := v.checkInsertIndex(index); err != nil {
		return err
	}
	var zero T
	if err := v.insertAt(index, zero); err != nil {
		return err
	}
	if construct != nil {
		construct(&v.data[index])
	}
	return nil
}

// PopFront 移除并返回首元素 O(n)
func (v *Vector[T]) PopFront() (T, error) {
	if err := v.checkNotEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return v.removeAt(0), nil
}

// PopBack 移除并返回尾元素 O(1) 不移动数据
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if err := v.checkNotEmpty(); err != nil {
		return zero, err
	}
	value := v.data[v.size-1]
	v.data[v.size-1] = zero
	v.size--
	return value, nil
}

// PopMiddle 移除并返回中点元素
func (v *Vector[T]) PopMiddle() (T, error) {
	if err := v.checkNotEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return v.removeAt(v.Midpoint()), nil
}

// Erase 移除并返回 index 处的元素
func (v *Vector[T]) Erase(index int) (T, error) {
	if err := v.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	switch index {
	case 0:
		return v.PopFront()
	case v.size - 1:
		return v.PopBack()
	default:
		return v.removeAt(index), nil
	}
}

// RemoveIndexIf predicate 对 index 处元素成立时移除该元素
func (v *Vector[T]) RemoveIndexIf(index int, predicate func(T) bool) (bool, error) {
	if err := v.checkIndex(index); err != nil {
		return false, err
	}
	if !predicate(v.data[index]) {
		return false, nil
	}
	if _, err := v.Erase(index); err != nil {
		return false, err
	}
	return true, nil
}

// SwapElements 交换 i, j 处的元素
func (v *Vector[T]) SwapElements(i, j int) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	if err := v.checkIndex(j); err != nil {
		return err
	}
	v.data[i], v.data[j] = v.data[j], v.data[i]
	return nil
}

// Assign 用 values 替换全部元素
func (v *Vector[T]) Assign(values ...T) error {
	if err := v.Reserve(len(values)); err != nil {
		return err
	}
	copy(v.data, values)
	v.truncate(len(values))
	return nil
}

// AssignFill 用 count 个 value 替换全部元素
func (v *Vector[T]) AssignFill(count int, value T) error {
	if count < 0 {
		return errors.Wrapf(ErrInvalidCapacity, "fill count %d", count)
	}
	if err := v.Reserve(count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		v.data[i] = value
	}
	v.truncate(count)
	return nil
}

// Append 批量追加 容量不足时按扩容策略与所需容量中的较大者扩容
func (v *Vector[T]) Append(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	if required := v.size + len(values); required > v.capacity {
		if err := v.reallocateAtLeast(required); err != nil {
			return err
		}
	}
	copy(v.data[v.size:], values)
	v.size += len(values)
	return nil
}

// Concat 追加 other 的全部元素 剩余容量不足时一次性预留合并后的大小
// other 可以是自身
func (v *Vector[T]) Concat(other *Vector[T]) error {
	if other == nil || other.size == 0 {
		return nil
	}
	// 先取视图 扩容后旧缓冲区仍然有效
	src := other.data[:other.size]
	if err := v.reserveFor(len(src)); err != nil {
		return err
	}
	copy(v.data[v.size:], src)
	v.size += len(src)
	return nil
}

// ConcatMove 追加 other 的全部元素后清空 other
func (v *Vector[T]) ConcatMove(other *Vector[T]) error {
	if other == v {
		return ErrSelfTransfer
	}
	if err := v.Concat(other); err != nil {
		return err
	}
	if other != nil {
		other.Clear()
	}
	return nil
}

// checkInsertIndex 校验 0 <= index <= size
func (v *Vector[T]) checkInsertIndex(index int) error {
	if index < 0 || index > v.size {
		return errors.Wrapf(ErrIndexOutOfRange, "insert index %d, size %d", index, v.size)
	}
	return nil
}

// insertAt 必要时扩容 然后将 [index, size) 后移一位并写入 value
func (v *Vector[T]) insertAt(index int, value T) error {
	if err := v.grow(); err != nil {
		return err
	}
	if index < v.size {
		copy(v.data[index+1:v.size+1], v.data[index:v.size])
		v.generation++
	}
	v.data[index] = value
	v.size++
	return nil
}

// removeAt 将 (index, size) 前移一位 返回被移除的元素
func (v *Vector[T]) removeAt(index int) T {
	var zero T
	value := v.data[index]
	copy(v.data[index:v.size-1], v.data[index+1:v.size])
	v.data[v.size-1] = zero
	v.size--
	v.generation++
	return value
}

// truncate 设置元素个数为 size 之后的槽位重置为零值
func (v *Vector[T]) truncate(size int) {
	if size < v.size {
		clear(v.data[size:v.size])
	}
	v.size = size
	v.generation++
}

// reallocateAtLeast 按扩容策略扩容 且不小于 required
func (v *Vector[T]) reallocateAtLeast(required int) error {
	if required > MaxCapacity || required < v.size {
		return errors.Wrapf(ErrAllocation, "required capacity %d exceeds limit", required)
	}
	return v.reallocate(max(required, v.GenerateNewCapacity()))
}
