package vector_test

import (
	"testing"

	"github.com/peng-qing/go_vector/common/vector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

func TestInsert(t *testing.T) {
	cases := []struct {
		index    int
		expected []int
	}{
		{0, []int{12, 1, 2, 3, 4}},
		{1, []int{1, 12, 2, 3, 4}},
		{2, []int{1, 2, 12, 3, 4}},
		{3, []int{1, 2, 3, 12, 4}},
		{4, []int{1, 2, 3, 4, 12}},
	}

	for _, c := range cases {
		v := vector.Of(1, 2, 3, 4)
		require.Equal(t, 4, v.Capacity())

		require.NoError(t, v.Insert(c.index, 12))

		assert.Equal(t, c.expected, v.Value(), "index %d", c.index)
		assert.Equal(t, 5, v.Size())
		assert.Equal(t, 8, v.Capacity())
	}
}

func TestInsertThenErase(t *testing.T) {
	v := vector.Of(1, 2, 3, 4)

	require.NoError(t, v.Insert(0, 12))
	assert.Equal(t, []int{12, 1, 2, 3, 4}, v.Value())
	assert.Equal(t, 8, v.Capacity())

	removed, err := v.Erase(0)
	require.NoError(t, err)
	assert.Equal(t, 12, removed)
	assert.Equal(t, []int{1, 2, 3, 4}, v.Value())
	assert.Equal(t, 8, v.Capacity())
}

func TestInsertOutOfRange(t *testing.T) {
	v := vector.Of(1, 2, 3, 4)

	assert.ErrorIs(t, v.Insert(-1, 0), vector.ErrIndexOutOfRange)
	assert.ErrorIs(t, v.Insert(5, 0), vector.ErrIndexOutOfRange)
	assert.ErrorIs(t, v.Emplace(5, nil), vector.ErrIndexOutOfRange)

	// 校验失败不会触发扩容
	assert.Equal(t, []int{1, 2, 3, 4}, v.Value())
	assert.Equal(t, 4, v.Capacity())
}

func TestPushMiddle(t *testing.T) {
	v := vector.Of(1, 2, 3)

	require.NoError(t, v.PushMiddle(5))
	assert.Equal(t, []int{1, 5, 2, 3}, v.Value())
	assert.Equal(t, 6, v.Capacity())
	middle, err := v.Middle()
	require.NoError(t, err)
	assert.Equal(t, 5, middle)

	require.NoError(t, v.PushMiddle(12))
	assert.Equal(t, []int{1, 5, 12, 2, 3}, v.Value())
	assert.Equal(t, 6, v.Capacity())
	assert.Equal(t, 2, v.Midpoint())

	empty := vector.New[int]()
	require.NoError(t, empty.PushMiddle(9))
	assert.Equal(t, []int{9}, empty.Value())
}

func TestPushFrontPopFrontIdentity(t *testing.T) {
	v := vector.Of(3, 1, 4, 1, 5, 9, 2, 6)
	before := v.Value()

	require.NoError(t, v.PushFront(42))
	assert.Equal(t, 42, must(v.Front()))
	assert.Equal(t, 9, v.Size())

	front, err := v.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 42, front)
	assert.Equal(t, before, v.Value())
}

func TestPushFrontGrows(t *testing.T) {
	v := vector.New[int]()
	for i := range 5 {
		require.NoError(t, v.PushFront(i))
	}

	assert.Equal(t, []int{4, 3, 2, 1, 0}, v.Value())
	assert.Equal(t, 8, v.Capacity())
}

func TestPop(t *testing.T) {
	v := vector.Of(1, 2, 3, 4, 5)

	back, err := v.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 5, back)
	assert.Equal(t, 5, v.Capacity())

	middle, err := v.PopMiddle()
	require.NoError(t, err)
	assert.Equal(t, 2, middle)
	assert.Equal(t, []int{1, 3, 4}, v.Value())

	middle, err = v.PopMiddle()
	require.NoError(t, err)
	assert.Equal(t, 3, middle)
	assert.Equal(t, []int{1, 4}, v.Value())

	front, err := v.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, front)
	assert.Equal(t, []int{4}, v.Value())
	assert.Equal(t, 5, v.Capacity())
}

func TestPopEmpty(t *testing.T) {
	v := vector.New[int]()

	_, err := v.PopBack()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.PopFront()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.PopMiddle()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.Erase(0)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.Front()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.Back()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.Middle()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	assert.Equal(t, 0, v.Size())
}

func TestErase(t *testing.T) {
	cases := []struct {
		index    int
		removed  int
		expected []int
	}{
		{0, 1, []int{2, 3, 4, 5}},
		{4, 5, []int{1, 2, 3, 4}},
		{2, 3, []int{1, 2, 4, 5}},
		{1, 2, []int{1, 3, 4, 5}},
	}

	for _, c := range cases {
		v := vector.Of(1, 2, 3, 4, 5)
		removed, err := v.Erase(c.index)
		require.NoError(t, err)
		assert.Equal(t, c.removed, removed)
		assert.Equal(t, c.expected, v.Value())
		assert.Equal(t, 5, v.Capacity())
	}

	v := vector.Of(1, 2)
	_, err := v.Erase(2)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.Erase(-1)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

func TestEmplace(t *testing.T) {
	v := vector.New[point]()

	require.NoError(t, v.EmplaceBack(func(p *point) { p.X, p.Y = 2, 6 }))
	require.NoError(t, v.EmplaceFront(func(p *point) { p.X = 1 }))
	require.NoError(t, v.Emplace(1, func(p *point) {
		assert.Equal(t, point{}, *p)
		p.Y = 9
	}))
	require.NoError(t, v.Emplace(3, nil))

	assert.Equal(t, []point{{1, 0}, {0, 9}, {2, 6}, {0, 0}}, v.Value())
	assert.Equal(t, 4, v.Capacity())
}

func TestAccessors(t *testing.T) {
	v := vector.Of(10, 20, 30, 40)

	assert.Equal(t, 20, must(v.At(1)))
	assert.Equal(t, 10, must(v.Front()))
	assert.Equal(t, 40, must(v.Back()))
	assert.Equal(t, 20, must(v.Middle()))

	require.NoError(t, v.Set(2, 33))
	ref, err := v.Ref(3)
	require.NoError(t, err)
	*ref = 44
	assert.Equal(t, []int{10, 20, 33, 44}, v.Value())

	_, err = v.At(4)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	assert.ErrorIs(t, v.Set(-1, 0), vector.ErrIndexOutOfRange)
	_, err = v.Ref(9)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	require.NoError(t, v.SwapElements(0, 3))
	assert.Equal(t, []int{44, 20, 33, 10}, v.Value())
	assert.ErrorIs(t, v.SwapElements(0, 4), vector.ErrIndexOutOfRange)

	assert.Equal(t, 0, v.FreeCapacity())
	assert.Equal(t, vector.MaxCapacity, v.MaxSize())
}

func TestRemoveIndexIf(t *testing.T) {
	v := vector.Of(1, 2, 3)
	even := func(x int) bool { return x%2 == 0 }

	removed, err := v.RemoveIndexIf(0, even)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = v.RemoveIndexIf(1, even)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []int{1, 3}, v.Value())

	_, err = v.RemoveIndexIf(2, even)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

func TestAssign(t *testing.T) {
	v := vector.Of(1, 2, 3, 4, 5)

	require.NoError(t, v.Assign(7, 8))
	assert.Equal(t, []int{7, 8}, v.Value())
	assert.Equal(t, 5, v.Capacity())

	require.NoError(t, v.AssignFill(6, 1))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, v.Value())
	assert.Equal(t, 6, v.Capacity())

	assert.ErrorIs(t, v.AssignFill(-1, 0), vector.ErrInvalidCapacity)
	assert.Equal(t, 6, v.Size())

	require.NoError(t, v.Assign())
	assert.True(t, v.Empty())
}

func TestAppendAmortized(t *testing.T) {
	v := vector.New[int]()
	capacities := make([]int, 0, 5)
	for i := range 5 {
		require.NoError(t, v.Append(i))
		capacities = append(capacities, v.Capacity())
	}

	assert.Equal(t, []int{1, 2, 4, 4, 8}, capacities)

	require.NoError(t, v.Append(5, 6, 7, 8, 9, 10, 11, 12))
	assert.Equal(t, 13, v.Size())
	assert.Equal(t, 16, v.Capacity())
}

func TestConcat(t *testing.T) {
	v := vector.Of(1, 2)

	require.NoError(t, v.Concat(vector.Of(3, 4, 5)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Value())
	assert.Equal(t, 5, v.Capacity())

	require.NoError(t, v.Concat(vector.New[int]()))
	require.NoError(t, v.Concat(nil))
	assert.Equal(t, 5, v.Size())

	self := vector.Of(1, 2, 3)
	require.NoError(t, self.Concat(self))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, self.Value())
	assert.Equal(t, 6, self.Capacity())
}

func TestConcatMove(t *testing.T) {
	v := vector.Of(1)
	other := vector.Of(2, 3)

	require.NoError(t, v.ConcatMove(other))

	assert.Equal(t, []int{1, 2, 3}, v.Value())
	assert.Equal(t, 0, other.Size())
	assert.Equal(t, 0, other.Capacity())
	assert.ErrorIs(t, v.ConcatMove(v), vector.ErrSelfTransfer)
}

func TestCloneMoveSwap(t *testing.T) {
	v := vector.Of(1, 2, 3)
	require.NoError(t, v.Reserve(8))

	clone := v.Clone()
	require.NoError(t, clone.Set(0, 100))
	assert.Equal(t, []int{1, 2, 3}, v.Value())
	assert.Equal(t, []int{100, 2, 3}, clone.Value())
	assert.Equal(t, 3, clone.Capacity())

	moved := v.Move()
	assert.Equal(t, []int{1, 2, 3}, moved.Value())
	assert.Equal(t, 8, moved.Capacity())
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 0, v.Capacity())
	assert.Nil(t, v.Data())

	moved.Swap(clone)
	assert.Equal(t, []int{100, 2, 3}, moved.Value())
	assert.Equal(t, []int{1, 2, 3}, clone.Value())
	assert.Equal(t, 8, clone.Capacity())
}

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
