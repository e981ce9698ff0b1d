package vector

import "github.com/pkg/errors"

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmpty           = errors.New("vector is empty")
	ErrInvalidCapacity = errors.New("invalid capacity")
	ErrAllocation      = errors.New("allocate storage failed")
	ErrSelfTransfer    = errors.New("transfer from self")
)

// checkIndex 校验 0 <= index < size
func (v *Vector[T]) checkIndex(index int) error {
	if index < 0 || index >= v.size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, v.size)
	}
	return nil
}

// checkNotEmpty 校验非空
func (v *Vector[T]) checkNotEmpty() error {
	if v.size == 0 {
		return ErrEmpty
	}
	return nil
}
