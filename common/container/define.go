package container

import "github.com/peng-qing/go_vector/common/vector"

var (
	// 断言 检查实现 Container
	_ Container[int] = (*vector.Vector[int])(nil)
	_ Container[int] = (*Queue[int])(nil)
)

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}
