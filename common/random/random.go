package random

import "math/rand/v2"

var (
	// 断言 检查 *rand.Rand 实现 Source
	_ Source = (*rand.Rand)(nil)
	_ Source = globalSource{}
)

// Source 随机数源
// UintN 返回 [0, n) 区间内均匀分布的随机数 n 为 0 时 panic
type Source interface {
	UintN(n uint) uint
}

// New 创建指定种子的随机数源 相同种子产生相同序列 非协程安全
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalSource 全局随机数源 由运行时在进程启动时播种一次
type globalSource struct{}

// UintN 实现 Source 接口
func (globalSource) UintN(n uint) uint {
	return rand.UintN(n)
}

// Default 获取默认随机数源 协程安全
func Default() Source {
	return globalSource{}
}
