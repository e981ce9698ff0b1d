package vector

import (
	"log/slog"

	"github.com/peng-qing/go_vector/common/options"
	"github.com/peng-qing/go_vector/common/random"
)

// config 构造配置
type config struct {
	logger   *slog.Logger  // 日志
	rand     random.Source // 随机数源 Shuffle/RandomIndex 使用
	capacity int           // 初始预留容量
}

// Option 构造可选项
type Option = options.Option[config]

// WithLogger 设置日志 默认 slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return options.WrapperOptions[config](func(c *config) {
		c.logger = logger
	})
}

// WithRandSource 设置随机数源 默认 random.Default()
func WithRandSource(src random.Source) Option {
	return options.WrapperOptions[config](func(c *config) {
		c.rand = src
	})
}

// WithCapacity 设置初始预留容量
func WithCapacity(capacity int) Option {
	return options.WrapperOptions[config](func(c *config) {
		c.capacity = capacity
	})
}
