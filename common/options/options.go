package options

// Option 可选配置接口 作用于配置结构 T
type Option[T any] interface {
	Apply(t *T)
}

// WrapperOptions 函数包装为 Option
type WrapperOptions[T any] func(t *T)

// Apply 实现 Option 接口
func (opt WrapperOptions[T]) Apply(t *T) {
	opt(t)
}

// Apply 按顺序将 opts 应用到 t 上 nil 配置项会被跳过
func Apply[T any](t *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Apply(t)
	}
	return t
}
