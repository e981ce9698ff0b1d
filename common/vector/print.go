package vector

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/peng-qing/go_vector/common/encode_utils"
	"github.com/peng-qing/go_vector/common/options"
)

// printConfig 输出配置
type printConfig struct {
	encoding string // 输出编码
	verb     string // 元素格式化动词
}

// PrintOption 输出可选项
type PrintOption = options.Option[printConfig]

// WithEncoding 设置输出编码 见 encode_utils 支持的编码
func WithEncoding(encoding string) PrintOption {
	return options.WrapperOptions[printConfig](func(c *printConfig) {
		c.encoding = encoding
	})
}

// WithVerb 设置元素格式化动词 默认 %v
func WithVerb(verb string) PrintOption {
	return options.WrapperOptions[printConfig](func(c *printConfig) {
		c.verb = verb
	})
}

// String 实现 fmt.Stringer 格式 [e0, e1, ..., en]
func (v *Vector[T]) String() string {
	var buf bytes.Buffer
	v.render(&buf, "%v")
	return buf.String()
}

// WriteTo 实现 io.WriterTo
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	v.render(&buf, "%v")
	return buf.WriteTo(w)
}

// Fprint 输出到 w 末尾换行
func (v *Vector[T]) Fprint(w io.Writer, opts ...PrintOption) error {
	conf := options.Apply(&printConfig{
		encoding: encode_utils.EncodingUTF8,
		verb:     "%v",
	}, opts...)

	var buf bytes.Buffer
	v.render(&buf, conf.verb)
	buf.WriteByte('\n')

	if conf.encoding == encode_utils.EncodingUTF8 {
		_, err := buf.WriteTo(w)
		return err
	}
	ew, err := encode_utils.NewWriter(w, conf.encoding)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(ew); err != nil {
		return err
	}
	return ew.Close()
}

// Print 输出到标准输出
func (v *Vector[T]) Print(opts ...PrintOption) error {
	return v.Fprint(os.Stdout, opts...)
}

// render 渲染为 [e0, e1, ..., en]
func (v *Vector[T]) render(buf *bytes.Buffer, verb string) {
	buf.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, verb, v.data[i])
	}
	buf.WriteByte(']')
}
