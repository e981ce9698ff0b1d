package encode_utils

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8     = "UTF-8"
	EncodingUTF8BOM  = "UTF-8-BOM"
	EncodingGBK      = "GBK"
	EncodingGB18030  = "GB18030"
	EncodingHZGB2312 = "HZ-GB2312"
)

var (
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// 支持的编码表
var encodings = map[string]encoding.Encoding{
	EncodingUTF8:     unicode.UTF8,
	EncodingUTF8BOM:  unicode.UTF8BOM,
	EncodingGBK:      simplifiedchinese.GBK,
	EncodingGB18030:  simplifiedchinese.GB18030,
	EncodingHZGB2312: simplifiedchinese.HZGB2312,
}

// Lookup 根据名称查找编码
func Lookup(encodingStr string) (encoding.Encoding, error) {
	enc, ok := encodings[encodingStr]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "encoding %q", encodingStr)
	}
	return enc, nil
}

// NewEncoder 创建编码器 UTF-8 -> encodingStr
func NewEncoder(encodingStr string) (*encoding.Encoder, error) {
	enc, err := Lookup(encodingStr)
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder(), nil
}

// NewDecoder 创建解码器 encodingStr -> UTF-8
func NewDecoder(encodingStr string) (*encoding.Decoder, error) {
	enc, err := Lookup(encodingStr)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder(), nil
}

// NewWriter 包装 w 写入的 UTF-8 文本被转码为 encodingStr 后输出
// 调用方写完后必须 Close 以刷新缓冲 Close 不会关闭 w
func NewWriter(w io.Writer, encodingStr string) (io.WriteCloser, error) {
	encoder, err := NewEncoder(encodingStr)
	if err != nil {
		return nil, err
	}
	return transform.NewWriter(w, encoder), nil
}
