package jsonent

import (
	"io"

	"github.com/bytedance/sonic"
)

// Encoder is the interface for streaming JSON encoding. Both
// [encoding/json] and alternative libraries satisfy this interface.
type Encoder interface {
	Encode(v any) error
}

// Decoder is the interface for streaming JSON decoding. Both
// [encoding/json] and alternative libraries satisfy this interface.
type Decoder interface {
	Decode(v any) error
}

// CodecConfig holds the JSON encoding/decoding functions used to serialize
// and parse [Entity] values.
type CodecConfig struct {
	Marshal    func(v any) ([]byte, error)
	Unmarshal  func(data []byte, v any) error
	NewEncoder func(w io.Writer) Encoder
	NewDecoder func(r io.Reader) Decoder
}

// DefaultCodecConfig returns the default configuration, using
// [github.com/bytedance/sonic].
func DefaultCodecConfig() CodecConfig {
	return CodecConfig{
		Marshal:   sonic.Marshal,
		Unmarshal: sonic.Unmarshal,
		NewEncoder: func(w io.Writer) Encoder {
			return sonic.ConfigDefault.NewEncoder(w)
		},
		NewDecoder: func(r io.Reader) Decoder {
			return sonic.ConfigDefault.NewDecoder(r)
		},
	}
}

var codec = DefaultCodecConfig()

// SetCodec sets the package-wide JSON codec. Call it before parsing or
// serializing any [Entity] to use a different JSON library.
func SetCodec(c CodecConfig) {
	codec = c
}

// GetCodec returns the current JSON codec.
func GetCodec() CodecConfig {
	return codec
}

// Marshal returns the JSON encoding of v using the configured codec.
func Marshal(v any) ([]byte, error) {
	return codec.Marshal(v)
}

// Unmarshal parses JSON-encoded data into v using the configured codec.
func Unmarshal(data []byte, v any) error {
	return codec.Unmarshal(data, v)
}
