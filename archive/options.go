package archive

import (
	"log/slog"

	"github.com/hupe1980/hilbert/codec"
)

type options struct {
	codec       codec.Codec
	compression Compression
	logger      *slog.Logger
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:       codec.Default,
		compression: CompressionNone,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures encoding, decoding, Save and Load.
type Option func(*options)

// WithCodec configures the codec used to encode the group tree.
//
// On decode the codec named in the header wins; a custom codec passed here is
// used only when its Name matches the header. If nil is passed, codec.Default
// is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression selects the payload compression for new archives.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger sets the logger used by Save and Load. If nil is passed,
// logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
