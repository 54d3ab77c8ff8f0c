package archive

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hupe1980/hilbert/blobstore"
)

// Save encodes f and writes it to store under name.
func Save(ctx context.Context, store blobstore.Store, name string, f *File, optFns ...Option) error {
	o := applyOptions(optFns)

	var buf bytes.Buffer
	if err := f.Encode(&buf, optFns...); err != nil {
		o.logger.ErrorContext(ctx, "archive encode failed", "name", name, "error", err)
		return err
	}
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		o.logger.ErrorContext(ctx, "archive save failed", "name", name, "error", err)
		return fmt.Errorf("save archive %q: %w", name, err)
	}

	o.logger.DebugContext(ctx, "archive saved",
		"name", name,
		"bytes", buf.Len(),
		"codec", o.codec.Name(),
		"compression", o.compression.String(),
	)
	return nil
}

// Load reads and decodes the archive stored under name.
func Load(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*File, error) {
	o := applyOptions(optFns)

	data, err := store.Get(ctx, name)
	if err != nil {
		o.logger.ErrorContext(ctx, "archive load failed", "name", name, "error", err)
		return nil, fmt.Errorf("load archive %q: %w", name, err)
	}

	f, err := Decode(bytes.NewReader(data), optFns...)
	if err != nil {
		o.logger.ErrorContext(ctx, "archive decode failed", "name", name, "error", err)
		return nil, fmt.Errorf("load archive %q: %w", name, err)
	}

	o.logger.DebugContext(ctx, "archive loaded", "name", name, "bytes", len(data))
	return f, nil
}
