package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/hilbert/codec"
	"github.com/hupe1980/hilbert/internal/hash"
)

// File is the root group of an archive.
type File struct {
	*Node
}

// New returns an empty archive.
func New() *File {
	return &File{Node: NewNode()}
}

// Encode writes the archive envelope and payload to w.
func (f *File) Encode(w io.Writer, optFns ...Option) error {
	o := applyOptions(optFns)

	name := o.codec.Name()
	if len(name) == 0 || len(name) > 255 {
		return fmt.Errorf("%w: codec name %q", ErrUnknownCodec, name)
	}

	raw, err := o.codec.Marshal(f.Node)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}

	payload, applied, err := compress(raw, o.compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	header := Header{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(applied),
		CodecLen:    uint8(len(name)),
		RawSize:     uint64(len(raw)),
		PayloadSize: uint64(len(payload)),
		Checksum:    hash.Sum(name, payload),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, name); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Decode reads an archive written by Encode.
func Decode(r io.Reader, optFns ...Option) (*File, error) {
	o := applyOptions(optFns)

	var header Header
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, truncated(err)
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if header.RawSize > maxRawSize || header.PayloadSize > maxRawSize {
		return nil, fmt.Errorf("%w: size out of bounds", ErrCorrupt)
	}

	nameBuf := make([]byte, header.CodecLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, truncated(err)
	}
	c, err := resolveCodec(string(nameBuf), o.codec)
	if err != nil {
		return nil, err
	}

	// Read no more than the input holds, whatever the header claims.
	payload, err := io.ReadAll(io.LimitReader(r, int64(header.PayloadSize)))
	if err != nil {
		return nil, truncated(err)
	}
	if uint64(len(payload)) != header.PayloadSize {
		return nil, fmt.Errorf("%w: truncated: payload %d of %d bytes", ErrCorrupt, len(payload), header.PayloadSize)
	}
	if sum := hash.Sum(string(nameBuf), payload); sum != header.Checksum {
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: sum}
	}

	raw, err := decompress(payload, Compression(header.Compression), int(header.RawSize))
	if err != nil {
		return nil, err
	}

	root := NewNode()
	if err := c.Unmarshal(raw, root); err != nil {
		return nil, fmt.Errorf("%w: decode tree: %w", ErrCorrupt, err)
	}
	return &File{Node: root}, nil
}

func resolveCodec(name string, preferred codec.Codec) (codec.Codec, error) {
	if preferred != nil && preferred.Name() == name {
		return preferred, nil
	}
	if c, ok := codec.ByName(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated: %w", ErrCorrupt, err)
	}
	return err
}
