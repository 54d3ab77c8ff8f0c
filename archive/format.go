package archive

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies archive files (ASCII: "HSA1")
	MagicNumber = 0x48534131
	// Version is the current envelope format version (v1.0.0)
	Version = 0x00010000

	// headerSize is the encoded size of Header.
	headerSize = 32

	// maxRawSize bounds the decoded tree size accepted by Decode.
	maxRawSize = 1 << 32
)

var (
	ErrInvalidMagic     = errors.New("invalid magic number")
	ErrInvalidVersion   = errors.New("unsupported version")
	ErrUnknownCodec     = errors.New("unknown codec")
	ErrCorrupt          = errors.New("corrupt archive")
	ErrNotFound         = errors.New("entry not found")
	ErrInvalidName      = errors.New("invalid entry name")
	ErrSchemeMismatch   = errors.New("scheme mismatch")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Header is the 32-byte little-endian header at the start of every archive.
type Header struct {
	Magic       uint32 // 0x48534131 ("HSA1")
	Version     uint32 // Envelope format version
	Compression uint8  // CompressionNone, CompressionLZ4, CompressionZSTD
	CodecLen    uint8  // Length of the codec name that follows the header
	Padding     [2]byte
	RawSize     uint64 // Size of the encoded tree before compression
	PayloadSize uint64 // Size of the stored payload
	Checksum    uint32 // CRC32C of the codec name and stored payload
}

// ChecksumMismatchError is returned when the payload checksum does not match.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

func (e *ChecksumMismatchError) Unwrap() error { return ErrChecksumMismatch }

// SchemeMismatchError is returned when a group holds a different record type
// than the one requested.
type SchemeMismatchError struct {
	Name     string
	Expected string
	Actual   string
}

func (e *SchemeMismatchError) Error() string {
	return fmt.Sprintf("group %q: scheme mismatch: expected %q, got %q", e.Name, e.Expected, e.Actual)
}

func (e *SchemeMismatchError) Unwrap() error { return ErrSchemeMismatch }
