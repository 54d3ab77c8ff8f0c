package hash

import (
	"hash"
	"hash/crc32"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// NewCRC32C returns a new streaming CRC32-Castagnoli hash.Hash32.
func NewCRC32C() hash.Hash32 {
	return crc32.New(crc32cTable)
}

// Sum returns the CRC32C of label followed by data, so a checksum also
// covers the metadata an archive payload is decoded with.
func Sum(label string, data []byte) uint32 {
	h := NewCRC32C()
	_, _ = h.Write([]byte(label))
	_, _ = h.Write(data)
	return h.Sum32()
}
