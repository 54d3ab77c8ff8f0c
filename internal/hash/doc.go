// Package hash provides the CRC32-Castagnoli checksums that protect
// archive payloads.
//
//	checksum := hash.CRC32C(data)
//	checksum = hash.Sum("go-json", payload) // covers the codec name as well
package hash
