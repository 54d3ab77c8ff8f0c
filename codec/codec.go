// Package codec centralizes the encoding of archive group trees.
//
// Archives record the codec name in their header, so a codec's Name is part
// of the on-disk format: renaming one breaks decoding of existing files.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Used when decoding self-describing archives that store the codec name
// in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
