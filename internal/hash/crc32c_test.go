package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C(t *testing.T) {
	// Standard check value for "123456789".
	assert.Equal(t, uint32(0xE3069283), CRC32C([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32C(nil))
}

func TestSum(t *testing.T) {
	data := []byte("payload")

	assert.Equal(t, CRC32C([]byte("jsonpayload")), Sum("json", data))
	assert.NotEqual(t, Sum("json", data), Sum("go-json", data))
	assert.Equal(t, CRC32C(data), Sum("", data))
}
