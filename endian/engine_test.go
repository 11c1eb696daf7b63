package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	// Verify the result matches the actual system endianness.
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		require.Failf("unexpected byte value", "got: %v", testBytes[0])
	}

	require.Equal(result == binary.LittleEndian, IsNativeLittleEndian())
}

func TestEngineRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint32(nil, 0xDEADBEEF)
		require.Len(buf, 4)
		require.Equal(uint32(0xDEADBEEF), engine.Uint32(buf))

		buf = engine.AppendUint64(nil, 0x0123456789ABCDEF)
		require.Len(buf, 8)
		require.Equal(uint64(0x0123456789ABCDEF), engine.Uint64(buf))
	}
}

func TestLittleEndianLayout(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Attribute fingerprints rely on this exact byte layout.
	buf := engine.AppendUint32(nil, 0x04030201)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
}
