package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dataType DataType
		size     int64
	}{
		{TypeInt8, 1},
		{TypeUint8, 1},
		{TypeBool, 1},
		{TypeInt16, 2},
		{TypeUint16, 2},
		{TypeInt32, 4},
		{TypeUint32, 4},
		{TypeFloat32, 4},
		{TypeInt64, 8},
		{TypeUint64, 8},
		{TypeFloat64, 8},
		{TypeInvalid, 0},
		{DataType(0xFF), 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.size, tt.dataType.Size(), "size of %s", tt.dataType)
	}
}

func TestDataTypeValid(t *testing.T) {
	require := require.New(t)

	for d := TypeInt8; d <= TypeBool; d++ {
		require.True(d.Valid(), "%s should be valid", d)
	}
	require.False(TypeInvalid.Valid())
	require.False(DataType(0xFF).Valid())
}

func TestStrings(t *testing.T) {
	require := require.New(t)

	require.Equal("Float32", TypeFloat32.String())
	require.Equal("Bool", TypeBool.String())
	require.Equal("Invalid", TypeInvalid.String())
	require.Equal("Position", AttrPosition.String())
	require.Equal("Generic", AttrGeneric.String())
	require.Equal("Invalid", AttrInvalid.String())
}
