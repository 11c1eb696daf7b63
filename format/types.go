package format

type (
	DataType      uint8
	AttributeType uint8
)

const (
	TypeInvalid DataType = 0x0 // TypeInvalid represents an uninitialized data type.
	TypeInt8    DataType = 0x1 // TypeInt8 represents a signed 8-bit component.
	TypeUint8   DataType = 0x2 // TypeUint8 represents an unsigned 8-bit component.
	TypeInt16   DataType = 0x3 // TypeInt16 represents a signed 16-bit component.
	TypeUint16  DataType = 0x4 // TypeUint16 represents an unsigned 16-bit component.
	TypeInt32   DataType = 0x5 // TypeInt32 represents a signed 32-bit component.
	TypeUint32  DataType = 0x6 // TypeUint32 represents an unsigned 32-bit component.
	TypeInt64   DataType = 0x7 // TypeInt64 represents a signed 64-bit component.
	TypeUint64  DataType = 0x8 // TypeUint64 represents an unsigned 64-bit component.
	TypeFloat32 DataType = 0x9 // TypeFloat32 represents a 32-bit IEEE 754 component.
	TypeFloat64 DataType = 0xA // TypeFloat64 represents a 64-bit IEEE 754 component.
	TypeBool    DataType = 0xB // TypeBool represents a boolean component stored as one byte.

	AttrInvalid  AttributeType = 0x0 // AttrInvalid represents an uninitialized attribute kind.
	AttrPosition AttributeType = 0x1 // AttrPosition represents vertex positions.
	AttrNormal   AttributeType = 0x2 // AttrNormal represents vertex normals.
	AttrColor    AttributeType = 0x3 // AttrColor represents vertex colors.
	AttrTexCoord AttributeType = 0x4 // AttrTexCoord represents texture coordinates.
	AttrGeneric  AttributeType = 0x5 // AttrGeneric represents any other per-point channel.
)

// Size returns the byte size of a single component of the given data type,
// or 0 for an invalid type.
func (d DataType) Size() int64 {
	switch d {
	case TypeInt8, TypeUint8, TypeBool:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether the data type is one of the supported component types.
func (d DataType) Valid() bool {
	return d >= TypeInt8 && d <= TypeBool
}

func (d DataType) String() string {
	switch d {
	case TypeInt8:
		return "Int8"
	case TypeUint8:
		return "Uint8"
	case TypeInt16:
		return "Int16"
	case TypeUint16:
		return "Uint16"
	case TypeInt32:
		return "Int32"
	case TypeUint32:
		return "Uint32"
	case TypeInt64:
		return "Int64"
	case TypeUint64:
		return "Uint64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeBool:
		return "Bool"
	default:
		return "Invalid"
	}
}

func (a AttributeType) String() string {
	switch a {
	case AttrPosition:
		return "Position"
	case AttrNormal:
		return "Normal"
	case AttrColor:
		return "Color"
	case AttrTexCoord:
		return "TexCoord"
	case AttrGeneric:
		return "Generic"
	default:
		return "Invalid"
	}
}
