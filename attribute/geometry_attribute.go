package attribute

import (
	"fmt"

	"github.com/meshforge/pcattr/buffer"
	"github.com/meshforge/pcattr/errs"
	"github.com/meshforge/pcattr/format"
	"github.com/meshforge/pcattr/internal/hash"
)

// GeometryAttribute describes the layout of one per-point data channel: its
// semantic kind, component type and count, and the location of its values
// inside a DataBuffer. The descriptor is immutable after construction;
// changing component type or count requires creating a new attribute.
type GeometryAttribute struct {
	buf *buffer.DataBuffer

	attrType      format.AttributeType
	dataType      format.DataType
	numComponents int
	normalized    bool

	// byteStride is the size of one value record; byteOffset shifts all
	// record addresses, used when several attributes interleave one buffer.
	byteStride int64
	byteOffset int64

	uniqueID uint32
}

// NewGeometryAttribute creates a descriptor with a tightly packed layout
// (stride = numComponents × component size, offset 0) and no buffer attached.
func NewGeometryAttribute(attrType format.AttributeType, dataType format.DataType, numComponents int, normalized bool) (*GeometryAttribute, error) {
	if !dataType.Valid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidDataType, dataType)
	}
	if numComponents < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidComponentCount, numComponents)
	}

	return &GeometryAttribute{
		attrType:      attrType,
		dataType:      dataType,
		numComponents: numComponents,
		normalized:    normalized,
		byteStride:    int64(numComponents) * dataType.Size(),
	}, nil
}

// AttributeType returns the semantic kind of the attribute.
func (ga *GeometryAttribute) AttributeType() format.AttributeType { return ga.attrType }

// DataType returns the component type of the attribute.
func (ga *GeometryAttribute) DataType() format.DataType { return ga.dataType }

// NumComponents returns the number of components per attribute value.
func (ga *GeometryAttribute) NumComponents() int { return ga.numComponents }

// Normalized reports whether integer components represent normalized values.
func (ga *GeometryAttribute) Normalized() bool { return ga.normalized }

// ByteStride returns the byte size of one attribute value record.
func (ga *GeometryAttribute) ByteStride() int64 { return ga.byteStride }

// ByteOffset returns the byte offset of record 0 within the buffer.
func (ga *GeometryAttribute) ByteOffset() int64 { return ga.byteOffset }

// UniqueID returns the attribute's id within its owning container.
func (ga *GeometryAttribute) UniqueID() uint32 { return ga.uniqueID }

// SetUniqueID assigns the attribute's id; called by the owning container.
func (ga *GeometryAttribute) SetUniqueID(id uint32) { ga.uniqueID = id }

// Buffer returns the data buffer holding the attribute values, or nil when
// no buffer has been attached yet.
func (ga *GeometryAttribute) Buffer() *buffer.DataBuffer { return ga.buf }

// IsValid reports whether the descriptor has a usable layout and a buffer.
func (ga *GeometryAttribute) IsValid() bool {
	return ga.buf != nil && ga.dataType.Valid() && ga.numComponents > 0
}

// GetAddress returns the byte offset of the given value record.
func (ga *GeometryAttribute) GetAddress(avi AttributeValueIndex) int64 {
	return ga.byteOffset + ga.byteStride*int64(avi)
}

// GetValue copies the record at avi into out. out is typically ByteStride
// bytes long; shorter slices read a prefix of the record.
func (ga *GeometryAttribute) GetValue(avi AttributeValueIndex, out []byte) error {
	if avi == InvalidAttributeValueIndex {
		return errs.ErrInvalidValueIndex
	}

	return ga.buf.Read(ga.GetAddress(avi), out)
}

// Fingerprint returns a hash of the descriptor fields. Two descriptors with
// the same kind, type, component count, normalization and layout hash equal.
func (ga *GeometryAttribute) Fingerprint() uint64 {
	h := hash.Combine(uint64(ga.dataType), uint64(ga.attrType))
	h = hash.Combine(uint64(ga.numComponents), h)
	normalized := uint64(0)
	if ga.normalized {
		normalized = 1
	}
	h = hash.Combine(normalized, h)
	h = hash.Combine(uint64(ga.byteStride), h)

	return hash.Combine(uint64(ga.byteOffset), h)
}
