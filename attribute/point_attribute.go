package attribute

import (
	"github.com/meshforge/pcattr/buffer"
	"github.com/meshforge/pcattr/endian"
	"github.com/meshforge/pcattr/format"
	"github.com/meshforge/pcattr/internal/hash"
)

// PointAttribute stores the per-point data of one attribute. Multiple points
// can share the same attribute value, so values are stored once per distinct
// entry in an owned DataBuffer while an index map translates point indices to
// value indices.
//
// The mapping runs in one of two modes. In identity mode no table is stored
// and point p maps to value p. In explicit mode a per-point table holds one
// AttributeValueIndex per point; the table must be fully populated by the
// caller (or by DeduplicateValues) before reads.
type PointAttribute struct {
	GeometryAttribute

	indicesMap       []AttributeValueIndex
	numUniqueEntries int
	identityMapping  bool
}

// NewPointAttribute creates an empty attribute with the given layout and an
// owned zero-sized buffer. Call Reset to size the storage.
func NewPointAttribute(attrType format.AttributeType, dataType format.DataType, numComponents int, normalized bool) (*PointAttribute, error) {
	ga, err := NewGeometryAttribute(attrType, dataType, numComponents, normalized)
	if err != nil {
		return nil, err
	}
	ga.buf = buffer.NewDataBuffer(0)

	return &PointAttribute{
		GeometryAttribute: *ga,
		identityMapping:   true,
	}, nil
}

// Reset prepares the storage for numValues attribute values: the buffer is
// sized to hold them, the unique-entry count becomes numValues, and the
// mapping reverts to identity. Any previously stored data is invalidated.
func (pa *PointAttribute) Reset(numValues int) {
	pa.buf.Reset()
	pa.buf.Resize(int64(numValues) * pa.byteStride)
	pa.numUniqueEntries = numValues
	pa.identityMapping = true
	pa.indicesMap = nil
}

// Size returns the number of currently valid unique attribute values.
func (pa *PointAttribute) Size() int {
	return pa.numUniqueEntries
}

// Resize updates the unique-entry count without touching buffer capacity or
// mapping contents. The caller is responsible for the count matching the
// occupied records, e.g. after out-of-band compaction.
func (pa *PointAttribute) Resize(numUniqueEntries int) {
	pa.numUniqueEntries = numUniqueEntries
}

// NumPoints returns the number of points covered by the mapping: the table
// length in explicit mode, the unique-entry count in identity mode.
func (pa *PointAttribute) NumPoints() int {
	if pa.identityMapping {
		return pa.numUniqueEntries
	}

	return len(pa.indicesMap)
}

// IsMappingIdentity reports whether the point-to-value mapping is identity.
// Encoders use this to omit the mapping table from the output entirely.
func (pa *PointAttribute) IsMappingIdentity() bool {
	return pa.identityMapping
}

// MappedIndex returns the index of the attribute value used by the given
// point. In explicit mode the point must be within the table bounds.
func (pa *PointAttribute) MappedIndex(p PointIndex) AttributeValueIndex {
	if pa.identityMapping {
		return AttributeValueIndex(p)
	}

	return pa.indicesMap[p]
}

// SetIdentityMapping discards the explicit table and switches the mapping to
// identity. Any custom mapping is lost.
func (pa *PointAttribute) SetIdentityMapping() {
	pa.identityMapping = true
	pa.indicesMap = nil
}

// SetExplicitMapping switches the mapping to an explicit table of numPoints
// entries, all initially unassigned. Every entry must be set through
// SetPointMapEntry before the mapping is read.
func (pa *PointAttribute) SetExplicitMapping(numPoints int) {
	pa.identityMapping = false
	pa.indicesMap = make([]AttributeValueIndex, numPoints)
	for i := range pa.indicesMap {
		pa.indicesMap[i] = InvalidAttributeValueIndex
	}
}

// SetPointMapEntry assigns the attribute value index for one point. The
// mapping must be explicit; calling this in identity mode is a programming
// error.
func (pa *PointAttribute) SetPointMapEntry(p PointIndex, avi AttributeValueIndex) {
	if pa.identityMapping {
		panic("SetPointMapEntry: mapping is identity")
	}
	pa.indicesMap[p] = avi
}

// SetAttributeValue writes one value record. value must hold exactly
// ByteStride bytes.
func (pa *PointAttribute) SetAttributeValue(avi AttributeValueIndex, value []byte) {
	if int64(len(value)) != pa.byteStride {
		panic("SetAttributeValue: value size does not match byte stride")
	}
	pa.buf.Write(pa.GetAddress(avi), value)
}

// GetMappedValue resolves the point to its value index and copies the record
// into out. Pure read, no side effects.
func (pa *PointAttribute) GetMappedValue(p PointIndex, out []byte) error {
	return pa.GetValue(pa.MappedIndex(p), out)
}

// GetMappedAddress returns the byte offset of the record used by the given
// point.
func (pa *PointAttribute) GetMappedAddress(p PointIndex) int64 {
	return pa.GetAddress(pa.MappedIndex(p))
}

// Fingerprint returns a hash over the attribute's full observable state: the
// descriptor, the mapping mode, the unique-entry count, the mapping table and
// the buffer contents. Equal states hash equal; hash equality is a fast
// pre-filter for full comparison, not a guarantee.
//
// The mapping table is serialized little-endian before hashing so the result
// does not depend on the host byte order.
func (pa *PointAttribute) Fingerprint() uint64 {
	h := pa.GeometryAttribute.Fingerprint()
	identity := uint64(0)
	if pa.identityMapping {
		identity = 1
	}
	h = hash.Combine(identity, h)
	h = hash.Combine(uint64(pa.numUniqueEntries), h)
	h = hash.Combine(uint64(len(pa.indicesMap)), h)

	if len(pa.indicesMap) > 0 {
		engine := endian.GetLittleEndianEngine()
		raw := make([]byte, 0, len(pa.indicesMap)*4)
		for _, avi := range pa.indicesMap {
			raw = engine.AppendUint32(raw, uint32(avi))
		}
		h = hash.Combine(hash.Sum64(raw), h)
	}
	if pa.buf != nil {
		h = hash.Combine(hash.Sum64(pa.buf.Data()), h)
	}

	return h
}
