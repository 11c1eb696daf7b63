// Package pcattr provides per-point attribute storage and value
// deduplication for 3D geometry compression.
//
// A point cloud or mesh carries one or more attributes (position, normal,
// color, ...), and many points typically share identical attribute values.
// pcattr stores each distinct value once in a byte-exact record buffer and
// keeps a compact mapping from point index to value index, so downstream
// encoders operate on a deduplicated value set instead of a fully expanded
// per-point array.
//
// # Core Features
//
//   - Fixed-size binary value records (component count × component size)
//   - Identity or explicit point-to-value index mapping
//   - Hash-driven value deduplication (xxHash64) with exact verification
//   - Typed float comparison paths (-0 == +0, NaN records never merge)
//   - Structural fingerprints for fast whole-attribute equivalence checks
//
// # Basic Usage
//
// Creating a position attribute and deduplicating its values:
//
//	import "github.com/meshforge/pcattr"
//
//	// float32 × 3 position attribute with 5 values
//	pos, _ := pcattr.NewPositionAttribute(5)
//
//	value := make([]byte, pos.ByteStride())
//	for i := range 5 {
//	    fillPosition(value, i)
//	    pos.SetAttributeValue(attribute.AttributeValueIndex(i), value)
//	}
//
//	unique, _ := pos.DeduplicateValues(pos)
//	fmt.Printf("%d points share %d unique values\n", pos.NumPoints(), unique)
//
// # Package Structure
//
// This package provides convenient top-level constructors around the
// attribute package. For explicit control over the descriptor, use the
// attribute and pointcloud packages directly.
package pcattr

import (
	"github.com/meshforge/pcattr/attribute"
	"github.com/meshforge/pcattr/format"
)

// NewAttribute creates a point attribute with the given layout and prepares
// storage for numValues values in identity mapping mode.
func NewAttribute(attrType format.AttributeType, dataType format.DataType, numComponents int, normalized bool, numValues int) (*attribute.PointAttribute, error) {
	pa, err := attribute.NewPointAttribute(attrType, dataType, numComponents, normalized)
	if err != nil {
		return nil, err
	}
	pa.Reset(numValues)

	return pa, nil
}

// NewPositionAttribute creates a float32 × 3 position attribute.
func NewPositionAttribute(numValues int) (*attribute.PointAttribute, error) {
	return NewAttribute(format.AttrPosition, format.TypeFloat32, 3, false, numValues)
}

// NewNormalAttribute creates a float32 × 3 normal attribute.
func NewNormalAttribute(numValues int) (*attribute.PointAttribute, error) {
	return NewAttribute(format.AttrNormal, format.TypeFloat32, 3, false, numValues)
}

// NewColorAttribute creates a normalized uint8 × 4 RGBA color attribute.
func NewColorAttribute(numValues int) (*attribute.PointAttribute, error) {
	return NewAttribute(format.AttrColor, format.TypeUint8, 4, true, numValues)
}

// NewTexCoordAttribute creates a float32 × 2 texture coordinate attribute.
func NewTexCoordAttribute(numValues int) (*attribute.PointAttribute, error) {
	return NewAttribute(format.AttrTexCoord, format.TypeFloat32, 2, false, numValues)
}
