// Package pointcloud provides the container that owns the attributes of one
// point cloud or mesh.
//
// A PointCloud holds an ordered list of point attributes that all cover the
// same set of points. Attributes are registered under their semantic kind so
// encoders can locate e.g. the position channel without scanning.
package pointcloud

import (
	"fmt"

	"github.com/meshforge/pcattr/attribute"
	"github.com/meshforge/pcattr/format"
)

// PointCloud owns a set of point attributes covering numPoints points.
type PointCloud struct {
	attributes []*attribute.PointAttribute

	// namedAttributeIndex maps a semantic kind to the ids of the attributes
	// registered under it, in registration order.
	namedAttributeIndex map[format.AttributeType][]int

	numPoints int
}

// New creates an empty point cloud.
func New() *PointCloud {
	return &PointCloud{
		namedAttributeIndex: make(map[format.AttributeType][]int),
	}
}

// NumPoints returns the number of points in the cloud.
func (pc *PointCloud) NumPoints() int { return pc.numPoints }

// SetNumPoints sets the number of points in the cloud. Attributes added
// afterwards must cover this many points.
func (pc *PointCloud) SetNumPoints(n int) { pc.numPoints = n }

// NumAttributes returns the number of attributes owned by the cloud.
func (pc *PointCloud) NumAttributes() int { return len(pc.attributes) }

// Attribute returns the attribute with the given id.
func (pc *PointCloud) Attribute(id int) *attribute.PointAttribute {
	return pc.attributes[id]
}

// AddAttribute transfers ownership of pa to the cloud and returns its
// attribute id. The id doubles as the attribute's unique id.
func (pc *PointCloud) AddAttribute(pa *attribute.PointAttribute) int {
	id := len(pc.attributes)
	pa.SetUniqueID(uint32(id))
	pc.attributes = append(pc.attributes, pa)
	t := pa.AttributeType()
	pc.namedAttributeIndex[t] = append(pc.namedAttributeIndex[t], id)

	return id
}

// NumNamedAttributes returns how many attributes are registered under the
// given semantic kind.
func (pc *PointCloud) NumNamedAttributes(t format.AttributeType) int {
	return len(pc.namedAttributeIndex[t])
}

// NamedAttributeID returns the id of the i-th attribute of the given kind,
// or -1 when there is no such attribute.
func (pc *PointCloud) NamedAttributeID(t format.AttributeType, i int) int {
	ids := pc.namedAttributeIndex[t]
	if i < 0 || i >= len(ids) {
		return -1
	}

	return ids[i]
}

// NamedAttribute returns the first attribute of the given kind, or nil.
func (pc *PointCloud) NamedAttribute(t format.AttributeType) *attribute.PointAttribute {
	id := pc.NamedAttributeID(t, 0)
	if id < 0 {
		return nil
	}

	return pc.attributes[id]
}

// DeduplicateAttributeValues self-deduplicates every attribute in the cloud,
// aborting on the first attribute that fails.
func (pc *PointCloud) DeduplicateAttributeValues() error {
	for id, pa := range pc.attributes {
		if _, err := pa.DeduplicateValues(pa); err != nil {
			return fmt.Errorf("attribute %d (%s): %w", id, pa.AttributeType(), err)
		}
	}

	return nil
}
