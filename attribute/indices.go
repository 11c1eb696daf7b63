package attribute

// PointIndex identifies one logical point in the owning point cloud. Point
// indices are dense and start at 0.
type PointIndex uint32

// AttributeValueIndex identifies one stored, unique attribute value within an
// attribute's data buffer.
//
// PointIndex and AttributeValueIndex are deliberately distinct types; code
// translating between them must go through PointAttribute.MappedIndex.
type AttributeValueIndex uint32

// InvalidAttributeValueIndex marks an index-map entry that has not been
// assigned yet. It must never be observable through MappedIndex once a
// caller has finished populating an explicit mapping.
const InvalidAttributeValueIndex = ^AttributeValueIndex(0)
