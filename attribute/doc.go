// Package attribute implements per-point attribute storage for point clouds
// and meshes.
//
// A GeometryAttribute describes the byte layout of one data channel; a
// PointAttribute adds owned value storage, a point-to-value index mapping and
// value deduplication. Values are fixed-size byte records of
// NumComponents × component size, stored once per distinct value.
//
// All operations are synchronous memory operations. A PointAttribute must
// not be mutated concurrently.
package attribute
