package attribute

import (
	"bytes"
	"fmt"
	"math"

	"github.com/meshforge/pcattr/buffer"
	"github.com/meshforge/pcattr/endian"
	"github.com/meshforge/pcattr/errs"
	"github.com/meshforge/pcattr/format"
	"github.com/meshforge/pcattr/internal/hash"
)

// DeduplicateValues rewrites this attribute so that every distinct value of
// in is stored exactly once, with an explicit mapping from each point to its
// shared value. in may be this attribute itself. Returns the new unique-entry
// count.
//
// Values are compared by value for floating-point component types (so -0 and
// +0 deduplicate, NaN records never merge) and by exact bytes for everything
// else. Value indices are assigned in first-occurrence order over points
// 0..NumPoints-1, and the mapping is left explicit even when no duplicates
// were found.
//
// On error this attribute is left unmodified.
func (pa *PointAttribute) DeduplicateValues(in *PointAttribute) (int, error) {
	return pa.DeduplicateValuesWithOffset(in, 0)
}

// DeduplicateValuesWithOffset is DeduplicateValues with offset added to every
// source value index, for sources that interleave several logical attributes
// in one buffer.
func (pa *PointAttribute) DeduplicateValuesWithOffset(in *PointAttribute, offset AttributeValueIndex) (int, error) {
	if in.DataType() != pa.DataType() || in.NumComponents() != pa.NumComponents() {
		return 0, fmt.Errorf("%w: %s x%d vs %s x%d",
			errs.ErrMismatchedAttribute,
			pa.DataType(), pa.NumComponents(),
			in.DataType(), in.NumComponents())
	}

	switch pa.DataType() {
	case format.TypeFloat32:
		return deduplicateFloatValues[float32](pa, in, offset)
	case format.TypeFloat64:
		return deduplicateFloatValues[float64](pa, in, offset)
	case format.TypeInt8, format.TypeUint8,
		format.TypeInt16, format.TypeUint16,
		format.TypeInt32, format.TypeUint32,
		format.TypeInt64, format.TypeUint64,
		format.TypeBool:
		return deduplicateRawValues(pa, in, offset)
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedDataType, pa.DataType())
	}
}

// commitDeduplicated swaps the compacted staging buffer and the rebuilt
// explicit mapping into the attribute. Called only after the whole source has
// been consumed, so a failed deduplication never mutates the attribute.
func (pa *PointAttribute) commitDeduplicated(staging *buffer.DataBuffer, mapping []AttributeValueIndex, numUnique int) {
	pa.buf = staging
	pa.indicesMap = mapping
	pa.identityMapping = false
	pa.numUniqueEntries = numUnique
}

// deduplicateRawValues is the generic byte path: records are equal iff their
// bytes are equal. Used for all integer and bool component types, where value
// equality and byte equality coincide.
func deduplicateRawValues(pa, in *PointAttribute, offset AttributeValueIndex) (int, error) {
	numPoints := in.NumPoints()
	stride := pa.byteStride

	staging := buffer.NewDataBuffer(int64(numPoints) * stride)
	mapping := make([]AttributeValueIndex, numPoints)
	// Candidate lists per hash; a bucket scan with byte comparison keeps
	// hash collisions from merging distinct values.
	seen := make(map[uint64][]AttributeValueIndex, numPoints)
	record := make([]byte, stride)

	next := AttributeValueIndex(0)
	for p := 0; p < numPoints; p++ {
		src := in.MappedIndex(PointIndex(p)) + offset
		if err := in.GetValue(src, record); err != nil {
			return 0, err
		}

		found := InvalidAttributeValueIndex
		sum := hash.Sum64(record)
		for _, cand := range seen[sum] {
			pos := int64(cand) * stride
			if bytes.Equal(record, staging.Data()[pos:pos+stride]) {
				found = cand
				break
			}
		}
		if found == InvalidAttributeValueIndex {
			found = next
			next++
			staging.Write(int64(found)*stride, record)
			seen[sum] = append(seen[sum], found)
		}
		mapping[p] = found
	}

	pa.commitDeduplicated(staging, mapping, int(next))

	return int(next), nil
}

// deduplicateFloatValues is the typed path for floating-point components.
// Records are compared component-wise by value, so bit patterns that encode
// the same value (-0 and +0) merge while NaN records stay distinct. The hash
// input canonicalizes -0 to +0 to keep hashing consistent with equality.
func deduplicateFloatValues[T float32 | float64](pa, in *PointAttribute, offset AttributeValueIndex) (int, error) {
	numPoints := in.NumPoints()
	numComponents := pa.numComponents
	stride := pa.byteStride
	engine := endian.GetLittleEndianEngine()

	staging := buffer.NewDataBuffer(int64(numPoints) * stride)
	mapping := make([]AttributeValueIndex, numPoints)
	seen := make(map[uint64][]AttributeValueIndex, numPoints)

	// Decoded components of every unique record so far, numComponents per
	// entry, indexed by AttributeValueIndex.
	uniqueVals := make([]T, 0, numPoints*numComponents)

	record := make([]byte, stride)
	value := make([]T, numComponents)
	hashBuf := make([]byte, 0, stride)

	next := AttributeValueIndex(0)
	for p := 0; p < numPoints; p++ {
		src := in.MappedIndex(PointIndex(p)) + offset
		if err := in.GetValue(src, record); err != nil {
			return 0, err
		}
		decodeFloatComponents(value, record, engine)

		hashBuf = hashBuf[:0]
		for _, v := range value {
			hashBuf = appendCanonicalBits(hashBuf, v, engine)
		}

		found := InvalidAttributeValueIndex
		sum := hash.Sum64(hashBuf)
		for _, cand := range seen[sum] {
			if floatComponentsEqual(value, uniqueVals[int(cand)*numComponents:(int(cand)+1)*numComponents]) {
				found = cand
				break
			}
		}
		if found == InvalidAttributeValueIndex {
			found = next
			next++
			staging.Write(int64(found)*stride, record)
			uniqueVals = append(uniqueVals, value...)
			seen[sum] = append(seen[sum], found)
		}
		mapping[p] = found
	}

	pa.commitDeduplicated(staging, mapping, int(next))

	return int(next), nil
}

func decodeFloatComponents[T float32 | float64](out []T, record []byte, engine endian.EndianEngine) {
	switch any(out).(type) {
	case []float32:
		for i := range out {
			out[i] = T(math.Float32frombits(engine.Uint32(record[i*4:])))
		}
	default:
		for i := range out {
			out[i] = T(math.Float64frombits(engine.Uint64(record[i*8:])))
		}
	}
}

func appendCanonicalBits[T float32 | float64](dst []byte, v T, engine endian.EndianEngine) []byte {
	if v == 0 {
		v = 0 // collapse -0 to +0
	}
	switch any(v).(type) {
	case float32:
		return engine.AppendUint32(dst, math.Float32bits(float32(v)))
	default:
		return engine.AppendUint64(dst, math.Float64bits(float64(v)))
	}
}

// floatComponentsEqual compares records by value; any NaN component makes the
// records unequal, including against an identical bit pattern.
func floatComponentsEqual[T float32 | float64](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
