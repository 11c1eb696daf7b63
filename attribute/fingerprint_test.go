package attribute

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshforge/pcattr/format"
)

func buildFingerprintFixture(t *testing.T) *PointAttribute {
	t.Helper()

	pa := newTestAttribute(t, format.TypeFloat32, 3, 4)
	setValues(pa, [][]byte{
		f32Record(1, 2, 3),
		f32Record(4, 5, 6),
		f32Record(1, 2, 3),
		f32Record(7, 8, 9),
	})

	return pa
}

func TestFingerprintDeterminism(t *testing.T) {
	require := require.New(t)

	a := buildFingerprintFixture(t)
	b := buildFingerprintFixture(t)
	require.Equal(a.Fingerprint(), b.Fingerprint())

	// Identical operation sequences keep hashing equal after deduplication.
	_, err := a.DeduplicateValues(a)
	require.NoError(err)
	_, err = b.DeduplicateValues(b)
	require.NoError(err)
	require.Equal(a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintBufferSensitivity(t *testing.T) {
	require := require.New(t)

	a := buildFingerprintFixture(t)
	b := buildFingerprintFixture(t)

	record := f32Record(1, 2, 3)
	record[0] ^= 0x01
	b.SetAttributeValue(AttributeValueIndex(0), record)
	require.NotEqual(a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintMappingSensitivity(t *testing.T) {
	require := require.New(t)

	a := buildFingerprintFixture(t)
	b := buildFingerprintFixture(t)
	for _, pa := range []*PointAttribute{a, b} {
		pa.SetExplicitMapping(4)
		for p := 0; p < 4; p++ {
			pa.SetPointMapEntry(PointIndex(p), AttributeValueIndex(p))
		}
	}
	require.Equal(a.Fingerprint(), b.Fingerprint())

	b.SetPointMapEntry(PointIndex(3), AttributeValueIndex(0))
	require.NotEqual(a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintMappingModeSensitivity(t *testing.T) {
	require := require.New(t)

	a := buildFingerprintFixture(t)
	b := buildFingerprintFixture(t)

	// An explicit identity-shaped table is a different observable state
	// than true identity mode.
	b.SetExplicitMapping(4)
	for p := 0; p < 4; p++ {
		b.SetPointMapEntry(PointIndex(p), AttributeValueIndex(p))
	}
	require.NotEqual(a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintDescriptorSensitivity(t *testing.T) {
	require := require.New(t)

	a, err := NewPointAttribute(format.AttrPosition, format.TypeFloat32, 3, false)
	require.NoError(err)
	b, err := NewPointAttribute(format.AttrNormal, format.TypeFloat32, 3, false)
	require.NoError(err)
	require.NotEqual(a.Fingerprint(), b.Fingerprint())

	c, err := NewPointAttribute(format.AttrPosition, format.TypeFloat32, 3, true)
	require.NoError(err)
	require.NotEqual(a.Fingerprint(), c.Fingerprint())
}
