package pointcloud

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshforge/pcattr/attribute"
	"github.com/meshforge/pcattr/errs"
	"github.com/meshforge/pcattr/format"
)

func newAttribute(t *testing.T, attrType format.AttributeType, dataType format.DataType, numComponents, numValues int) *attribute.PointAttribute {
	t.Helper()

	pa, err := attribute.NewPointAttribute(attrType, dataType, numComponents, false)
	require.NoError(t, err)
	pa.Reset(numValues)

	return pa
}

func TestAddAndLookupAttributes(t *testing.T) {
	require := require.New(t)

	pc := New()
	pc.SetNumPoints(4)
	require.Equal(4, pc.NumPoints())
	require.Equal(0, pc.NumAttributes())
	require.Nil(pc.NamedAttribute(format.AttrPosition))
	require.Equal(-1, pc.NamedAttributeID(format.AttrColor, 0))

	pos := newAttribute(t, format.AttrPosition, format.TypeFloat32, 3, 4)
	gen0 := newAttribute(t, format.AttrGeneric, format.TypeUint8, 1, 4)
	gen1 := newAttribute(t, format.AttrGeneric, format.TypeUint16, 1, 4)

	require.Equal(0, pc.AddAttribute(pos))
	require.Equal(1, pc.AddAttribute(gen0))
	require.Equal(2, pc.AddAttribute(gen1))

	require.Equal(3, pc.NumAttributes())
	require.Same(pos, pc.Attribute(0))
	require.Same(pos, pc.NamedAttribute(format.AttrPosition))
	require.Equal(uint32(2), gen1.UniqueID())

	require.Equal(2, pc.NumNamedAttributes(format.AttrGeneric))
	require.Equal(1, pc.NamedAttributeID(format.AttrGeneric, 0))
	require.Equal(2, pc.NamedAttributeID(format.AttrGeneric, 1))
	require.Equal(-1, pc.NamedAttributeID(format.AttrGeneric, 2))
}

func TestDeduplicateAttributeValues(t *testing.T) {
	require := require.New(t)

	pc := New()
	pc.SetNumPoints(4)

	pos := newAttribute(t, format.AttrPosition, format.TypeUint8, 3, 4)
	for i, v := range [][]byte{{1, 1, 1}, {1, 1, 1}, {2, 2, 2}, {1, 1, 1}} {
		pos.SetAttributeValue(attribute.AttributeValueIndex(i), v)
	}
	color := newAttribute(t, format.AttrColor, format.TypeUint8, 4, 4)
	for i, v := range [][]byte{{255, 0, 0, 255}, {255, 0, 0, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}} {
		color.SetAttributeValue(attribute.AttributeValueIndex(i), v)
	}
	pc.AddAttribute(pos)
	pc.AddAttribute(color)

	require.NoError(pc.DeduplicateAttributeValues())
	require.Equal(2, pos.Size())
	require.Equal(2, color.Size())
	require.False(pos.IsMappingIdentity())
	require.Equal(attribute.AttributeValueIndex(0), pos.MappedIndex(attribute.PointIndex(3)))
	require.Equal(attribute.AttributeValueIndex(1), color.MappedIndex(attribute.PointIndex(3)))
}

func TestDeduplicateAttributeValuesPropagatesFailure(t *testing.T) {
	require := require.New(t)

	pc := New()
	pc.AddAttribute(&attribute.PointAttribute{})

	err := pc.DeduplicateAttributeValues()
	require.ErrorIs(err, errs.ErrUnsupportedDataType)
}
