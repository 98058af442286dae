package mesh

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSTLLayout(t *testing.T) {
	m := Mesh{
		Face{{X: 0}, {X: 1}, {Y: 1}},                         // one triangle
		Face{{Z: 1}, {X: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {Y: 1, Z: 1}}, // quad -> two triangles
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, m))

	data := buf.Bytes()
	// 80-byte header + 4-byte count + 3 facets of 50 bytes.
	require.Equal(t, 80+4+3*50, len(data))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(data[80:84]))

	// First facet normal: CCW triangle in the xy plane faces +z.
	nz := math.Float32frombits(binary.LittleEndian.Uint32(data[84+8:]))
	assert.InDelta(t, 1, nz, 1e-6)

	// First vertex of the first facet is the origin.
	for i := 0; i < 3; i++ {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data[84+12+4*i:]))
		assert.Equal(t, float32(0), v)
	}

	// Attribute byte count is zero on every facet.
	for f := 0; f < 3; f++ {
		off := 84 + f*50 + 48
		assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[off:off+2]))
	}
}

func TestWriteSTLRejectsMalformedFace(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSTL(&buf, Mesh{Face{{X: 0}, {X: 1}}})
	assert.Error(t, err)
}
