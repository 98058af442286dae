package mesh

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// WriteSTL writes the mesh as binary STL. Quads are split into two triangles
// along the 0-2 diagonal; facet normals come from the right-hand rule over
// the face winding. Faces must already be sanitized to 3 or 4 vertices.
func WriteSTL(w io.Writer, m Mesh) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], "turbomesh binary STL")
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	count := 0
	for _, f := range m {
		switch len(f) {
		case 3:
			count++
		case 4:
			count += 2
		default:
			return &ShapeError{Vertices: len(f)}
		}
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(count)); err != nil {
		return err
	}

	for _, f := range m {
		if err := writeTriangle(bw, f[0], f[1], f[2]); err != nil {
			return err
		}
		if len(f) == 4 {
			if err := writeTriangle(bw, f[0], f[2], f[3]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteSTLFile writes the mesh to a binary STL file on disk.
func WriteSTLFile(path string, m Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSTL(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTriangle(w io.Writer, a, b, c r3.Vec) error {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	if l := r3.Norm(n); l > 0 {
		n = r3.Scale(1/l, n)
	}

	buf := make([]byte, 50)
	putVec(buf[0:], n)
	putVec(buf[12:], a)
	putVec(buf[24:], b)
	putVec(buf[36:], c)
	// Attribute byte count stays zero.
	_, err := w.Write(buf)
	return err
}

func putVec(b []byte, v r3.Vec) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}
