package camber

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// ReadRawSamples parses a solver surface-sample file in the space-delimited
// raw format: two header lines, then one "x y z vx vy vz" record per line.
// The sample frame has the machine axis along y; points and velocities are
// folded into the meridional plane, giving (r, z) locations with cylindrical
// (vr, vth, vz) velocities:
//
//	r  = sqrt(x^2 + z^2),  th = atan2(z, x)
//	vr  =  cos(th)*vx + sin(th)*vz
//	vth = -sin(th)*vx + cos(th)*vz
//	vz  =  vy
func ReadRawSamples(rd io.Reader) (*NearestSampler, error) {
	sc := bufio.NewScanner(rd)

	for i := 0; i < 2; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("raw sample file truncated in header")
		}
	}

	var points []r2.Vec
	var vel [][3]float64
	line := 2
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 6 {
			return nil, fmt.Errorf("raw sample line %d: %d fields, expected 6", line, len(fields))
		}
		var v [6]float64
		for i, f := range fields {
			val, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("raw sample line %d field %d: %w", line, i+1, err)
			}
			v[i] = val
		}
		x, y, z := v[0], v[1], v[2]
		th := math.Atan2(z, x)
		sin, cos := math.Sin(th), math.Cos(th)
		points = append(points, r2.Vec{X: math.Hypot(x, z), Y: y})
		vel = append(vel, [3]float64{
			cos*v[3] + sin*v[5],
			-sin*v[3] + cos*v[5],
			v[4],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewNearestSampler(points, vel)
}

// LoadRawSamples reads a raw sample file from disk.
func LoadRawSamples(path string) (*NearestSampler, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRawSamples(f)
}
