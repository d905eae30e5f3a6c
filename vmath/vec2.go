package vmath

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Vec2 is a float32 2D vector laid out as two packed floats (X then Y)
// Matches the Vector2 layout native rendering code expects
type Vec2 struct {
	X, Y float32
}

var (
	Vec2Zero = Vec2{}
	Vec2One  = Vec2{1, 1}
)

func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Neg(v Vec2) Vec2 {
	return Vec2{-v.X, -v.Y}
}

// V2Min returns the component-wise minimum, NaN in either input wins
func V2Min(a, b Vec2) Vec2 {
	return Vec2{min(a.X, b.X), min(a.Y, b.Y)}
}

// V2Max returns the component-wise maximum, NaN in either input wins
func V2Max(a, b Vec2) Vec2 {
	return Vec2{max(a.X, b.X), max(a.Y, b.Y)}
}

// Equals compares components exactly
// NaN equals NaN and -0 equals +0 so the relation stays reflexive for every value
func (v Vec2) Equals(o Vec2) bool {
	return f32Equal(v.X, o.X) && f32Equal(v.Y, o.Y)
}

// Hash returns a hash consistent with Equals
func (v Vec2) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], f32HashBits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], f32HashBits(v.Y))
	return xxhash.Sum64(buf[:])
}

func (v Vec2) String() string {
	return fmt.Sprintf("<%g, %g>", v.X, v.Y)
}

func f32Equal(a, b float32) bool {
	return a == b || (isNaN32(a) && isNaN32(b))
}

// canonicalNaN is the quiet NaN pattern every NaN hashes as
const canonicalNaN uint32 = 0x7fc00000

// f32HashBits folds values that Equals treats as identical onto one bit pattern
func f32HashBits(f float32) uint32 {
	switch {
	case isNaN32(f):
		return canonicalNaN
	case f == 0:
		return 0
	}
	return math.Float32bits(f)
}

func isNaN32(f float32) bool {
	return math.IsNaN(float64(f))
}
