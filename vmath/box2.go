package vmath

// Box2 is an axis-aligned 2D box in size-preserving form
// Position is a reference corner and Size extends from it; Size may be negative,
// so Position is not guaranteed to be the minimum corner
// Layout is two packed Vec2 values (4 float32, 16 bytes) for native interop
type Box2 struct {
	Position Vec2
	Size     Vec2
}

var (
	// Box2Zero has position 0,0 and size 0,0
	Box2Zero = Box2{}
	// Box2Unit has position 0,0 and size 1,1
	Box2Unit = Box2{Position: Vec2{0, 0}, Size: Vec2{1, 1}}
)

// hashMul is the odd multiplier used to mix Position and Size hashes
const hashMul = 397

// NewBox2 creates a box from position and size without validation
func NewBox2(position, size Vec2) Box2 {
	return Box2{Position: position, Size: size}
}

// NewBox2F creates a box from scalar components, same as NewBox2
func NewBox2F(positionX, positionY, sizeX, sizeY float32) Box2 {
	return Box2{
		Position: Vec2{positionX, positionY},
		Size:     Vec2{sizeX, sizeY},
	}
}

// Enclose returns the smallest box spanning both points
// Position is the minimum corner and Size is non-negative for finite inputs
func Enclose(a, b Vec2) Box2 {
	lo := V2Min(a, b)
	hi := V2Max(a, b)
	return Box2{Position: lo, Size: V2Sub(hi, lo)}
}

// Equals reports exact component-wise equality of position and size
func (b Box2) Equals(o Box2) bool {
	return b.Position.Equals(o.Position) && b.Size.Equals(o.Size)
}

// Hash returns a hash consistent with Equals
func (b Box2) Hash() uint64 {
	h := b.Position.Hash()
	h = (h * hashMul) ^ b.Size.Hash()
	return h
}

// String renders position and size on separate lines, for debugging only
func (b Box2) String() string {
	return b.Position.String() + "\n" + b.Size.String()
}
