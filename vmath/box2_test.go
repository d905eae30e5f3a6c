package vmath

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"unsafe"
)

func TestBox2Constants(t *testing.T) {
	if Box2Zero.Position != V2(0, 0) || Box2Zero.Size != V2(0, 0) {
		t.Errorf("Box2Zero = %v, want zero position and size", Box2Zero)
	}
	if Box2Unit.Position != V2(0, 0) || Box2Unit.Size != V2(1, 1) {
		t.Errorf("Box2Unit = %v, want position <0, 0> size <1, 1>", Box2Unit)
	}
	if !Box2Zero.Equals(Box2{}) {
		t.Error("Box2Zero should equal the zero value")
	}
}

func TestBox2Layout(t *testing.T) {
	var b Box2
	if size := unsafe.Sizeof(b); size != 16 {
		t.Errorf("Box2 size = %d bytes, want 16", size)
	}
	if off := unsafe.Offsetof(b.Size); off != 8 {
		t.Errorf("Size offset = %d, want 8", off)
	}
	if off := unsafe.Offsetof(b.Size.Y); off != 4 {
		t.Errorf("Vec2.Y offset = %d, want 4", off)
	}
}

func TestNewBox2(t *testing.T) {
	fromVec := NewBox2(V2(1, 2), V2(3, 4))
	fromScalars := NewBox2F(1, 2, 3, 4)

	if !fromVec.Equals(fromScalars) {
		t.Errorf("NewBox2 %v != NewBox2F %v", fromVec, fromScalars)
	}
	if fromVec.Position != V2(1, 2) || fromVec.Size != V2(3, 4) {
		t.Errorf("NewBox2 stored %v", fromVec)
	}
}

func TestNewBox2KeepsSignedSize(t *testing.T) {
	b := NewBox2F(5, 5, -2, -3)
	if b.Position != V2(5, 5) || b.Size != V2(-2, -3) {
		t.Errorf("negative size normalized: %v", b)
	}

	inf := float32(math.Inf(-1))
	nan := float32(math.NaN())
	b = NewBox2F(nan, 0, inf, 1)
	if !isNaN32(b.Position.X) || b.Size.X != inf {
		t.Errorf("non-finite components not stored as given: %v", b)
	}
}

func TestEnclose(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want Box2
	}{
		{
			name: "Reversed corners",
			a:    V2(2, 5),
			b:    V2(-1, 3),
			want: NewBox2F(-1, 3, 3, 2),
		},
		{
			name: "Ordered corners",
			a:    V2(0, 0),
			b:    V2(4, 2),
			want: NewBox2F(0, 0, 4, 2),
		},
		{
			name: "Mixed diagonal",
			a:    V2(4, 0),
			b:    V2(0, 2),
			want: NewBox2F(0, 0, 4, 2),
		},
		{
			name: "Same point",
			a:    V2(7, -3),
			b:    V2(7, -3),
			want: NewBox2F(7, -3, 0, 0),
		},
		{
			name: "Horizontal segment",
			a:    V2(3, 1),
			b:    V2(-3, 1),
			want: NewBox2F(-3, 1, 6, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Enclose(tt.a, tt.b)
			if !got.Equals(tt.want) {
				t.Errorf("Enclose(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEncloseProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float32 {
		return float32(rng.Float64()*2000 - 1000)
	}

	for i := 0; i < 10000; i++ {
		p := V2(coord(), coord())
		q := V2(coord(), coord())

		b := Enclose(p, q)
		if b.Size.X < 0 || b.Size.Y < 0 {
			t.Fatalf("Enclose(%v, %v) has negative size %v", p, q, b.Size)
		}
		if !b.Equals(Enclose(q, p)) {
			t.Fatalf("Enclose not symmetric for %v, %v", p, q)
		}
		if b.Position != V2Min(p, q) {
			t.Fatalf("Enclose(%v, %v) position %v is not the minimum corner", p, q, b.Position)
		}

		self := Enclose(p, p)
		if self.Size != Vec2Zero || self.Position != p {
			t.Fatalf("Enclose(%v, %v) = %v, want zero size at p", p, p, self)
		}
	}
}

func TestEncloseNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	b := Enclose(V2(nan, 0), V2(1, 1))
	if !isNaN32(b.Position.X) || !isNaN32(b.Size.X) {
		t.Errorf("NaN should propagate, got %v", b)
	}

	b = Enclose(V2(0, 0), V2(inf, 1))
	if b.Position.X != 0 || b.Size.X != inf {
		t.Errorf("Inf should propagate, got %v", b)
	}
}

func TestBox2Equals(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))

	tests := []struct {
		name string
		a, b Box2
		want bool
	}{
		{"Identical", NewBox2F(1, 2, 3, 4), NewBox2F(1, 2, 3, 4), true},
		{"PositionDiffers", NewBox2F(1, 2, 3, 4), NewBox2F(1, 2.5, 3, 4), false},
		{"SizeDiffers", NewBox2F(1, 2, 3, 4), NewBox2F(1, 2, 3, -4), false},
		{"SwappedFields", NewBox2F(1, 2, 3, 4), NewBox2F(3, 4, 1, 2), false},
		{"SameCellsOppositeSign", NewBox2F(0, 0, 2, 2), NewBox2F(2, 2, -2, -2), false},
		{"NaN", NewBox2F(nan, 0, 0, nan), NewBox2F(nan, 0, 0, nan), true},
		{"SignedZero", NewBox2F(negZero, 0, 1, 1), Box2Unit, true},
		{"NoTolerance", NewBox2F(0, 0, 1, 1), NewBox2F(0, 0, 1+1e-6, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equals(tt.a); got != tt.want {
				t.Errorf("Equals not symmetric")
			}
			if !tt.a.Equals(tt.a) {
				t.Errorf("Equals not reflexive for %v", tt.a)
			}
			if tt.want && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal boxes hash differently: %x vs %x", tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestBox2EqualsTransitive(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	a := NewBox2F(0, negZero, 1, 1)
	b := NewBox2F(negZero, 0, 1, 1)
	c := Box2Unit

	if !a.Equals(b) || !b.Equals(c) || !a.Equals(c) {
		t.Error("Equals not transitive across signed zeros")
	}
}

func TestBox2HashMixesFields(t *testing.T) {
	a := NewBox2F(1, 2, 3, 4)
	swapped := NewBox2F(3, 4, 1, 2)
	if a.Hash() == swapped.Hash() {
		t.Error("swapping position and size should change the hash")
	}

	same := NewBox2F(1, 1, 1, 1)
	if same.Hash() == 0 {
		t.Error("identical fields should not cancel out")
	}

	rng := rand.New(rand.NewPCG(3, 4))
	seen := make(map[uint64]Box2)
	for i := 0; i < 5000; i++ {
		b := NewBox2F(
			float32(rng.IntN(64)), float32(rng.IntN(64)),
			float32(rng.IntN(64)-32), float32(rng.IntN(64)-32),
		)
		h := b.Hash()
		if prev, ok := seen[h]; ok && !prev.Equals(b) {
			t.Fatalf("hash collision between %v and %v", prev, b)
		}
		seen[h] = b
	}
}

func TestBox2String(t *testing.T) {
	tests := []struct {
		box  Box2
		want string
	}{
		{Box2Zero, "<0, 0>\n<0, 0>"},
		{Box2Unit, "<0, 0>\n<1, 1>"},
		{NewBox2F(-1, 3, 3, 2), "<-1, 3>\n<3, 2>"},
		{NewBox2F(0.5, 0, -2.25, 1), "<0.5, 0>\n<-2.25, 1>"},
	}

	for _, tt := range tests {
		if got := tt.box.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestBox2ConcurrentUse runs pure operations on shared values from many goroutines
// Run with -race to check there are no hidden writes
func TestBox2ConcurrentUse(t *testing.T) {
	shared := NewBox2F(1, 2, 3, 4)
	want := shared.Hash()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				p := V2(float32(i), float32(j))
				b := Enclose(p, shared.Position)
				_ = b.String()
				if shared.Hash() != want || !shared.Equals(NewBox2F(1, 2, 3, 4)) {
					t.Error("shared box changed")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
