// Package road generates jump roads: ordered runs of solid tiles and gaps in
// which no two gaps are adjacent.
package road

import "strings"

// Tile is one unit of road.
type Tile int

const (
	Empty Tile = iota // a gap; landing here is a fall
	Solid
)

func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Solid:
		return "Solid"
	default:
		return "Unknown"
	}
}

// Road is the full tile sequence; index order is spatial order.
type Road []Tile

// Rand is the random source used by Generate. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generate builds a road of the given length. Tile 0 is always Solid and a
// tile that follows a gap is always Solid; every other tile is a fair coin
// flip. A non-positive length yields an empty road.
func Generate(length int, rng Rand) Road {
	if length <= 0 {
		return Road{}
	}
	r := make(Road, 0, length)
	r = append(r, Solid)
	for i := 1; i < length; i++ {
		if r[i-1] == Empty {
			r = append(r, Solid)
			continue
		}
		r = append(r, Tile(rng.Intn(2)))
	}
	return r
}

// At returns the tile at i and whether i lies inside the road.
func (r Road) At(i int) (Tile, bool) {
	if i < 0 || i >= len(r) {
		return Empty, false
	}
	return r[i], true
}

// IsGap reports whether i is inside the road and Empty. Indices outside the
// road are never gaps.
func (r Road) IsGap(i int) bool {
	t, ok := r.At(i)
	return ok && t == Empty
}

// Valid reports whether r starts on solid ground and never has two gaps in a row.
func (r Road) Valid() bool {
	if len(r) == 0 {
		return true
	}
	if r[0] != Solid {
		return false
	}
	for i := 1; i < len(r); i++ {
		if r[i] == Empty && r[i-1] == Empty {
			return false
		}
	}
	return true
}

// Gaps counts the Empty tiles.
func (r Road) Gaps() int {
	n := 0
	for _, t := range r {
		if t == Empty {
			n++
		}
	}
	return n
}

// String renders the road as '#' for solid and '_' for gaps.
func (r Road) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, t := range r {
		if t == Solid {
			b.WriteByte('#')
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
