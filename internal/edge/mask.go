package edge

// Mask is a fixed-size binary per-pixel grid backed by a bitset.
//
// It serves two roles in the pipeline: the edge/background classification
// produced by Detect, and the visited arena consumed by the region tracer.
// Indexing is row-major with (0,0) at the top-left corner.
//
// A Mask is not safe for concurrent mutation; each pipeline invocation owns
// its own masks.
type Mask struct {
	width  int
	height int
	bits   []uint64
}

// NewMask creates an all-clear mask with the given dimensions.
// Width and height must be non-negative.
func NewMask(width, height int) *Mask {
	n := width * height
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]uint64, (n+63)/64),
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// At reports whether the pixel at (x, y) is set.
// Coordinates outside the mask are reported as clear.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	i := y*m.width + x
	return m.bits[i>>6]&(1<<(uint(i)&63)) != 0
}

// Set marks the pixel at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := y*m.width + x
	m.bits[i>>6] |= 1 << (uint(i) & 63)
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	total := 0
	for _, w := range m.bits {
		for ; w != 0; w &= w - 1 {
			total++
		}
	}
	return total
}
