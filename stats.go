package adaptiva

import (
	"fmt"
	"math"
)

// Max returns the largest decoded value across all addressable slots. The
// running maximum is seeded at the smallest representable word value, so an
// all-zero array reports 0.
func (a *Array) Max() int32 {
	m := int32(math.MinInt32)
	for i := 0; i < a.size; i++ {
		if v := laneDecode(a.words, i, a.entropy, a.signed); v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest decoded value across all addressable slots,
// seeded at the largest representable word value.
func (a *Array) Min() int32 {
	m := int32(math.MaxInt32)
	for i := 0; i < a.size; i++ {
		if v := laneDecode(a.words, i, a.entropy, a.signed); v < m {
			m = v
		}
	}
	return m
}

// Stats is a diagnostic snapshot of an Array's shape and value range.
type Stats struct {
	Size           int
	Entropy        int
	AllocatedBytes int
	Max            int32
	Min            int32
}

// Stats reports the current size, lane width, allocation and value range.
// It performs two full decode scans for the extremes.
func (a *Array) Stats() Stats {
	return Stats{
		Size:           a.size,
		Entropy:        a.entropy,
		AllocatedBytes: a.AllocatedBytes(),
		Max:            a.Max(),
		Min:            a.Min(),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("capacity %d, entropy %d bits, allocated %d bytes, max %d, min %d",
		s.Size, s.Entropy, s.AllocatedBytes, s.Max, s.Min)
}

// Dump decodes every addressable slot into a fresh slice.
func (a *Array) Dump() []int32 {
	out := make([]int32, a.size)
	for i := range out {
		out[i] = laneDecode(a.words, i, a.entropy, a.signed)
	}
	return out
}
