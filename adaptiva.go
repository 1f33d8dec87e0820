// Package adaptiva implements an adaptive bit-packed integer array.
//
// Values are stored in fixed-width bit lanes packed into 32-bit words. The
// lane width ("entropy") starts at one bit and grows to the minimum width
// that represents every value inserted so far; each widening decodes the
// whole array under the old layout and re-encodes it under the new one, so
// the storage is never left in a mixed layout. Inserting a negative value
// (or any value wider than half a word) permanently switches the array to a
// two's-complement interpretation of every lane. The package maintains no
// global mutable state; independent Arrays can coexist.
package adaptiva

import (
	"fmt"
	"math/bits"
)

const (
	// wordBits is the width of one storage word.
	wordBits = 32

	// NotFound is returned by Find when no lane decodes to the target value.
	NotFound = -1
)

// Array is an adaptive bit-packed integer array. The zero value is not
// usable; create instances with New. An Array is not safe for concurrent
// use.
type Array struct {
	words   []uint32 // packed storage, exclusively owned
	size    int      // addressable element slots
	entropy int      // bits per lane, 1..wordBits-1, never decreases
	signed  bool     // sticky two's-complement interpretation
}

// New returns a fresh array holding one word's worth of 1-bit lanes, all
// zero, interpreted as unsigned.
func New() *Array {
	a := &Array{}
	a.Reset()
	return a
}

// Reset returns the array to its freshly created state and drops the old
// storage.
func (a *Array) Reset() {
	a.words = make([]uint32, 1)
	a.size = wordBits
	a.entropy = 1
	a.signed = false
}

// Len returns the number of addressable element slots. Slots never written
// decode as zero.
func (a *Array) Len() int { return a.size }

// Entropy returns the current number of bits per lane.
func (a *Array) Entropy() int { return a.entropy }

// Signed reports whether lanes are interpreted as two's-complement.
func (a *Array) Signed() bool { return a.signed }

// AllocatedBytes returns the size of the packed storage in bytes.
func (a *Array) AllocatedBytes() int { return len(a.words) * wordBits / 8 }

// Get returns the value at index. It panics if index is outside [0, Len()).
func (a *Array) Get(index int) int32 {
	if index < 0 || index >= a.size {
		panic(fmt.Sprintf("adaptiva: index %d out of range (size %d)", index, a.size))
	}
	return laneDecode(a.words, index, a.entropy, a.signed)
}

// Insert stores value at index, widening the lane width and extending the
// capacity first when needed. An index at or beyond Len() grows the array;
// the slots in between stay zero. Insert panics if index is negative.
func (a *Array) Insert(index int, value int32) {
	if index < 0 {
		panic(fmt.Sprintf("adaptiva: negative index %d", index))
	}
	need, signSwitch := requiredEntropy(value, a.signed)
	if need > a.entropy || signSwitch {
		a.reencode(max(a.entropy, need), a.signed || signSwitch)
	}
	if index >= a.size {
		a.grow(index)
	}
	laneEncode(a.words, index, value, a.entropy)
}

// requiredEntropy returns the minimum lane width for value and whether
// storing it flips a still-unsigned array to signed. Zero needs one bit;
// negative values need one extra bit for the sign. Widths past half a word
// are clamped to wordBits-1 so lanesPerWord never degenerates, and the
// clamp itself forces the signed interpretation.
func requiredEntropy(value int32, signed bool) (need int, signSwitch bool) {
	m := value >> (wordBits - 1)
	need = bits.Len32(uint32((value+m)^m) | 1)
	if value < 0 {
		need++
		signSwitch = !signed
	}
	if need > wordBits/2 {
		need = wordBits - 1
		signSwitch = !signed
	}
	return need, signSwitch
}

// reencode rebuilds the storage at a new lane width and sign mode. Every
// slot is decoded under the old settings and encoded under the new ones per
// index; raw bits are never reinterpreted across the layout change. The new
// buffer keeps one word of slack past the logical size. The lane width
// never shrinks, even when a sign switch arrives with a smaller width need.
func (a *Array) reencode(entropy int, signed bool) {
	words := make([]uint32, a.size/lanesPerWord(entropy)+1)
	for i := 0; i < a.size; i++ {
		laneEncode(words, i, laneDecode(a.words, i, a.entropy, a.signed), entropy)
	}
	a.words = words
	a.entropy = entropy
	a.signed = signed
}

// grow extends the storage so index is addressable at the current lane
// width. The logical size rounds up to a whole number of words; the
// trailing slots stay zero until written.
func (a *Array) grow(index int) {
	lanes := lanesPerWord(a.entropy)
	words := make([]uint32, index/lanes+1)
	copy(words, a.words)
	a.words = words
	a.size = len(words) * lanes
}
