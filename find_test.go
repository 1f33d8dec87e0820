package adaptiva

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSequential(t *testing.T) {
	assert := assert.New(t)
	arr := New()
	const n = 65536
	for i := 0; i < n; i++ {
		arr.Insert(i, int32(i))
	}
	assert.Equal(n-1, arr.Find(int32(n-1)))
	assert.Equal(NotFound, arr.Find(100000))
}

func TestFindReturnsLowestIndex(t *testing.T) {
	arr := New()
	arr.Insert(3, 9)
	arr.Insert(40, 9)
	arr.Insert(41, 9)
	assert.Equal(t, 3, arr.Find(9))
}

func TestFindSingleBitLanes(t *testing.T) {
	assert := assert.New(t)
	arr := New()
	arr.Insert(9, 1)
	assert.Equal(1, arr.Entropy())
	assert.Equal(9, arr.Find(1))
	assert.Equal(0, arr.Find(0))
}

func TestFindNegative(t *testing.T) {
	assert := assert.New(t)
	arr := New()
	arr.Insert(0, 2)
	arr.Insert(7, -2)
	arr.Insert(12, -2)
	assert.Equal(7, arr.Find(-2))
	assert.Equal(0, arr.Find(2))
	assert.Equal(NotFound, arr.Find(-4))
}

func TestFindValueWiderThanLanes(t *testing.T) {
	// The low bits of the target can collide with a stored lane; the
	// decode step on the hit word must reject it.
	assert := assert.New(t)
	arr := New()
	arr.Insert(0, 34464) // 100000 & 0xFFFF
	arr.Insert(1, 60000) // force entropy 16
	assert.Equal(16, arr.Entropy())
	assert.Equal(NotFound, arr.Find(100000))
	assert.Equal(0, arr.Find(34464))
}

func TestFindZeroCanLandPastLen(t *testing.T) {
	assert := assert.New(t)
	arr := New()
	for i := 0; i < wordBits; i++ {
		arr.Insert(i, int32(1+i%7))
	}
	// Entropy 3 stores ten lanes per word; 32 slots occupy four words with
	// eight lanes of slack. Every logical slot is nonzero, so a search for
	// zero falls through to the first zero-filled slack lane.
	assert.Equal(3, arr.Entropy())
	assert.Equal(wordBits, arr.Len())
	assert.Equal(arr.Len(), arr.Find(0))
}

func TestFindMatchesLinearScan(t *testing.T) {
	arr := New()
	rng := rand.New(rand.NewSource(2025))
	for i := 0; i < 2000; i++ {
		arr.Insert(i, int32(rng.Intn(1023)-511))
	}
	for _, target := range []int32{-511, -100, -1, 0, 1, 77, 511, 600} {
		want := NotFound
		for i := 0; i < len(arr.words)*lanesPerWord(arr.entropy); i++ {
			if laneDecode(arr.words, i, arr.entropy, arr.signed) == target {
				want = i
				break
			}
		}
		assert.Equal(t, want, arr.Find(target), "target %d", target)
	}
}

var benchIdx int

func BenchmarkFind(b *testing.B) {
	arr := New()
	for i := 0; i < 65536; i++ {
		arr.Insert(i, int32(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	var idx int
	for i := 0; i < b.N; i++ {
		idx = arr.Find(65535)
	}
	benchIdx = idx
}
