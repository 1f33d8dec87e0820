package adaptiva

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert := assert.New(t)
	arr := New()
	arr.Insert(0, -255)
	arr.Insert(1, 255)
	arr.Insert(2, 100)
	assert.Equal(int32(255), arr.Max())
	assert.Equal(int32(-255), arr.Min())
}

func TestMinMaxAllZero(t *testing.T) {
	arr := New()
	assert.Equal(t, int32(0), arr.Max())
	assert.Equal(t, int32(0), arr.Min())
}

func TestMinMaxIncludesUnwrittenSlots(t *testing.T) {
	// Slots never written decode as zero and participate in the scan.
	arr := New()
	arr.Insert(0, 42)
	assert.Equal(t, int32(0), arr.Min())
	assert.Equal(t, int32(42), arr.Max())
}

func TestStats(t *testing.T) {
	assert := assert.New(t)
	arr := New()
	for i := 0; i < 65536; i++ {
		arr.Insert(i, int32(i))
	}
	st := arr.Stats()
	assert.Equal(65536, st.Size)
	assert.Equal(16, st.Entropy)
	assert.Equal(65536*2, st.AllocatedBytes)
	assert.Equal(int32(65535), st.Max)
	assert.Equal(int32(0), st.Min)
}

func TestStatsString(t *testing.T) {
	st := Stats{Size: 64, Entropy: 4, AllocatedBytes: 32, Max: 9, Min: -3}
	assert.Equal(t, "capacity 64, entropy 4 bits, allocated 32 bytes, max 9, min -3", st.String())
}

func TestDump(t *testing.T) {
	arr := New()
	arr.Insert(0, -2)
	arr.Insert(3, 1)
	want := make([]int32, arr.Len())
	want[0] = -2
	want[3] = 1
	assert.Equal(t, want, arr.Dump())
}

func BenchmarkMax(b *testing.B) {
	arr := New()
	for i := 0; i < 65536; i++ {
		arr.Insert(i, int32(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	var v int32
	for i := 0; i < b.N; i++ {
		v = arr.Max()
	}
	benchInt = v
}
