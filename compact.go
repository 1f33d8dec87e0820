package adaptiva

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/mhr3/streamvbyte"
)

// Compact snapshot layout (little-endian):
//
//	bytes 0-3:  uint32 element count
//	bytes 4-n:  StreamVByte-encoded zigzag values
//	last 8:     xxhash64 of everything before it

var bo = binary.LittleEndian

const (
	snapshotCountBytes = 4
	snapshotSumBytes   = 8
)

// ErrInvalidSnapshot is returned when a snapshot buffer is too small or malformed.
var ErrInvalidSnapshot = errors.New("adaptiva: invalid snapshot")

// ErrSnapshotChecksum is returned when a snapshot fails integrity verification.
var ErrSnapshotChecksum = errors.New("adaptiva: snapshot checksum mismatch")

// AppendCompact appends a compact snapshot of the logical contents to dst
// and returns the extended slice, reusing dst's capacity where possible.
// Values are zigzag-mapped so small negative values stay small, then
// StreamVByte-packed; an xxhash64 trailer guards the result against
// corruption.
func (a *Array) AppendCompact(dst []byte) []byte {
	zz := make([]uint32, a.size)
	for i := range zz {
		zz[i] = zigzagEncode32(laneDecode(a.words, i, a.entropy, a.signed))
	}

	maxTotal := snapshotCountBytes + streamvbyte.MaxEncodedLen(len(zz)) + snapshotSumBytes
	start := len(dst)
	dst = slices.Grow(dst, maxTotal)
	dst = dst[:start+maxTotal]

	bo.PutUint32(dst[start:], uint32(len(zz)))
	data := streamvbyte.EncodeUint32(zz, &streamvbyte.EncodeOptions[uint32]{
		Buffer: dst[start+snapshotCountBytes:],
	})
	end := start + snapshotCountBytes + len(data)
	bo.PutUint64(dst[end:], xxhash.Sum64(dst[start:end]))
	return dst[:end+snapshotSumBytes]
}

// LoadCompact rebuilds an array from an AppendCompact snapshot by replaying
// every value through Insert. The result holds the same logical values; the
// raw lane layout can differ from the snapshotted array's, since lane width
// and signedness depend on insertion history.
func LoadCompact(buf []byte) (*Array, error) {
	if len(buf) < snapshotCountBytes+snapshotSumBytes {
		return nil, fmt.Errorf("%w: buffer too small (need %d bytes, got %d)",
			ErrInvalidSnapshot, snapshotCountBytes+snapshotSumBytes, len(buf))
	}
	body := buf[:len(buf)-snapshotSumBytes]
	if xxhash.Sum64(body) != bo.Uint64(buf[len(body):]) {
		return nil, ErrSnapshotChecksum
	}

	count := int(bo.Uint32(body))
	payload := body[snapshotCountBytes:]
	// StreamVByte needs one control quarter-byte plus at least one data
	// byte per value.
	if minLen := count + (count+3)/4; len(payload) < minLen {
		return nil, fmt.Errorf("%w: truncated payload (need %d bytes for %d values, got %d)",
			ErrInvalidSnapshot, minLen, count, len(payload))
	}

	scratch := make([]uint32, count)
	values := streamvbyte.DecodeUint32(payload, count, &streamvbyte.DecodeOptions[uint32]{
		Buffer: scratch,
	})

	a := New()
	for i, v := range values {
		a.Insert(i, zigzagDecode32(v))
	}
	return a, nil
}

// zigzagEncode32 maps a signed value onto an unsigned one with the sign in
// the low bit.
func zigzagEncode32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// zigzagDecode32 is the inverse of zigzagEncode32.
func zigzagDecode32(v uint32) int32 {
	return int32((v >> 1) ^ uint32(-(int32(v & 1))))
}
