package adaptiva

// Lane addressing. A word holds wordBits/entropy lanes of entropy bits
// each; lane 0 occupies the least significant bits of its word.

// lanesPerWord returns how many entropy-bit lanes fit in one storage word.
func lanesPerWord(entropy int) int {
	return wordBits / entropy
}

// laneMask returns a mask covering the low entropy bits of a lane.
func laneMask(entropy int) uint32 {
	return 1<<uint(entropy) - 1
}

// laneDecode extracts the logical value at index from the packed words.
// When signed is set, the top bit of the lane is a two's-complement sign
// bit: the field is sign-extended by XOR-then-subtract against a mask with
// only that bit set.
func laneDecode(words []uint32, index, entropy int, signed bool) int32 {
	lanes := lanesPerWord(entropy)
	v := words[index/lanes] >> (uint(index%lanes) * uint(entropy))
	v &= laneMask(entropy)
	if signed {
		signMask := uint32(1) << uint(entropy-1)
		return int32(v^signMask) - int32(signMask)
	}
	return int32(v)
}

// laneEncode clears the entropy-bit field at index and ORs in the low
// entropy bits of value. The caller guarantees value fits in entropy bits;
// wider values are silently truncated.
func laneEncode(words []uint32, index int, value int32, entropy int) {
	lanes := lanesPerWord(entropy)
	shift := uint(index%lanes) * uint(entropy)
	mask := laneMask(entropy)
	w := &words[index/lanes]
	*w = *w&^(mask<<shift) | (uint32(value)&mask)<<shift
}
