package adaptiva

// Find returns the lowest index whose decoded value equals value, or
// NotFound if no slot holds it. Whole words are tested at once: each word
// is XORed against the target replicated into every lane, and the zero-byte
// trick from "Bit Twiddling Hacks: Determine if a word has a zero byte",
// generalized from bytes to entropy-bit lanes, reports whether any lane
// cancelled out. Only hit words are inspected lane by lane.
//
// The scan covers every allocated word, including the zero-filled slack
// past Len(), so a search for 0 can land on an index that was never
// inserted.
func (a *Array) Find(value int32) int {
	lanes := lanesPerWord(a.entropy)
	mask := laneMask(a.entropy)

	// Replicate the target's low entropy bits and the lane-local carry
	// mask (all lane bits except the top one) into every lane position.
	var pattern, lowMask uint32
	for i := 0; i < lanes; i++ {
		shift := uint(i * a.entropy)
		pattern |= (uint32(value) & mask) << shift
		lowMask |= (mask >> 1) << shift
	}
	// Bits occupied by whole lanes; up to wordBits-1 bits are in use.
	used := ^uint32(0) >> uint(wordBits-lanes*a.entropy)

	for w, word := range a.words {
		diff := word ^ pattern
		if ^(((diff&lowMask)+lowMask)|diff|lowMask)&used == 0 {
			continue
		}
		// A lane in this word holds the target bit pattern. Verify by
		// decoding: a pattern hit is not a value hit when the target does
		// not fit in the current lane width.
		for lane := 0; lane < lanes; lane++ {
			index := w*lanes + lane
			if laneDecode(a.words, index, a.entropy, a.signed) == value {
				return index
			}
		}
	}
	return NotFound
}
