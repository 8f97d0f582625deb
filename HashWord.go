package jenkins


//============================================= Jenkins HashWord


// HashWord
//	Hashes a non empty sequence of pre packed 32 bit words down to a single 32 bit digest.
//	The seed selects a member of the hash family. The same key with two different seeds produces two unrelated digests.
//	An empty sequence is an error, unlike the byte oriented functions where an empty key is a valid input.
func HashWord(key []uint32, seed uint32) (uint32, error) {
	if len(key) == 0 { return 0, ErrEmptyWordKey }

	pc, _ := hashWordBlocks(key, seed, 0)
	return pc, nil
}

// HashWord2
//	Same as HashWord but takes two seeds and returns two 32 bit digests.
//	The first return value is the better mixed of the two, so use it first.
//	When seed2 is 0, the first return value is exactly the digest HashWord produces for key and seed1.
func HashWord2(key []uint32, seed1 uint32, seed2 uint32) (uint32, uint32, error) {
	if len(key) == 0 { return 0, 0, ErrEmptyWordKey }

	pc, pb := hashWordBlocks(key, seed1, seed2)
	return pc, pb, nil
}

// hashWordBlocks
//	Folds the key through Mix three words at a time, leaving 1 to 3 trailing words for the tail.
//	Tail words land in a, b and c by position, with the last word of a full 3 word tail landing in c, then Final runs once.
func hashWordBlocks(key []uint32, pc uint32, pb uint32) (uint32, uint32) {
	a := initBasis + (uint32(len(key)) << 2) + pc
	b := a
	c := a + pb

	for len(key) > 3 {
		a += key[0]
		b += key[1]
		c += key[2]

		a, b, c = Mix(a, b, c)
		key = key[3:]
	}

	switch len(key) {
		case 3:
			c += key[2]
			fallthrough
		case 2:
			b += key[1]
			fallthrough
		case 1:
			a += key[0]
	}

	_, b, c = Final(a, b, c)
	return c, b
}
