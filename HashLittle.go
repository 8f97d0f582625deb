package jenkins

import "encoding/binary"


//============================================= Jenkins HashLittle


// HashLittle
//	Hashes a byte key of any length, including empty, down to a single 32 bit digest.
//	Words are assembled from the key in little endian order, so digests match HashWord over the little endian packing of the same bytes.
func HashLittle(key []byte, seed uint32) uint32 {
	pc, _ := HashLittle2(key, seed, 0)
	return pc
}

// HashLittle2
//	Same as HashLittle but takes two seeds and returns two 32 bit digests.
//	The pair can be combined into a 64 bit identifier as (first << 32) | second.
//	When seed2 is 0, the first return value is exactly the digest HashLittle produces for key and seed1.
//
//	The key is consumed in 12 byte blocks, each packed little endian into the three registers and mixed.
//	The trailing 1 to 12 bytes land in the registers by position, low byte first, then Final runs once.
//	An empty key skips Final entirely and reports the seeded initial state.
func HashLittle2(key []byte, seed1 uint32, seed2 uint32) (uint32, uint32) {
	a := initBasis + uint32(len(key)) + seed1
	b := a
	c := a + seed2

	for len(key) > 12 {
		a += binary.LittleEndian.Uint32(key[0:4])
		b += binary.LittleEndian.Uint32(key[4:8])
		c += binary.LittleEndian.Uint32(key[8:12])

		a, b, c = Mix(a, b, c)
		key = key[12:]
	}

	if len(key) == 0 { return c, b }

	switch len(key) {
		case 12:
			c += uint32(key[11]) << 24
			fallthrough
		case 11:
			c += uint32(key[10]) << 16
			fallthrough
		case 10:
			c += uint32(key[9]) << 8
			fallthrough
		case 9:
			c += uint32(key[8])
			fallthrough
		case 8:
			b += uint32(key[7]) << 24
			fallthrough
		case 7:
			b += uint32(key[6]) << 16
			fallthrough
		case 6:
			b += uint32(key[5]) << 8
			fallthrough
		case 5:
			b += uint32(key[4])
			fallthrough
		case 4:
			a += uint32(key[3]) << 24
			fallthrough
		case 3:
			a += uint32(key[2]) << 16
			fallthrough
		case 2:
			a += uint32(key[1]) << 8
			fallthrough
		case 1:
			a += uint32(key[0])
	}

	_, b, c = Final(a, b, c)
	return c, b
}
