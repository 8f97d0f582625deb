package jenkins

import "encoding/binary"


//============================================= Jenkins HashBig


// HashBig
//	The structural mirror of HashLittle with every 4 byte word assembled in big endian order, most significant byte first.
//	Produces different digests than HashLittle for the same key, but matches HashWord over the big endian packing of the same bytes.
//	Block decomposition, tail handling and the empty key shortcut are otherwise identical to HashLittle2.
func HashBig(key []byte, seed uint32) uint32 {
	a := initBasis + uint32(len(key)) + seed
	b := a
	c := a

	for len(key) > 12 {
		a += binary.BigEndian.Uint32(key[0:4])
		b += binary.BigEndian.Uint32(key[4:8])
		c += binary.BigEndian.Uint32(key[8:12])

		a, b, c = Mix(a, b, c)
		key = key[12:]
	}

	if len(key) == 0 { return c }

	switch len(key) {
		case 12:
			c += uint32(key[11])
			fallthrough
		case 11:
			c += uint32(key[10]) << 8
			fallthrough
		case 10:
			c += uint32(key[9]) << 16
			fallthrough
		case 9:
			c += uint32(key[8]) << 24
			fallthrough
		case 8:
			b += uint32(key[7])
			fallthrough
		case 7:
			b += uint32(key[6]) << 8
			fallthrough
		case 6:
			b += uint32(key[5]) << 16
			fallthrough
		case 5:
			b += uint32(key[4]) << 24
			fallthrough
		case 4:
			a += uint32(key[3])
			fallthrough
		case 3:
			a += uint32(key[2]) << 8
			fallthrough
		case 2:
			a += uint32(key[1]) << 16
			fallthrough
		case 1:
			a += uint32(key[0]) << 24
	}

	_, _, c = Final(a, b, c)
	return c
}
