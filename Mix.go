package jenkins


//============================================= Jenkins Mix


// Mix
//	The shared avalanche step over the three 32 bit registers, taken and returned by value.
//	Performs six rounds of subtract, rotate-xor and add with rotation distances 4, 6, 8, 16, 19 and 4, cycling through the registers.
//	Applied once per 12 byte or 3 word block of input. All arithmetic wraps on overflow.
func Mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c; a ^= rot(c, 4); c += b
	b -= a; b ^= rot(a, 6); a += c
	c -= b; c ^= rot(b, 8); b += a
	a -= c; a ^= rot(c, 16); c += b
	b -= a; b ^= rot(a, 19); a += c
	c -= b; c ^= rot(b, 4); b += a

	return a, b, c
}

// Final
//	The closing decorrelation step applied exactly once after the last block has been mixed in.
//	Performs seven rounds of xor and subtract-rotate with rotation distances 14, 11, 25, 16, 4, 14 and 24.
//	c holds the primary digest afterwards and b a secondary, slightly less mixed one.
func Final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b; c -= rot(b, 14)
	a ^= c; a -= rot(c, 11)
	b ^= a; b -= rot(a, 25)
	c ^= b; c -= rot(b, 16)
	a ^= c; a -= rot(c, 4)
	b ^= a; b -= rot(a, 14)
	c ^= b; c -= rot(b, 24)

	return a, b, c
}

// rot
//	Rotates x left by k bits with wraparound. k must be greater than 0 and less than 32.
func rot(x, k uint32) uint32 {
	return (x << k) | (x >> (32 - k))
}
