package jenkins

import "errors"


// initBasis is the arbitrary value folded into all three registers, along with the key length and caller seeds, before any input is consumed.
const initBasis = uint32(0xdeadbeef)

var (
	// ErrEmptyWordKey is returned when a word sequence with no elements is hashed. Byte keys have no such restriction.
	ErrEmptyWordKey = errors.New("provided word sequence must not be empty")
	// ErrWordOutOfRange is returned when an element of a decoded sequence cannot be represented as an unsigned 32 bit integer.
	ErrWordOutOfRange = errors.New("sequence element does not fit in an unsigned 32 bit integer")
	// ErrMisalignedKey is returned by the packing helpers when the byte key length is not a multiple of the 4 byte word size.
	ErrMisalignedKey = errors.New("key length must be a multiple of 4 bytes")
)
