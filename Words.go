package jenkins

import "encoding/binary"
import "math"

import "github.com/spf13/cast"


//============================================= Jenkins Words


// DecodeWordSeq
//	Decodes a heterogeneous sequence arriving from a call boundary into packed 32 bit words for the word oriented hashers.
//	Elements may be any integer kind, or anything else cast can coerce to an unsigned integer.
//	Negative elements and elements above the unsigned 32 bit maximum are rejected, so a decoded word is never silently truncated.
//	An empty sequence decodes to an empty word slice. Rejecting empty input is HashWord's concern, not the decoder's.
func DecodeWordSeq(seq []any) ([]uint32, error) {
	words := make([]uint32, len(seq))

	for idx, elem := range seq {
		wide, castErr := cast.ToUint64E(elem)
		if castErr != nil { return nil, ErrWordOutOfRange }
		if wide > math.MaxUint32 { return nil, ErrWordOutOfRange }

		words[idx] = uint32(wide)
	}

	return words, nil
}

// PackLittle
//	Packs a byte key into 32 bit words in little endian order, least significant byte first.
//	The key length must be a multiple of 4. HashWord over the packed words equals HashLittle over the original key.
func PackLittle(key []byte) ([]uint32, error) {
	if len(key) % 4 != 0 { return nil, ErrMisalignedKey }

	words := make([]uint32, len(key) / 4)
	for idx := range words {
		words[idx] = binary.LittleEndian.Uint32(key[idx * 4:(idx + 1) * 4])
	}

	return words, nil
}

// PackBig
//	Packs a byte key into 32 bit words in big endian order, most significant byte first.
//	The key length must be a multiple of 4. HashWord over the packed words equals HashBig over the original key.
func PackBig(key []byte) ([]uint32, error) {
	if len(key) % 4 != 0 { return nil, ErrMisalignedKey }

	words := make([]uint32, len(key) / 4)
	for idx := range words {
		words[idx] = binary.BigEndian.Uint32(key[idx * 4:(idx + 1) * 4])
	}

	return words, nil
}
