package jenkins


//============================================= Jenkins OneAtATime


// OneAtATime
//	The one-at-a-time hash, a much simpler single accumulator function independent of Mix and Final.
//	Each byte is added into the accumulator and smeared with a shift-add and a shift-xor, then a three step finalizer runs once.
//	Takes no seed. An empty key is valid and hashes to the finalized zero accumulator, which is 0.
func OneAtATime(key []byte) uint32 {
	var hash uint32

	for _, currByte := range key {
		hash += uint32(currByte)
		hash += hash << 10
		hash ^= hash >> 6
	}

	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15

	return hash
}
