package shard

import "github.com/sirgallo/jenkins"


//============================================= Shard


// DefaultHashGen
//	Generates the default hash function for a shard count, HashLittle with seed 0 reduced modulo the count.
func DefaultHashGen(totalShards uint32) HashFn {
	return func(key []byte) uint32 {
		return jenkins.HashLittle(key, 0) % totalShards
	}
}

// NewShardSet
//	Creates a shard set over totalShards shards using the default hash function.
func NewShardSet(totalShards uint32) (*ShardSet, error) {
	return NewShardSetWithGen(totalShards, DefaultHashGen)
}

// NewShardSetWithGen
//	Creates a shard set with a caller supplied hash generator, for callers that need a different seed or hash family member.
func NewShardSetWithGen(totalShards uint32, gen HashGen) (*ShardSet, error) {
	if totalShards == 0 { return nil, ErrZeroShards }

	return &ShardSet{ TotalShards: totalShards, fn: gen(totalShards) }, nil
}

// Lookup
//	Returns the shard a key belongs to.
func (sSet *ShardSet) Lookup(key []byte) uint32 {
	return sSet.fn(key)
}

// LookupPair
//	Returns two shard candidates for a key from a single pass over it, for double hashing placement schemes.
//	The first candidate always equals Lookup for the default hash function.
func (sSet *ShardSet) LookupPair(key []byte) (uint32, uint32) {
	pc, pb := jenkins.HashLittle2(key, 0, 0)
	return pc % sSet.TotalShards, pb % sSet.TotalShards
}

// LookupAtLevel
//	Returns the shard for a key under a level derived seed, so repeated partitioning of the same keys decorrelates across levels.
func (sSet *ShardSet) LookupAtLevel(key []byte, level int) uint32 {
	seed := uint32(level + 1)
	return jenkins.HashLittle(key, seed) % sSet.TotalShards
}
