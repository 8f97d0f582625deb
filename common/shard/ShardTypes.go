package shard

import "errors"


// HashFn maps a key to a shard index.
type HashFn func(key []byte) uint32

// HashGen generates a HashFn for a given total shard count.
type HashGen func(totalShards uint32) HashFn

// ShardSet partitions byte keys across a fixed number of shards with a jenkins based hash function.
type ShardSet struct {
	// TotalShards: the number of shards keys are partitioned across
	TotalShards uint32
	// fn: the hash function keys are routed through
	fn HashFn
}

// ErrZeroShards is returned when a shard set is created with no shards.
var ErrZeroShards = errors.New("total shards must be greater than zero")
