package jenkins_test

import "testing"

import "github.com/sirgallo/jenkins"


func TestHashWord(t *testing.T) {
	t.Run("Test Known Digests", func(t *testing.T) {
		expected := []struct {
			key  []uint32
			seed uint32
			digest uint32
		}{
			{ []uint32{ 1 }, 0, 0x72a82a9b },
			{ []uint32{ 0 }, 0, 0x049396b8 },
			{ []uint32{ 1 }, 0xdeadbeef, 0xc393af12 },
			{ []uint32{ 1, 2 }, 0, 0x8b4c7979 },
			{ []uint32{ 1, 2 }, 0xdeadbeef, 0x104adc6d },
			{ []uint32{ 1, 2, 3 }, 0, 0xa46158f5 },
			{ []uint32{ 1, 2, 3 }, 0xdeadbeef, 0x27983d68 },
			{ []uint32{ 1, 2, 3, 4 }, 0, 0x66491246 },
			{ []uint32{ 1, 2, 3, 4 }, 0xdeadbeef, 0xda03e646 },
			{ []uint32{ 1, 2, 3, 4, 5 }, 0, 0x629129c0 },
			{ []uint32{ 1, 2, 3, 4, 5 }, 0xdeadbeef, 0x9e1ca3c8 },
			{ []uint32{ 1, 2, 3, 4, 5, 6 }, 0, 0xe3e36b25 },
			{ []uint32{ 1, 2, 3, 4, 5, 6 }, 0xdeadbeef, 0xe9d2defd },
			{ []uint32{ 1, 2, 3, 4, 5, 6, 7 }, 0, 0x3e606a2c },
			{ []uint32{ 1, 2, 3, 4, 5, 6, 7 }, 0xdeadbeef, 0xf53cb6a6 },
		}

		for _, tCase := range expected {
			digest, hashErr := jenkins.HashWord(tCase.key, tCase.seed)
			if hashErr != nil { t.Errorf("error hashing word key: %s", hashErr.Error()) }
			if digest != tCase.digest {
				t.Errorf("digest mismatch for key %v seed %08x: got %08x, expected %08x", tCase.key, tCase.seed, digest, tCase.digest)
			}
		}
	})

	t.Run("Test Word Tail Residues", func(t *testing.T) {
		key := []uint32{ 0x01020315, 0x02040619, 0x0306091d, 0x04080c21, 0x050a0f25, 0x060c1229 }

		expected := []struct {
			wordCount int
			digest uint32
		}{
			{ 3, 0x1d3950b0 },
			{ 4, 0xac3b7baf },
			{ 5, 0xa413786a },
			{ 6, 0x919abe43 },
		}

		for _, tCase := range expected {
			digest, hashErr := jenkins.HashWord(key[:tCase.wordCount], 5)
			if hashErr != nil { t.Errorf("error hashing word key: %s", hashErr.Error()) }
			if digest != tCase.digest {
				t.Errorf("digest mismatch for %d words: got %08x, expected %08x", tCase.wordCount, digest, tCase.digest)
			}
		}
	})

	t.Run("Test Empty Key", func(t *testing.T) {
		_, hashErr := jenkins.HashWord(nil, 0)
		if hashErr != jenkins.ErrEmptyWordKey { t.Errorf("expected ErrEmptyWordKey, got: %v", hashErr) }

		_, _, hash2Err := jenkins.HashWord2([]uint32{}, 0, 0)
		if hash2Err != jenkins.ErrEmptyWordKey { t.Errorf("expected ErrEmptyWordKey, got: %v", hash2Err) }
	})

	t.Run("Test Determinism", func(t *testing.T) {
		key := []uint32{ 7, 11, 13, 17, 19 }

		first, hashErr := jenkins.HashWord(key, 42)
		if hashErr != nil { t.Errorf("error hashing word key: %s", hashErr.Error()) }

		for range make([]int, 10) {
			repeat, repeatErr := jenkins.HashWord(key, 42)
			if repeatErr != nil { t.Errorf("error hashing word key: %s", repeatErr.Error()) }
			if repeat != first { t.Errorf("repeated digest diverged: %08x != %08x", repeat, first) }
		}
	})
}

func TestHashWord2(t *testing.T) {
	t.Run("Test Known Digest Pair", func(t *testing.T) {
		pc, pb, hashErr := jenkins.HashWord2([]uint32{ 1, 2, 3, 4 }, 7, 11)
		if hashErr != nil { t.Errorf("error hashing word key: %s", hashErr.Error()) }
		if pc != 0xffb8b6bc || pb != 0x32575ae5 {
			t.Errorf("digest pair mismatch: got %08x %08x, expected ffb8b6bc 32575ae5", pc, pb)
		}
	})

	t.Run("Test Consistency With HashWord", func(t *testing.T) {
		keys := [][]uint32{
			{ 1 },
			{ 0xffffffff, 0 },
			{ 1, 2, 3 },
			{ 9, 8, 7, 6, 5, 4, 3, 2, 1 },
		}

		for _, key := range keys {
			for _, seed := range []uint32{ 0, 1, 0xdeadbeef } {
				single, singleErr := jenkins.HashWord(key, seed)
				if singleErr != nil { t.Errorf("error hashing word key: %s", singleErr.Error()) }

				pc, _, pairErr := jenkins.HashWord2(key, seed, 0)
				if pairErr != nil { t.Errorf("error hashing word key: %s", pairErr.Error()) }

				if pc != single {
					t.Errorf("HashWord2 with zero second seed diverged from HashWord: %08x != %08x", pc, single)
				}
			}
		}
	})
}
