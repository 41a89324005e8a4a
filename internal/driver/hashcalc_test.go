package driver

import "testing"

func TestCombineDigestSeparatesParts(t *testing.T) {
	a := combineDigest([]byte("ab"), []byte("c"))
	b := combineDigest([]byte("a"), []byte("bc"))
	if a == b {
		t.Fatal("digests of differently split input must differ")
	}
	if a != combineDigest([]byte("ab"), []byte("c")) {
		t.Fatal("digest must be deterministic")
	}
}
