package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hasher_Hash(t *testing.T) {
	hasher := NewSHA256Hasher()

	digest := hasher.Hash("hunter2")

	// Deterministic: the same password always produces the same digest.
	assert.Equal(t, digest, hasher.Hash("hunter2"))

	// Lowercase hex encoding of a 32-byte digest.
	assert.Len(t, digest, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", digest)

	// Known vector for sanity.
	assert.Equal(t,
		"f52fbd32b2b3b86ff88ef6c490628285f482af15ddcb29541f94bcf526a3f6c7",
		hasher.Hash("hunter2"))
}

func TestSHA256Hasher_DistinctPasswords(t *testing.T) {
	hasher := NewSHA256Hasher()

	assert.NotEqual(t, hasher.Hash("hunter2"), hasher.Hash("hunter3"))
}

func TestSHA256Hasher_Check(t *testing.T) {
	hasher := NewSHA256Hasher()

	digest := hasher.Hash("correct horse battery staple")

	assert.True(t, hasher.Check("correct horse battery staple", digest))
	assert.False(t, hasher.Check("incorrect horse", digest))
	assert.False(t, hasher.Check("correct horse battery staple", "not-a-digest"))
}
