package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := hashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, verifyPassword("secret123", hash))
	assert.False(t, verifyPassword("wrongpass", hash))
}

func TestVerifyPassword_EmptyHash(t *testing.T) {
	assert.False(t, verifyPassword("anything", ""))
}

func TestPasswordTruncation(t *testing.T) {
	// Only the first 70 bytes participate in the hash, so two passwords
	// sharing that prefix are interchangeable.
	long := strings.Repeat("a", 90)
	hash, err := hashPassword(long)
	assert.NoError(t, err)

	assert.True(t, verifyPassword(strings.Repeat("a", 70), hash))
	assert.True(t, verifyPassword(strings.Repeat("a", 70)+"completely-different-tail", hash))
	assert.False(t, verifyPassword(strings.Repeat("a", 69), hash))
}

func TestTruncatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
	}{
		{name: "short stays intact", input: "abc", wantLen: 3},
		{name: "exactly at limit", input: strings.Repeat("x", 70), wantLen: 70},
		{name: "over limit is cut", input: strings.Repeat("x", 100), wantLen: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, truncatePassword(tt.input), tt.wantLen)
		})
	}
}
