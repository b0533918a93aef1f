package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// uid allocation bounds: six-digit identifiers above the rejected low range.
const (
	uidModulus     = 1_000_000
	uidLowerBound  = 100_000
	uidMaxAttempts = 100
)

var ErrUIDExhausted = errors.New("could not allocate a unique uid")

// generateUID allocates a random non-sequential numeric identifier by hashing
// secret-timestamp-nonce, reducing the first 16 hex characters of the digest
// modulo 1e6 and rejecting values at or below 100000. Each candidate is
// checked against the store; after 100 failed attempts the allocator gives up.
func generateUID(ctx context.Context, secret string, exists func(ctx context.Context, uid int64) (bool, error)) (int64, error) {
	for attempt := 0; attempt < uidMaxAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(uidModulus))
		if err != nil {
			return 0, err
		}
		nonce := strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + n.String()
		raw := fmt.Sprintf("%s-%d-%s", secret, time.Now().Unix(), nonce)

		digest := sha256.Sum256([]byte(raw))
		head, err := strconv.ParseUint(hex.EncodeToString(digest[:])[:16], 16, 64)
		if err != nil {
			return 0, err
		}

		uid := int64(head % uidModulus)
		if uid <= uidLowerBound {
			continue
		}

		taken, err := exists(ctx, uid)
		if err != nil {
			return 0, err
		}
		if !taken {
			return uid, nil
		}
	}
	return 0, ErrUIDExhausted
}
