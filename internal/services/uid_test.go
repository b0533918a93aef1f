package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUID_Range(t *testing.T) {
	never := func(ctx context.Context, uid int64) (bool, error) { return false, nil }

	for i := 0; i < 20; i++ {
		uid, err := generateUID(context.Background(), "secret", never)
		assert.NoError(t, err)
		assert.Greater(t, uid, int64(uidLowerBound))
		assert.Less(t, uid, int64(uidModulus))
	}
}

func TestGenerateUID_SkipsTaken(t *testing.T) {
	calls := 0
	takenOnce := func(ctx context.Context, uid int64) (bool, error) {
		calls++
		return calls == 1, nil
	}

	uid, err := generateUID(context.Background(), "secret", takenOnce)
	assert.NoError(t, err)
	assert.Greater(t, uid, int64(uidLowerBound))
	assert.GreaterOrEqual(t, calls, 2)
}

func TestGenerateUID_Exhausted(t *testing.T) {
	always := func(ctx context.Context, uid int64) (bool, error) { return true, nil }

	_, err := generateUID(context.Background(), "secret", always)
	assert.ErrorIs(t, err, ErrUIDExhausted)
}

func TestGenerateUID_StoreError(t *testing.T) {
	boom := func(ctx context.Context, uid int64) (bool, error) { return false, errors.New("db error") }

	_, err := generateUID(context.Background(), "secret", boom)
	assert.EqualError(t, err, "db error")
}
