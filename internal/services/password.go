package services

import "golang.org/x/crypto/bcrypt"

// bcrypt ignores everything past 72 bytes; truncating at 70 leaves headroom
// so a multi-byte rune is never cut exactly at the limit.
const passwordByteLimit = 70

func truncatePassword(raw string) []byte {
	b := []byte(raw)
	if len(b) > passwordByteLimit {
		b = b[:passwordByteLimit]
	}
	return b
}

func hashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// verifyPassword applies the same truncation rule as hashPassword and never
// fails: any comparison error or empty hash reads as a mismatch.
func verifyPassword(raw, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(raw)) == nil
}
