package quiz

import "crypto/rand"

// codeAlphabet deliberately has no lowercase: codes are shared verbally and
// on whiteboards, and lookups are case-normalized to uppercase.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeLength = 6

// NewCode generates a 6-character uppercase share code. Uniqueness is
// enforced by the store's unique index; callers retry on collision.
func NewCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		panic("quiz: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
