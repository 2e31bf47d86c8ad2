package random

import (
	"crypto/rand"
	"math/big"
)

// WorkoutCode generates random workout type code of given length range
func WorkoutCode(minLen, maxLen int) string {
	var letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	slen := rnd.Intn(maxLen-minLen) + minLen
	lettersLen := big.NewInt(int64(len(letters)))

	s := make([]byte, 0, slen)
	for len(s) < slen {
		num, _ := rand.Int(rand.Reader, lettersLen)
		s = append(s, letters[num.Int64()])
	}

	return string(s)
}
