package utils

import (
	"crypto/rand"
	"log"
	"math/big"
	"time"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)

	if elapsed <= 5*time.Millisecond {
		return
	}

	log.Printf("%s ~TOOK~ %s", name, elapsed.Round(time.Millisecond))
}

func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(Alphabet))))
		if err != nil {
			b[i] = Alphabet[0]
			continue
		}
		b[i] = Alphabet[n.Int64()]
	}

	return string(b)
}

// GenerateNumericCode returns a code like "482915" for SMS verification.
func GenerateNumericCode(length int) string {
	const digits = "0123456789"

	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			b[i] = '0'
			continue
		}
		b[i] = digits[n.Int64()]
	}

	return string(b)
}
