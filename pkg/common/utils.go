package common

import (
	"math/rand"
	"time"
)

// GenerateTrxNo returns a short human-readable transaction number for ledger
// rows. Uniqueness is not guaranteed; records that need a real unique key use
// a UUID reference alongside.
func GenerateTrxNo() string {
	const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	result := make([]byte, 7)
	for i := range result {
		result[i] = characters[r.Intn(len(characters))]
	}
	return string(result)
}
