package services

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const sufijoLen = 7

// NewID generates a record id: an "id-" prefix followed by the base-36 unix
// milliseconds and a random base-36 suffix, uppercased. Uniqueness is
// probabilistic; collisions are not detected.
func NewID() string {
	marca := strconv.FormatInt(time.Now().UnixMilli(), 36)

	base := big.NewInt(36)
	sufijo := make([]byte, 0, sufijoLen)
	for i := 0; i < sufijoLen; i++ {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// degrade to a time-derived digit rather than panic.
			n = big.NewInt(time.Now().UnixNano() % 36)
		}
		sufijo = strconv.AppendInt(sufijo, n.Int64(), 36)
	}

	return "id-" + strings.ToUpper(marca+string(sufijo))
}
