package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLetter(t *testing.T) {
	casos := map[int]string{
		0:  "A",
		1:  "B",
		6:  "G",
		25: "Z",
		26: "AA",
		27: "AB",
		51: "AZ",
		52: "BA",
	}
	for col, want := range casos {
		assert.Equal(t, want, columnLetter(col), "column %d", col)
	}
}
