// utils/response.go
package utils

import (
	"crypto/rand"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondWithValidationErrors renders a field-level message set so the form
// layer can keep the submission populated and highlight each bad input.
func RespondWithValidationErrors(c *gin.Context, v Violations) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": v})
}

const randomAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomString returns n random characters from an unambiguous
// uppercase alphabet, used for human-readable identifiers.
func GenerateRandomString(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(randomAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("failed to read random source")
		}
		out[i] = randomAlphabet[idx.Int64()]
	}
	return string(out)
}
