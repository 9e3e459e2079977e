package testutil

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomAlphaNum generates random alphanumeric string, used to make docker container names unique
func RandomAlphaNum(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	return gofakeit.Regex(fmt.Sprintf("[a-zA-Z0-9]{%d}", length)), nil
}
