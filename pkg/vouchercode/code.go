package vouchercode

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ShiraazMoollatjie/goluhn"
)

// Friendly codes are short numeric strings a cashier can type. The
// last digit is a Luhn check digit, so most typos are caught before
// any storage lookup.
const codeLength = 10

// Generate returns a fresh random friendly code. Uniqueness is
// enforced by storage; callers retry on collision.
func Generate() (string, error) {
	digits := make([]byte, codeLength-1)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("can't generate code digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	body := string(digits)
	return body + checkDigit(body), nil
}

// IsValid reports whether the code has the right shape and passes the
// Luhn check.
func IsValid(code string) bool {
	if len(code) != codeLength {
		return false
	}
	return goluhn.Validate(code) == nil
}

func checkDigit(body string) string {
	sum := 0
	double := true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return string(byte('0' + (10-sum%10)%10))
}
