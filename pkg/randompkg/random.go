// Package randompkg provides random test fixtures for common domain values.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/go-finbook/finbook/pkg/cpfpkg"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Name generates a random person or account name.
func Name() string {
	return String(8)
}

// Email generates a random email.
func Email() string {
	return fmt.Sprintf("%s@%s.com", String(6), String(6))
}

// Password generates a random password satisfying the complexity rules.
func Password() string {
	return "Aa1!" + String(8)
}

// CPF generates a random CPF with valid check digits.
func CPF() string {
	var sb strings.Builder

	for i := 0; i < 9; i++ {
		sb.WriteByte(byte('0' + Intn(10)))
	}

	digits := sb.String()
	digits += fmt.Sprint(cpfpkg.CheckDigit(digits, 9))
	digits += fmt.Sprint(cpfpkg.CheckDigit(digits, 10))

	return digits
}

// Amount generates a random scaled amount between 1 and max whole units.
func Amount(max int) int64 {
	return (Intn(max) + 1) * 10_000
}
