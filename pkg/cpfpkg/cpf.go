// Package cpfpkg validates brazilian CPF tax identifiers.
package cpfpkg

import "strings"

// IsValid reports whether cpf carries valid check digits.
//
// Formatting characters are stripped before validation, so both
// "529.982.247-25" and "52998224725" are accepted. Identifiers made of a
// single repeated digit pass the checksum but are rejected as known-invalid.
func IsValid(cpf string) bool {
	digits := strip(cpf)
	if len(digits) != 11 {
		return false
	}

	if allSame(digits) {
		return false
	}

	if check(digits, 9) != int(digits[9]-'0') {
		return false
	}

	if check(digits, 10) != int(digits[10]-'0') {
		return false
	}

	return true
}

// CheckDigit computes the check digit over the first n digits of a CPF.
// Exported for test fixture generation.
func CheckDigit(digits string, n int) int {
	return check(digits, n)
}

func check(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}

	return rest
}

func strip(cpf string) string {
	var sb strings.Builder

	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}

	return true
}
