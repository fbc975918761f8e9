package passpkg

import "strings"

const minPasswordLength = 8

const symbols = "!@#$%&*+=~^-_"

// CheckRules validates password complexity. It returns an empty string when
// the password is acceptable and the violated rule's message otherwise.
func CheckRules(password string) string {
	if len(password) < minPasswordLength {
		return "password must have at least 8 characters"
	}

	var hasLetter, hasUpper, hasDigit, hasSymbol bool

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLetter = true
		case r >= 'A' && r <= 'Z':
			hasLetter = true
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(symbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasLetter:
		return "password must have at least one letter"
	case !hasUpper:
		return "password must have at least one uppercase letter"
	case !hasDigit:
		return "password must have at least one number"
	case !hasSymbol:
		return "password must have at least one symbol"
	}

	return ""
}
