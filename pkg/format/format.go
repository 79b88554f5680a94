package format

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var nonDigits = regexp.MustCompile(`\D`)

// Digits strips every non-digit character.
func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// CPF formats an 11-digit Brazilian tax id as 000.000.000-00. Inputs of
// any other length are returned with non-digits stripped.
func CPF(cpf string) string {
	digits := Digits(cpf)
	if len(digits) != 11 {
		return digits
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

// IsValidCPF verifies both CPF check digits. Repeated-digit sequences
// like 111.111.111-11 pass the checksum but are rejected.
func IsValidCPF(cpf string) bool {
	digits := Digits(cpf)
	if len(digits) != 11 {
		return false
	}
	allSame := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if cpfCheckDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	return cpfCheckDigit(digits, 10) == int(digits[10]-'0')
}

func cpfCheckDigit(digits string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(digits[i]-'0') * (length + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return rest
}

// Phone formats a Brazilian phone number: 11 digits as a mobile
// (00) 00000-0000, 10 digits as a landline (00) 0000-0000. Anything else
// is returned unchanged.
func Phone(phone string) string {
	digits := Digits(phone)
	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:10])
	default:
		return phone
	}
}

// IsValidPhone accepts 10-digit landlines and 11-digit mobiles.
func IsValidPhone(phone string) bool {
	n := len(Digits(phone))
	return n == 10 || n == 11
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	head := string(unicode.ToUpper(runes[0]))
	return head + strings.ToLower(string(runes[1:]))
}
