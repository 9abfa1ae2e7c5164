package domain

import "strings"

const cpfLength = 11

var cpfPunctuation = strings.NewReplacer(".", "", "-", "")

// NormalizeCPF trims the value and drops the "." and "-" mask characters.
func NormalizeCPF(cpf string) string {
	return cpfPunctuation.Replace(strings.TrimSpace(cpf))
}

// IsValidCPF validates a Brazilian taxpayer number: 11 digits, not all equal,
// with both mod-11 check digits correct. Masked input (000.000.000-00) is accepted.
func IsValidCPF(cpf string) bool {
	digits := NormalizeCPF(cpf)
	if len(digits) != cpfLength {
		return false
	}

	allEqual := true
	for i := 0; i < cpfLength; i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
		if digits[i] != digits[0] {
			allEqual = false
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(digits[:9]) == digits[9] && checkDigit(digits[:10]) == digits[10]
}

// checkDigit computes the next CPF verifier digit for the given prefix.
// Weights start at len(prefix)+1 and descend to 2.
func checkDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}
