package validators

import "strings"

// NormalizePhone strips the formatting people type into phone fields so
// "(11) 98765-4321" and "11987654321" land on the same registry entry.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range NormalizePhone(phone) {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 8
}
