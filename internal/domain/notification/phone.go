package notification

import "strings"

// NormalizePhone converts Ethiopian phone numbers supplied in any of the
// ad-hoc formats customers are registered with into the canonical dialable
// form +251XXXXXXXXX. It is a total function: inputs it does not recognize
// pass through unchanged so they still reach the provider rather than
// being rejected here.
//
//	"0912345678"   -> "+251912345678"
//	"912345678"    -> "+251912345678"
//	"251912345678" -> "+251912345678"
//	"+251912345678" stays as is
func NormalizePhone(raw string) string {
	if strings.HasPrefix(raw, "+") {
		return raw
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "251"):
		return "+" + digits
	case len(digits) == 9 && strings.HasPrefix(digits, "9"):
		return "+251" + digits
	case len(digits) == 10 && strings.HasPrefix(digits, "09"):
		return "+251" + digits[1:]
	}

	return raw
}
