package carrier

import (
	"regexp"
	"strings"
)

// shapePattern is the union of every accepted barcode shape. A code outside of
// it is rejected before any carrier rule runs.
var shapePattern = regexp.MustCompile(`^(?:(?:GC|AJ)\d{16}|BR\w{13}|44\d{9}|\d{15,})$`)

type Rule struct {
	Carrier Carrier
	Match   func(code string) bool
}

// Rules are tried in order; the first match wins.
var Rules = []Rule{
	{Carrier: Shein, Match: func(code string) bool {
		return (strings.HasPrefix(code, "GC") || strings.HasPrefix(code, "AJ")) &&
			len(code) == 18 && isDigits(code[2:])
	}},
	{Carrier: Shopee, Match: func(code string) bool {
		return strings.HasPrefix(code, "BR") && len(code) == 15 && isAlnum(code[2:])
	}},
	{Carrier: MercadoLivre, Match: func(code string) bool {
		return strings.HasPrefix(code, "44") && len(code) == 11 && isDigits(code)
	}},
	{Carrier: Invoice, Match: func(code string) bool {
		return len(code) >= 15 && isDigits(code)
	}},
}

// Match is the outcome of Classify. Carrier is None when the code was
// not recognized.
type Match struct {
	Code    string
	Carrier Carrier
}

func (m Match) Recognized() bool {
	return m.Carrier != None
}

func (m Match) IsInvoice() bool {
	return m.Carrier == Invoice
}

// ValidShape reports whether the trimmed code fits one of the accepted shapes.
func ValidShape(code string) bool {
	return shapePattern.MatchString(strings.TrimSpace(code))
}

// Classify maps a scanned code to its carrier. It has no side effects.
func Classify(code string) Match {
	code = strings.TrimSpace(code)
	m := Match{Code: code}
	if !shapePattern.MatchString(code) {
		return m
	}

	for _, rule := range Rules {
		if rule.Match(code) {
			m.Carrier = rule.Carrier
			return m
		}
	}
	return m
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
