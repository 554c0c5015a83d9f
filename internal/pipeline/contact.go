package pipeline

import (
	"strings"
	"unicode"

	"github.com/sells-group/leadpipe-cli/internal/model"
)

// trimInvisible trims Unicode whitespace plus the invisible edge characters
// (zero-width joiners, BOM) that spreadsheet exports smuggle into cells.
func trimInvisible(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) ||
			r == '\u200B' || // Zero Width Space
			r == '\u200C' || // Zero Width Non-Joiner
			r == '\u200D' || // Zero Width Joiner
			r == '\uFEFF' // Zero Width Non-Breaking Space (BOM)
	})
}

// NormalizeIdentity coalesces the company name with its account fallback and
// builds the contact name from the first/last name pair.
func NormalizeIdentity(l *model.Lead) {
	if strings.TrimSpace(l.CompanyName) == "" {
		l.CompanyName = l.CompanyFallback
	}
	l.ContactName = strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// NormalizeContact lower-cases and trims the email, derives its domain, and
// strips separators from the mobile number.
func NormalizeContact(l *model.Lead) {
	l.Email = strings.ToLower(trimInvisible(l.Email))
	l.EmailDomain = ""
	if at := strings.LastIndex(l.Email, "@"); at >= 0 {
		l.EmailDomain = l.Email[at+1:]
	}
	l.Mobile = normalizeMobile(l.Mobile)
}

// normalizeMobile removes plus signs, whitespace, and hyphens. The literal
// "nan" is an export artifact and normalizes to empty.
func normalizeMobile(mobile string) string {
	var b strings.Builder
	for _, r := range trimInvisible(mobile) {
		if r == '+' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if strings.EqualFold(out, "nan") {
		return ""
	}
	return out
}
