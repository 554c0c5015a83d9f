package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadpipe-cli/internal/model"
)

func TestNormalizeIdentity(t *testing.T) {
	tests := []struct {
		name        string
		in          model.Lead
		wantCompany string
		wantContact string
	}{
		{
			name:        "company name kept when present",
			in:          model.Lead{CompanyName: "Acme Trading", CompanyFallback: "Acme Account"},
			wantCompany: "Acme Trading",
		},
		{
			name:        "fallback fills empty company name",
			in:          model.Lead{CompanyName: "", CompanyFallback: "Acme Account"},
			wantCompany: "Acme Account",
		},
		{
			name:        "whitespace-only name is treated as empty",
			in:          model.Lead{CompanyName: "   ", CompanyFallback: "Acme Account"},
			wantCompany: "Acme Account",
		},
		{
			name:        "contact name joins first and last",
			in:          model.Lead{FirstName: "Sara", LastName: "Al-Harbi"},
			wantContact: "Sara Al-Harbi",
		},
		{
			name:        "missing last name leaves no trailing space",
			in:          model.Lead{FirstName: "Sara"},
			wantContact: "Sara",
		},
		{
			name:        "missing both names gives empty contact",
			in:          model.Lead{},
			wantContact: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := tc.in
			NormalizeIdentity(&l)
			assert.Equal(t, tc.wantCompany, l.CompanyName)
			assert.Equal(t, tc.wantContact, l.ContactName)
		})
	}
}

func TestNormalizeContact(t *testing.T) {
	tests := []struct {
		name       string
		in         model.Lead
		wantEmail  string
		wantDomain string
		wantMobile string
	}{
		{
			name:       "email lower-cased and trimmed",
			in:         model.Lead{Email: "  Sara.Harbi@Example.COM "},
			wantEmail:  "sara.harbi@example.com",
			wantDomain: "example.com",
		},
		{
			name:       "zero-width characters stripped from email",
			in:         model.Lead{Email: "\u200Bsara@example.com\uFEFF"},
			wantEmail:  "sara@example.com",
			wantDomain: "example.com",
		},
		{
			name:      "no at sign means no domain",
			in:        model.Lead{Email: "not-an-email"},
			wantEmail: "not-an-email",
		},
		{
			name:       "mobile loses plus, spaces, and hyphens",
			in:         model.Lead{Mobile: "+966 50-000-0000"},
			wantMobile: "966500000000",
		},
		{
			name:       "mobile keeps leading zeros and digits only stripping separators",
			in:         model.Lead{Mobile: "05 0000 0000"},
			wantMobile: "0500000000",
		},
		{
			name:       "nan mobile becomes empty",
			in:         model.Lead{Mobile: "nan"},
			wantMobile: "",
		},
		{
			name: "empty everything stays empty",
			in:   model.Lead{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := tc.in
			NormalizeContact(&l)
			assert.Equal(t, tc.wantEmail, l.Email)
			assert.Equal(t, tc.wantDomain, l.EmailDomain)
			assert.Equal(t, tc.wantMobile, l.Mobile)
		})
	}
}
