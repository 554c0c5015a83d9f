package pipeline

import (
	"strconv"

	"github.com/sells-group/leadpipe-cli/internal/model"
)

// MapHeader renames raw export headers to canonical field names using the
// schema mapping table. Headers without a mapping pass through unchanged;
// they simply never match a canonical field downstream. A nil mapping means
// the header is already canonical (second-stage input).
func MapHeader(header []string, mapping map[string]string) []string {
	if mapping == nil {
		return header
	}
	mapped := make([]string, len(header))
	for i, h := range header {
		if canonical, ok := mapping[h]; ok {
			mapped[i] = canonical
		} else {
			mapped[i] = h
		}
	}
	return mapped
}

// MissingColumns lists the expected canonical columns absent from a mapped
// header. The caller warns once per file; the fields themselves always exist
// on the record with empty values.
func MissingColumns(header []string, expected []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}
	var missing []string
	for _, want := range expected {
		if _, ok := present[want]; !ok {
			missing = append(missing, want)
		}
	}
	return missing
}

// BuildLeads turns mapped header + rows into lead records. Short rows leave
// their trailing fields empty; unknown columns are dropped.
func BuildLeads(header []string, rows [][]string) []*model.Lead {
	leads := make([]*model.Lead, 0, len(rows))
	for _, row := range rows {
		l := &model.Lead{}
		for i, name := range header {
			if i >= len(row) {
				break
			}
			applyCanonical(l, name, row[i])
		}
		leads = append(leads, l)
	}
	return leads
}

// applyCanonical assigns one canonical column value onto a lead. Date
// columns are coerced immediately; garbage dates become nil. Unknown names
// are ignored so raw exports can carry extra columns harmlessly.
func applyCanonical(l *model.Lead, name, value string) {
	switch name {
	// Identity
	case "company_name":
		l.CompanyName = value
	case "company_account_fallback":
		l.CompanyFallback = value
	case "company_name_ar":
		l.CompanyNameAr = value
	case "cr_number":
		l.CRNumber = value
	case "lead_id":
		l.LeadID = value
	case "first_name":
		l.FirstName = value
	case "last_name":
		l.LastName = value
	case "contact_name":
		l.ContactName = value

	// Contact
	case "email":
		l.Email = value
	case "email_domain":
		l.EmailDomain = value
	case "mobile":
		l.Mobile = value
	case "preferred_language":
		l.PreferredLanguage = value

	// Digital presence
	case "website":
		l.Website = value
	case "google_map_id":
		l.GoogleMapID = value
	case "social_media_links":
		l.SocialMediaLinks = value
	case "ecommerce_link":
		l.EcommerceLink = value

	// Business profile
	case "reported_annual_sales_tier":
		l.SalesTierRaw = value
		if n, err := strconv.Atoi(value); err == nil {
			l.SalesTier = n
		}
	case "business_type":
		l.BusinessType = value
	case "category":
		l.Category = value
	case "subcategory":
		l.Subcategory = value
	case "L1":
		l.L1 = value
	case "L2":
		l.L2 = value
	case "L3":
		l.L3 = value
	case "business_activities_en":
		l.BusinessActivitiesEN = value
	case "country_of_registration":
		l.CountryOfRegistration = value

	// Compliance
	case "cr_issue_date":
		l.CRIssueDate = ParseDate(value)
	case "cr_expiry_date":
		l.CRExpiryDate = ParseDate(value)
	case "vat_number":
		l.VATNumber = value
	case "iban":
		l.IBAN = value
	case "national_id_expiry_date":
		l.NationalIDExpiryDate = ParseDate(value)
	case "blacklist_raw":
		l.BlacklistRaw = value

	// Journey
	case "lead_status":
		l.LeadStatus = value
	case "contacted_status":
		l.ContactedStatus = value
	case "onboarding_step":
		l.OnboardingStep = value
	case "created_date":
		l.CreatedDate = ParseDate(value)
	case "kyb_in_progress_date":
		l.KYBInProgressDate = ParseDate(value)
	case "kyb_submitted_date":
		l.KYBSubmittedDate = ParseDate(value)
	case "last_status_change_date":
		l.LastStatusChangeDate = ParseDate(value)
	case "converted_date":
		l.ConvertedDate = ParseDate(value)

	// Marketing
	case "lead_source":
		l.LeadSource = value
	case "utm_source":
		l.UTMSource = value
	case "utm_medium":
		l.UTMMedium = value
	case "utm_campaign":
		l.UTMCampaign = value
	}
}
