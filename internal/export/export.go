// Package export writes cleaned and enriched lead datasets as CSV files
// with a UTF-8 BOM signature, matching what downstream spreadsheet tooling
// expects. Column order is fixed by the row struct tags.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sells-group/leadpipe-cli/internal/model"
	"github.com/sells-group/leadpipe-cli/internal/pipeline"
)

// CleanedRow is the column-ordered output of the clean stage.
type CleanedRow struct {
	CompanyName           string `csv:"company_name"`
	CompanyNameAr         string `csv:"company_name_ar"`
	CRNumber              string `csv:"cr_number"`
	LeadID                string `csv:"lead_id"`
	ContactName           string `csv:"contact_name"`
	Email                 string `csv:"email"`
	EmailDomain           string `csv:"email_domain"`
	Mobile                string `csv:"mobile"`
	PreferredLanguage     string `csv:"preferred_language"`
	Website               string `csv:"website"`
	GoogleMapID           string `csv:"google_map_id"`
	SalesTier             int    `csv:"reported_annual_sales_tier"`
	BusinessType          string `csv:"business_type"`
	L1                    string `csv:"L1"`
	L2                    string `csv:"L2"`
	L3                    string `csv:"L3"`
	BusinessActivitiesEN  string `csv:"business_activities_en"`
	CountryOfRegistration string `csv:"country_of_registration"`
	CRIssueDate           string `csv:"cr_issue_date"`
	CRExpiryDate          string `csv:"cr_expiry_date"`
	VATNumber             string `csv:"vat_number"`
	IBAN                  string `csv:"iban"`
	NationalIDExpiryDate  string `csv:"national_id_expiry_date"`
	LeadStatus            string `csv:"lead_status"`
	ContactedStatus       string `csv:"contacted_status"`
	OnboardingStep        string `csv:"onboarding_step"`
	CreatedDate           string `csv:"created_date"`
	KYBInProgressDate     string `csv:"kyb_in_progress_date"`
	KYBSubmittedDate      string `csv:"kyb_submitted_date"`
	LastStatusChangeDate  string `csv:"last_status_change_date"`
	ConvertedDate         string `csv:"converted_date"`
	LeadSource            string `csv:"lead_source"`
	UTMSource             string `csv:"utm_source"`
	UTMMedium             string `csv:"utm_medium"`
	UTMCampaign           string `csv:"utm_campaign"`
}

// EnrichedRow is the column-ordered output of the enrich stage: the cleaned
// columns plus the migrated digital-presence fields and every derived column.
type EnrichedRow struct {
	CompanyName           string `csv:"company_name"`
	CompanyNameAr         string `csv:"company_name_ar"`
	CRNumber              string `csv:"cr_number"`
	LeadID                string `csv:"lead_id"`
	ContactName           string `csv:"contact_name"`
	Email                 string `csv:"email"`
	EmailDomain           string `csv:"email_domain"`
	Mobile                string `csv:"mobile"`
	PreferredLanguage     string `csv:"preferred_language"`
	Website               string `csv:"website"`
	GoogleMapID           string `csv:"google_map_id"`
	SocialMediaLinks      string `csv:"social_media_links"`
	EcommerceLink         string `csv:"ecommerce_link"`
	SalesTier             int    `csv:"reported_annual_sales_tier"`
	BusinessType          string `csv:"business_type"`
	L1                    string `csv:"L1"`
	L2                    string `csv:"L2"`
	L3                    string `csv:"L3"`
	BusinessActivitiesEN  string `csv:"business_activities_en"`
	CountryOfRegistration string `csv:"country_of_registration"`
	CRIssueDate           string `csv:"cr_issue_date"`
	CRExpiryDate          string `csv:"cr_expiry_date"`
	VATNumber             string `csv:"vat_number"`
	IBAN                  string `csv:"iban"`
	NationalIDExpiryDate  string `csv:"national_id_expiry_date"`
	LeadStatus            string `csv:"lead_status"`
	ContactedStatus       string `csv:"contacted_status"`
	OnboardingStep        string `csv:"onboarding_step"`
	CreatedDate           string `csv:"created_date"`
	KYBInProgressDate     string `csv:"kyb_in_progress_date"`
	KYBSubmittedDate      string `csv:"kyb_submitted_date"`
	LastStatusChangeDate  string `csv:"last_status_change_date"`
	ConvertedDate         string `csv:"converted_date"`
	LeadSource            string `csv:"lead_source"`
	UTMSource             string `csv:"utm_source"`
	UTMMedium             string `csv:"utm_medium"`
	UTMCampaign           string `csv:"utm_campaign"`

	IsConverted       int    `csv:"is_converted"`
	HasWebsite        int    `csv:"has_website"`
	HasMaps           int    `csv:"has_maps"`
	HasSocialMedia    int    `csv:"has_social_media"`
	HasEcommerce      int    `csv:"has_ecommerce"`
	ReadableStep      string `csv:"readable_onboarding_step"`
	OnboardingVersion string `csv:"onboarding_version"`
	JourneyStage      string `csv:"journey_stage"`

	OTPSignUpConfirmationStep int `csv:"otp_sign_up_confirmation_step"`
	BusinessInfoStep          int `csv:"business_info_step"`
	V2PersonalDetailsStep     int `csv:"v2_personal_details_step"`
	V2BusinessDetailsStep     int `csv:"v2_business_details_step"`
	KYCStep                   int `csv:"kyc_step"`
	V2BankDetailsStep         int `csv:"v2_bank_details_step"`
	ReviewApplicationStep     int `csv:"review_application_step"`
	V3SignContractStep        int `csv:"v3_sign_contract_step"`
	FinalStep                 int `csv:"final_step"`
}

// CleanedColumns returns the cleaned output header in column order.
func CleanedColumns() []string {
	header, err := csvutil.Header(CleanedRow{}, "csv")
	if err != nil {
		panic(err) // struct tags are static; only reachable on a broken build
	}
	return header
}

func cleanedRowFrom(l *model.Lead) CleanedRow {
	return CleanedRow{
		CompanyName:           l.CompanyName,
		CompanyNameAr:         l.CompanyNameAr,
		CRNumber:              l.CRNumber,
		LeadID:                l.LeadID,
		ContactName:           l.ContactName,
		Email:                 l.Email,
		EmailDomain:           l.EmailDomain,
		Mobile:                l.Mobile,
		PreferredLanguage:     l.PreferredLanguage,
		Website:               l.Website,
		GoogleMapID:           l.GoogleMapID,
		SalesTier:             l.SalesTier,
		BusinessType:          l.BusinessType,
		L1:                    l.L1,
		L2:                    l.L2,
		L3:                    l.L3,
		BusinessActivitiesEN:  l.BusinessActivitiesEN,
		CountryOfRegistration: l.CountryOfRegistration,
		CRIssueDate:           pipeline.FormatDate(l.CRIssueDate),
		CRExpiryDate:          pipeline.FormatDate(l.CRExpiryDate),
		VATNumber:             l.VATNumber,
		IBAN:                  l.IBAN,
		NationalIDExpiryDate:  pipeline.FormatDate(l.NationalIDExpiryDate),
		LeadStatus:            l.LeadStatus,
		ContactedStatus:       l.ContactedStatus,
		OnboardingStep:        l.OnboardingStep,
		CreatedDate:           pipeline.FormatDate(l.CreatedDate),
		KYBInProgressDate:     pipeline.FormatDate(l.KYBInProgressDate),
		KYBSubmittedDate:      pipeline.FormatDate(l.KYBSubmittedDate),
		LastStatusChangeDate:  pipeline.FormatDate(l.LastStatusChangeDate),
		ConvertedDate:         pipeline.FormatDate(l.ConvertedDate),
		LeadSource:            l.LeadSource,
		UTMSource:             l.UTMSource,
		UTMMedium:             l.UTMMedium,
		UTMCampaign:           l.UTMCampaign,
	}
}

func enrichedRowFrom(l *model.Lead) EnrichedRow {
	c := cleanedRowFrom(l)
	return EnrichedRow{
		CompanyName:           c.CompanyName,
		CompanyNameAr:         c.CompanyNameAr,
		CRNumber:              c.CRNumber,
		LeadID:                c.LeadID,
		ContactName:           c.ContactName,
		Email:                 c.Email,
		EmailDomain:           c.EmailDomain,
		Mobile:                c.Mobile,
		PreferredLanguage:     c.PreferredLanguage,
		Website:               c.Website,
		GoogleMapID:           c.GoogleMapID,
		SocialMediaLinks:      l.SocialMediaLinks,
		EcommerceLink:         l.EcommerceLink,
		SalesTier:             c.SalesTier,
		BusinessType:          c.BusinessType,
		L1:                    c.L1,
		L2:                    c.L2,
		L3:                    c.L3,
		BusinessActivitiesEN:  c.BusinessActivitiesEN,
		CountryOfRegistration: c.CountryOfRegistration,
		CRIssueDate:           c.CRIssueDate,
		CRExpiryDate:          c.CRExpiryDate,
		VATNumber:             c.VATNumber,
		IBAN:                  c.IBAN,
		NationalIDExpiryDate:  c.NationalIDExpiryDate,
		LeadStatus:            c.LeadStatus,
		ContactedStatus:       c.ContactedStatus,
		OnboardingStep:        c.OnboardingStep,
		CreatedDate:           c.CreatedDate,
		KYBInProgressDate:     c.KYBInProgressDate,
		KYBSubmittedDate:      c.KYBSubmittedDate,
		LastStatusChangeDate:  c.LastStatusChangeDate,
		ConvertedDate:         c.ConvertedDate,
		LeadSource:            c.LeadSource,
		UTMSource:             c.UTMSource,
		UTMMedium:             c.UTMMedium,
		UTMCampaign:           c.UTMCampaign,

		IsConverted:       l.IsConverted,
		HasWebsite:        l.HasWebsite,
		HasMaps:           l.HasMaps,
		HasSocialMedia:    l.HasSocialMedia,
		HasEcommerce:      l.HasEcommerce,
		ReadableStep:      l.ReadableStep,
		OnboardingVersion: l.OnboardingVersion,
		JourneyStage:      l.JourneyStage,

		OTPSignUpConfirmationStep: l.StepFlag("otp_sign_up_confirmation_step"),
		BusinessInfoStep:          l.StepFlag("business_info_step"),
		V2PersonalDetailsStep:     l.StepFlag("v2_personal_details_step"),
		V2BusinessDetailsStep:     l.StepFlag("v2_business_details_step"),
		KYCStep:                   l.StepFlag("kyc_step"),
		V2BankDetailsStep:         l.StepFlag("v2_bank_details_step"),
		ReviewApplicationStep:     l.StepFlag("review_application_step"),
		V3SignContractStep:        l.StepFlag("v3_sign_contract_step"),
		FinalStep:                 l.StepFlag("final_step"),
	}
}

// WriteCleaned writes the clean-stage output, creating the directory if
// needed. The header row is written even when no records survive.
func WriteCleaned(path string, leads []*model.Lead) error {
	return writeRows(path, "export: cleaned", CleanedRow{}, func(enc *csvutil.Encoder) error {
		for _, l := range leads {
			if err := enc.Encode(cleanedRowFrom(l)); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteEnriched writes the enrich-stage output.
func WriteEnriched(path string, leads []*model.Lead) error {
	return writeRows(path, "export: enriched", EnrichedRow{}, func(enc *csvutil.Encoder) error {
		for _, l := range leads {
			if err := enc.Encode(enrichedRowFrom(l)); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRows handles the shared file plumbing: directory creation, BOM
// signalling, header emission, flush ordering.
func writeRows(path, op string, headerRow any, encode func(*csvutil.Encoder) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "%s: create dir", op)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "%s: create file", op)
	}

	tw := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(tw)
	enc := csvutil.NewEncoder(w)

	writeErr := enc.EncodeHeader(headerRow)
	if writeErr == nil {
		writeErr = encode(enc)
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if closeErr := tw.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return eris.Wrapf(writeErr, "%s: write %s", op, path)
	}
	return nil
}
