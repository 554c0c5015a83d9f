package model

import "time"

// URLCategory classifies a digital-presence URL.
type URLCategory string

const (
	URLCategoryMaps      URLCategory = "maps"
	URLCategorySocial    URLCategory = "social"
	URLCategoryEcommerce URLCategory = "ecommerce"
	URLCategoryNone      URLCategory = "none"
)

// BlacklistResult is the parsed outcome of a raw internal blacklisting check.
type BlacklistResult int

const (
	BlacklistUnknown BlacklistResult = iota
	BlacklistPassed
	BlacklistFailed
)

// Blacklist status values carried on a lead after evaluation.
const (
	StatusUnsafe = 0
	StatusSafe   = 1
)

// Journey stages with a fixed label (granular onboarding stages are built
// dynamically as "Onboarding: <step>").
const (
	StageConverted           = "Converted"
	StageKYBSubmitted        = "KYB Submitted"
	StageKYBInProgress       = "KYB In Progress"
	StageOnboardingCompleted = "Onboarding Completed"
	StageRegistered          = "Registered"
	StageUnknown             = "Unknown"
)

// Lead is one merchant lead application. It is the mutable working unit
// that flows through every pipeline stage.
type Lead struct {
	// Identity
	CompanyName     string
	CompanyFallback string // "Company / Account", coalesced into CompanyName
	CompanyNameAr   string
	CRNumber        string
	LeadID          string
	FirstName       string
	LastName        string
	ContactName     string

	// Contact
	Email             string
	EmailDomain       string
	Mobile            string
	PreferredLanguage string

	// Digital presence. After migration a URL lives in exactly one of these.
	Website          string
	GoogleMapID      string
	SocialMediaLinks string
	EcommerceLink    string

	// Business profile
	SalesTierRaw          string
	SalesTier             int
	BusinessType          string
	Category              string
	Subcategory           string
	L1                    string
	L2                    string
	L3                    string
	BusinessActivitiesEN  string
	CountryOfRegistration string

	// Compliance
	CRIssueDate          *time.Time
	CRExpiryDate         *time.Time
	VATNumber            string
	IBAN                 string
	NationalIDExpiryDate *time.Time
	BlacklistRaw         string
	BlacklistStatus      int

	// Journey
	LeadStatus           string
	ContactedStatus      string
	OnboardingStep       string
	CreatedDate          *time.Time
	KYBInProgressDate    *time.Time
	KYBSubmittedDate     *time.Time
	LastStatusChangeDate *time.Time
	ConvertedDate        *time.Time
	ReadableStep         string
	OnboardingVersion    string
	JourneyStage         string
	StepFlags            map[string]int

	// Derived binary flags
	IsConverted    int
	HasWebsite     int
	HasMaps        int
	HasSocialMedia int
	HasEcommerce   int

	// Marketing
	LeadSource  string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// StepFlag returns the binary flag for a step-flag column, 0 when unset.
func (l *Lead) StepFlag(column string) int {
	if l.StepFlags == nil {
		return 0
	}
	return l.StepFlags[column]
}

// BatchStats aggregates the counters produced by each pipeline stage.
// The console report and the ledger both read from here, so the reported
// numbers always match what the stages actually did.
type BatchStats struct {
	Loaded           int            `json:"loaded"`
	MissingColumns   []string       `json:"missing_columns,omitempty"`
	BlacklistDropped int            `json:"blacklist_dropped"`
	MapsMoved        int            `json:"maps_moved"`
	MapsRemoved      int            `json:"maps_removed"`
	SocialMoved      int            `json:"social_moved"`
	EcommerceMoved   int            `json:"ecommerce_moved"`
	Converted        int            `json:"converted"`
	HasWebsite       int            `json:"has_website"`
	HasMaps          int            `json:"has_maps"`
	HasSocialMedia   int            `json:"has_social_media"`
	HasEcommerce     int            `json:"has_ecommerce"`
	StepFlagCounts   map[string]int `json:"step_flag_counts,omitempty"`
	MobileDupes      int            `json:"mobile_dupes"`
	EmailDupes       int            `json:"email_dupes"`
	Final            int            `json:"final"`
}

// BatchStatus represents the current state of a pipeline batch.
type BatchStatus string

const (
	BatchStatusRunning  BatchStatus = "running"
	BatchStatusComplete BatchStatus = "complete"
	BatchStatusFailed   BatchStatus = "failed"
)

// Batch is one recorded pipeline run over a single input file.
type Batch struct {
	ID         string      `json:"id"`
	InputPath  string      `json:"input_path"`
	OutputPath string      `json:"output_path"`
	Status     BatchStatus `json:"status"`
	Stats      *BatchStats `json:"stats,omitempty"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
}
