// Package pipeline implements the lead normalization and classification
// stages: field mapping, compliance filtering, digital-presence migration,
// journey resolution, and identity deduplication. Every stage mutates the
// in-memory working set in place and reports its counters through
// model.BatchStats.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadpipe-cli/internal/config"
	"github.com/sells-group/leadpipe-cli/internal/model"
)

// NewBatchStats returns a stats collector with its maps initialized.
func NewBatchStats() *model.BatchStats {
	return &model.BatchStats{StepFlagCounts: make(map[string]int)}
}

// Clean runs the normalization and compliance stage: identity/contact
// normalization, blacklist evaluation, sales-tier mapping, and the row-level
// blacklist filter. Returns the surviving records.
func Clean(leads []*model.Lead, schema *config.Schema, cutoff time.Time, stats *model.BatchStats) []*model.Lead {
	stats.Loaded = len(leads)

	for _, l := range leads {
		NormalizeIdentity(l)
		NormalizeContact(l)
		l.BlacklistStatus = EvaluateBlacklist(l.CreatedDate, l.BlacklistRaw, cutoff)
		l.SalesTier = MapTier(l.SalesTierRaw, schema.TierLabels)
	}

	kept := make([]*model.Lead, 0, len(leads))
	for _, l := range leads {
		if l.BlacklistStatus == model.StatusSafe {
			kept = append(kept, l)
			continue
		}
		stats.BlacklistDropped++
	}

	zap.L().Info("clean: blacklist filter applied",
		zap.Int("loaded", stats.Loaded),
		zap.Int("dropped", stats.BlacklistDropped),
		zap.Int("remaining", len(kept)),
	)
	return kept
}

// Enrich runs the enrichment stage on a cleaned working set: digital-presence
// migration, flag derivation, journey resolution, step flags, and the two
// identity dedupe passes (mobile first, then email).
func Enrich(leads []*model.Lead, schema *config.Schema, stats *model.BatchStats) []*model.Lead {
	MigrateDigitalPresence(leads, schema.Domains, stats)

	for _, l := range leads {
		DerivePresenceFlags(l)
		stats.Converted += l.IsConverted
		stats.HasWebsite += l.HasWebsite
		stats.HasMaps += l.HasMaps
		stats.HasSocialMedia += l.HasSocialMedia
		stats.HasEcommerce += l.HasEcommerce

		l.ReadableStep = CleanStepName(l.OnboardingStep)
		l.OnboardingVersion = ExtractVersion(l.OnboardingStep)
		l.JourneyStage = ResolveStage(l)
		l.StepFlags = ResolveStepFlags(l.OnboardingStep, schema.StepFlags)
		for column, v := range l.StepFlags {
			stats.StepFlagCounts[column] += v
		}
	}

	var mobileDupes, emailDupes int
	leads, mobileDupes = DedupeByField(leads, func(l *model.Lead) string { return l.Mobile })
	leads, emailDupes = DedupeByField(leads, func(l *model.Lead) string { return l.Email })
	stats.MobileDupes = mobileDupes
	stats.EmailDupes = emailDupes
	stats.Final = len(leads)

	zap.L().Info("enrich: journey and dedupe complete",
		zap.Int("mobile_dupes", mobileDupes),
		zap.Int("email_dupes", emailDupes),
		zap.Int("final", stats.Final),
	)
	return leads
}
