package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/leadpipe-cli/internal/config"
	"github.com/sells-group/leadpipe-cli/internal/model"
)

var (
	versionPrefixRe = regexp.MustCompile(`v\d+_`)
	versionRe       = regexp.MustCompile(`v\d+`)

	titleCaser = cases.Title(language.English)
)

// CleanStepName turns a raw onboarding step code into a readable label:
// lower-case, strip the "v<digits>_" version prefix and the "_step" suffix,
// underscores to spaces, title case. Empty input stays empty.
func CleanStepName(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	s := strings.ToLower(raw)
	s = versionPrefixRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_step", "")
	s = strings.ReplaceAll(s, "_", " ")
	return titleCaser.String(s)
}

// ExtractVersion finds a "v<digits>" token anywhere in the raw step code and
// returns it upper-cased (e.g. "V2"). No token means "Unknown".
func ExtractVersion(raw string) string {
	if m := versionRe.FindString(strings.ToLower(raw)); m != "" {
		return strings.ToUpper(m)
	}
	return "Unknown"
}

// ResolveStage derives the single journey-stage label from a lead's furthest
// progressed milestone. Checks run in strict priority order; the first hit
// wins, so a converted lead is "Converted" no matter what else is set.
func ResolveStage(l *model.Lead) string {
	switch {
	case l.ConvertedDate != nil:
		return model.StageConverted
	case l.KYBSubmittedDate != nil:
		return model.StageKYBSubmitted
	case l.KYBInProgressDate != nil:
		return model.StageKYBInProgress
	case l.ReadableStep != "":
		if strings.Contains(l.ReadableStep, "Final") {
			return model.StageOnboardingCompleted
		}
		return "Onboarding: " + l.ReadableStep
	case l.CreatedDate != nil:
		return model.StageRegistered
	}
	return model.StageUnknown
}

// ResolveStepFlags evaluates the binary step-flag columns against a raw step
// code. A flag is 1 iff the whitespace-trimmed code exactly equals one of the
// column's configured literals.
func ResolveStepFlags(raw string, specs []config.StepFlagSpec) map[string]int {
	trimmed := strings.TrimSpace(raw)
	flags := make(map[string]int, len(specs))
	for _, spec := range specs {
		flags[spec.Column] = 0
		if trimmed == "" {
			continue
		}
		for _, match := range spec.Matches {
			if trimmed == match {
				flags[spec.Column] = 1
				break
			}
		}
	}
	return flags
}
