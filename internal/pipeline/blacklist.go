package pipeline

import (
	"strings"
	"time"

	"github.com/sells-group/leadpipe-cli/internal/model"
)

// ParseBlacklistRaw interprets a free-text internal blacklisting check value.
// CRM exports carry either an icon path ("…green.png" / "…red.png") or a bare
// "1" / "0"; anything else is unknown.
func ParseBlacklistRaw(raw string) model.BlacklistResult {
	if strings.Contains(raw, "green.png") || raw == "1" {
		return model.BlacklistPassed
	}
	if strings.Contains(raw, "red.png") || raw == "0" {
		return model.BlacklistFailed
	}
	return model.BlacklistUnknown
}

// EvaluateBlacklist decides a lead's compliance status. Leads created before
// the cutoff (or with no parsable creation date) predate the check and are
// safe; on or after the cutoff only an explicit pass survives. The boundary
// itself falls in the post-cutoff branch.
func EvaluateBlacklist(created *time.Time, raw string, cutoff time.Time) int {
	if created == nil || created.Before(cutoff) {
		return model.StatusSafe
	}
	if ParseBlacklistRaw(raw) == model.BlacklistPassed {
		return model.StatusSafe
	}
	return model.StatusUnsafe
}
