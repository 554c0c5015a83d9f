package pipeline

import (
	"strings"

	"github.com/sells-group/leadpipe-cli/internal/model"
)

// DedupeByField removes records sharing an identical non-empty key value,
// keeping the first occurrence in current ordering. Records with an empty
// key (or the "nan" export artifact) are never duplicates of each other and
// all survive. Returns the surviving records and the number removed.
func DedupeByField(leads []*model.Lead, key func(*model.Lead) string) ([]*model.Lead, int) {
	seen := make(map[string]struct{}, len(leads))
	kept := make([]*model.Lead, 0, len(leads))
	removed := 0

	for _, l := range leads {
		k := strings.TrimSpace(key(l))
		if k == "" || strings.EqualFold(k, "nan") {
			kept = append(kept, l)
			continue
		}
		if _, dup := seen[k]; dup {
			removed++
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, l)
	}

	return kept, removed
}
