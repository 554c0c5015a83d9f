package pipeline

import (
	"strings"

	"github.com/sells-group/leadpipe-cli/internal/config"
	"github.com/sells-group/leadpipe-cli/internal/model"
)

// ClassifyURL categorizes a URL-like string by case-insensitive substring
// match against the configured domain lists. Lists are checked in
// maps → social → ecommerce priority order; the first match wins, so a URL
// matching multiple categories takes the earliest one only. Empty or
// missing input classifies as none.
func ClassifyURL(rawURL string, domains config.DomainLists) model.URLCategory {
	url := strings.ToLower(strings.TrimSpace(rawURL))
	if url == "" {
		return model.URLCategoryNone
	}

	ordered := []struct {
		tokens   []string
		category model.URLCategory
	}{
		{domains.Maps, model.URLCategoryMaps},
		{domains.Social, model.URLCategorySocial},
		{domains.Ecommerce, model.URLCategoryEcommerce},
	}

	for _, entry := range ordered {
		for _, token := range entry.tokens {
			if strings.Contains(url, strings.ToLower(token)) {
				return entry.category
			}
		}
	}
	return model.URLCategoryNone
}
