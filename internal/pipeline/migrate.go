package pipeline

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadpipe-cli/internal/config"
	"github.com/sells-group/leadpipe-cli/internal/model"
)

// fieldEmpty reports whether a digital-presence field holds no usable value.
// The literal "nan" is a spreadsheet export artifact, not a value.
func fieldEmpty(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, "nan")
}

// MigrateDigitalPresence moves misclassified website values into their
// proper target field. A maps URL takes total precedence: it is moved (or
// discarded when a map ID already exists) and the record is done. Social and
// ecommerce URLs append to a populated target with a " | " separator. The
// two non-maps checks stay independent conditionals so a future overlap
// between the domain lists cannot silently drop a URL.
func MigrateDigitalPresence(leads []*model.Lead, domains config.DomainLists, stats *model.BatchStats) {
	for _, l := range leads {
		site := l.Website
		category := ClassifyURL(site, domains)

		if category == model.URLCategoryMaps {
			if fieldEmpty(l.GoogleMapID) {
				l.GoogleMapID = site
				stats.MapsMoved++
			}
			l.Website = ""
			stats.MapsRemoved++
			continue
		}

		if category == model.URLCategorySocial {
			if fieldEmpty(l.SocialMediaLinks) {
				l.SocialMediaLinks = site
			} else {
				l.SocialMediaLinks = l.SocialMediaLinks + " | " + site
			}
			l.Website = ""
			stats.SocialMoved++
		}

		if category == model.URLCategoryEcommerce {
			if fieldEmpty(l.EcommerceLink) {
				l.EcommerceLink = site
			} else {
				l.EcommerceLink = l.EcommerceLink + " | " + site
			}
			l.Website = ""
			stats.EcommerceMoved++
		}
	}

	zap.L().Info("migrate: digital presence fields relocated",
		zap.Int("maps_moved", stats.MapsMoved),
		zap.Int("maps_removed", stats.MapsRemoved),
		zap.Int("social_moved", stats.SocialMoved),
		zap.Int("ecommerce_moved", stats.EcommerceMoved),
	)
}

// presenceFlag is 1 iff the field is non-empty after trimming and not the
// literal "nan".
func presenceFlag(s string) int {
	if fieldEmpty(s) {
		return 0
	}
	return 1
}

// DerivePresenceFlags sets the binary digital-presence and conversion flags
// from the post-migration field values.
func DerivePresenceFlags(l *model.Lead) {
	l.HasWebsite = presenceFlag(l.Website)
	l.HasMaps = presenceFlag(l.GoogleMapID)
	l.HasSocialMedia = presenceFlag(l.SocialMediaLinks)
	l.HasEcommerce = presenceFlag(l.EcommerceLink)
	l.IsConverted = 0
	if l.ConvertedDate != nil {
		l.IsConverted = 1
	}
}
