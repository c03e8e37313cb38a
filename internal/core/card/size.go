package card

import "github.com/lueurxax/social-preview/internal/core/domain"

// twitter:card values that pick a layout.
const (
	twitterCardSummary    = "summary"
	twitterCardLargeImage = "summary_large_image"
)

// defaultSize returns the card size a platform uses before any metadata
// hint is applied.
func defaultSize(platform domain.Platform) domain.CardSize {
	switch platform {
	case domain.PlatformMastodon:
		return domain.SizeSmall
	default:
		return domain.SizeLarge
	}
}

// twitterSize maps the twitter:card meta-tag to a layout size. A page that
// declares no twitter:card at all gets the plain summary layout; a declared
// but unrecognized value keeps the large layout, which is how the network
// itself falls back.
func twitterSize(hint string, declared bool) domain.CardSize {
	if !declared {
		return domain.SizeMedium
	}

	switch hint {
	case twitterCardSummary:
		return domain.SizeMedium
	case twitterCardLargeImage:
		return domain.SizeLarge
	default:
		// Unrecognized card types render the large layout.
		return domain.SizeLarge
	}
}
