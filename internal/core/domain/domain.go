// Package domain holds the value types shared across the card builder.
package domain

// Platform identifies the social network a preview card is built for.
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformMastodon Platform = "mastodon"
	PlatformTwitter  Platform = "twitter"
)

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformMastodon, PlatformTwitter:
		return true
	default:
		return false
	}
}

// CardSize is the layout class of a preview card. It is derived by the
// builder, never chosen by the caller directly.
type CardSize string

const (
	SizeSmall  CardSize = "small"  // Mastodon
	SizeMedium CardSize = "medium" // Twitter summary
	SizeLarge  CardSize = "large"  // Twitter summary with large image, Facebook
)

// ImageSize returns the nominal width and height a renderer should use for
// the card image. Actual fetching and scaling happen outside this module.
func (s CardSize) ImageSize() (int, int) {
	switch s {
	case SizeSmall:
		return 64, 64
	case SizeMedium:
		return 125, 125
	default:
		return 500, 250
	}
}

// IconSize returns the nominal pixel size for the platform icon overlay.
func (s CardSize) IconSize() int {
	switch s {
	case SizeSmall:
		return 32
	case SizeMedium:
		return 48
	default:
		return 64
	}
}

// Image references a card image by its source URL. Pixel data never passes
// through this module.
type Image struct {
	URL string `json:"url"`
}

// Snapshot is the finished metadata extracted from a page by an external
// collaborator: lower-cased meta-tag names mapped to their content, the
// page title if one was found, the images discovered in the document in
// order, and the canonical site string.
type Snapshot struct {
	URL      string
	Title    string
	Metadata map[string]string
	Images   []Image
}

// Card is a normalized social preview card. It is immutable once built;
// ownership passes entirely to the caller.
type Card struct {
	Title       string   `json:"title"`
	Site        string   `json:"site"`
	Description string   `json:"description,omitempty"`
	Image       *Image   `json:"image,omitempty"`
	Size        CardSize `json:"size"`
	Social      Platform `json:"social"`
}
