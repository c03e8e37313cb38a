// Package card builds normalized social preview cards from a page's
// already-extracted metadata. It performs no network I/O, HTML parsing, or
// image decoding; everything it needs arrives in the snapshot.
package card

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lueurxax/social-preview/internal/core/domain"
	cerrors "github.com/lueurxax/social-preview/internal/core/errors"
)

// Meta-tag names consulted by the builder. Snapshot metadata keys are
// lower-cased, so these match exactly.
const (
	tagTitle           = "title"
	tagDescription     = "description"
	tagOGTitle         = "og:title"
	tagOGDescription   = "og:description"
	tagOGImage         = "og:image"
	tagOGType          = "og:type"
	tagOGSiteName      = "og:site_name"
	tagTwitterTitle    = "twitter:title"
	tagTwitterDesc     = "twitter:description"
	tagTwitterImage    = "twitter:image"
	tagTwitterImageSrc = "twitter:image:src"
	tagTwitterCard     = "twitter:card"
)

// Log field keys.
const (
	logKeyPlatform = "platform"
	logKeySize     = "size"
)

// lookup holds the per-platform candidate key lists, in priority order.
type lookup struct {
	title       []string
	description []string
	image       []string
	cardType    []string
}

var lookups = map[domain.Platform]lookup{
	domain.PlatformFacebook: {
		title:       []string{tagOGTitle, tagTwitterTitle, tagTitle},
		description: []string{tagOGDescription, tagTwitterDesc, tagDescription},
		image:       []string{tagOGImage, tagTwitterImage, tagTwitterImageSrc},
		cardType:    []string{tagOGType},
	},
	domain.PlatformMastodon: {
		title:       []string{tagOGTitle, tagTwitterTitle, tagTitle},
		description: []string{tagOGDescription, tagTwitterDesc, tagDescription},
		image:       []string{tagOGImage},
		cardType:    []string{tagOGType},
	},
	domain.PlatformTwitter: {
		title:       []string{tagTwitterTitle, tagOGTitle, tagTitle},
		description: []string{tagTwitterDesc, tagOGDescription},
		image:       []string{tagTwitterImage, tagTwitterImageSrc, tagOGImage},
		cardType:    []string{tagTwitterCard, tagOGType},
	},
}

// Builder assembles preview cards. It is stateless apart from its logger
// and safe for concurrent use.
type Builder struct {
	logger *zerolog.Logger
}

func NewBuilder(logger *zerolog.Logger) *Builder {
	if logger == nil {
		l := zerolog.Nop()
		logger = &l
	}

	return &Builder{logger: logger}
}

// Build assembles the preview card the given platform would render for the
// snapshot. It returns cerrors.ErrNotEnoughData or
// cerrors.ErrTwitterNoCardFound when the metadata cannot support a card.
func (b *Builder) Build(snap domain.Snapshot, platform domain.Platform) (*domain.Card, error) {
	keys, ok := lookups[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %q", cerrors.ErrUnknownPlatform, platform)
	}

	metadata := snap.Metadata
	site := snap.URL

	switch platform {
	case domain.PlatformFacebook:
		site = strings.ToUpper(site)
	case domain.PlatformMastodon:
		if name := metadata[tagOGSiteName]; name != "" {
			site = name
		}
	}

	// The raw metadata title is kept apart from the displayed title: the
	// Twitter sufficiency check below must see whether metadata itself had
	// anything, while the displayed title falls back to the page title and
	// then the site string and so is never empty.
	metaTitle, titleFound := firstTag(keys.title, metadata, false)

	title := metaTitle
	if !titleFound {
		title = snap.Title
	}

	if title == "" {
		title = site
	}

	description, descriptionFound := firstTag(keys.description, metadata, false)

	var image *domain.Image
	if src, found := firstTag(keys.image, metadata, true); found {
		image = &domain.Image{URL: src}
	}

	_, cardTypeFound := firstTag(keys.cardType, metadata, false)

	if platform == domain.PlatformTwitter && !titleFound && !descriptionFound {
		return nil, cerrors.ErrNotEnoughData
	}

	size := defaultSize(platform)

	switch platform {
	case domain.PlatformFacebook:
		// No declared image: fall back to the first image found in the
		// document, rendered in the medium layout.
		if image == nil && len(snap.Images) > 0 {
			first := snap.Images[0]
			image = &first
			size = domain.SizeMedium
		}
	case domain.PlatformTwitter:
		if !cardTypeFound {
			return nil, cerrors.ErrTwitterNoCardFound
		}

		hint, declared := metadata[tagTwitterCard]
		size = twitterSize(hint, declared)
	}

	b.logger.Debug().
		Str(logKeyPlatform, string(platform)).
		Str(logKeySize, string(size)).
		Bool("has_image", image != nil).
		Msg("built preview card")

	return &domain.Card{
		Title:       title,
		Site:        site,
		Description: description,
		Image:       image,
		Size:        size,
		Social:      platform,
	}, nil
}
