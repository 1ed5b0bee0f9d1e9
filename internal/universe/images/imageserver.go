// Package images builds URLs to the Eve Online image server. These are
// read-only helpers; no ingestion happens here.
package images

import (
	"fmt"

	"eveuniverse/internal/shared/errors"
)

const imageServerBaseURL = "https://images.evetech.net"

var validSizes = map[int]bool{32: true, 64: true, 128: true, 256: true, 512: true, 1024: true}

// allowed variants per image server category
var categoryVariants = map[string]map[string]bool{
	"alliance":    {"logo": true},
	"character":   {"portrait": true},
	"corporation": {"logo": true},
	"faction":     {"logo": true},
	"type":        {"icon": true, "render": true, "bp": true, "bpc": true},
}

// ImageURL builds an image URL for the given category, id, variant and size.
// Size must be a power of two between 32 and 1024.
func ImageURL(category string, id int64, variant string, size int) (string, error) {
	variants, ok := categoryVariants[category]
	if !ok {
		return "", errors.NewInvalidInputError("invalid image category", category)
	}
	if !variants[variant] {
		return "", errors.NewInvalidInputError(
			"invalid variant for category", fmt.Sprintf("%s/%s", category, variant))
	}
	if id <= 0 {
		return "", errors.NewInvalidInputError("invalid id", fmt.Sprint(id))
	}
	if !validSizes[size] {
		return "", errors.NewInvalidInputError("invalid size", fmt.Sprint(size))
	}

	endpoint := category
	if category == "faction" {
		// factions are served through the corporations endpoint
		endpoint = "corporation"
	}
	return fmt.Sprintf("%s/%ss/%d/%s?size=%d", imageServerBaseURL, endpoint, id, variant, size), nil
}

// AllianceLogoURL returns an image URL for the given alliance.
func AllianceLogoURL(id int64, size int) (string, error) {
	return ImageURL("alliance", id, "logo", size)
}

// CharacterPortraitURL returns an image URL for the given character.
func CharacterPortraitURL(id int64, size int) (string, error) {
	return ImageURL("character", id, "portrait", size)
}

// CorporationLogoURL returns an image URL for the given corporation.
func CorporationLogoURL(id int64, size int) (string, error) {
	return ImageURL("corporation", id, "logo", size)
}

// FactionLogoURL returns an image URL for the given faction.
func FactionLogoURL(id int64, size int) (string, error) {
	return ImageURL("faction", id, "logo", size)
}

// TypeIconURL returns an icon URL for the given inventory type.
func TypeIconURL(id int64, size int) (string, error) {
	return ImageURL("type", id, "icon", size)
}

// TypeRenderURL returns a render URL for the given inventory type.
func TypeRenderURL(id int64, size int) (string, error) {
	return ImageURL("type", id, "render", size)
}

// TypeBPURL returns a blueprint original icon URL for the given type.
func TypeBPURL(id int64, size int) (string, error) {
	return ImageURL("type", id, "bp", size)
}

// TypeBPCURL returns a blueprint copy icon URL for the given type.
func TypeBPCURL(id int64, size int) (string, error) {
	return ImageURL("type", id, "bpc", size)
}
