package engine

import (
	"context"

	"eveuniverse/internal/shared/constants"
	"eveuniverse/internal/universe/images"
	"eveuniverse/internal/universe/models"
)

// TypeIconURL returns the icon URL for an inventory type, picking the image
// variant by category: blueprints get the bp variant and SKINs come from
// the skin server when that is enabled. The type and its group are loaded
// on demand.
func (e *Engine) TypeIconURL(ctx context.Context, typeID int64, size int) (string, error) {
	model, _, err := e.GetOrCreate(ctx, "EveType", typeID, LoadOptions{})
	if err != nil {
		return "", err
	}
	eveType := model.(*models.EveType)

	model, _, err = e.GetOrCreate(ctx, "EveGroup", eveType.EveGroupID, LoadOptions{})
	if err != nil {
		return "", err
	}
	group := model.(*models.EveGroup)

	switch group.EveCategoryID {
	case constants.EveCategoryIDBlueprint:
		return images.TypeBPURL(typeID, size)
	case constants.EveCategoryIDSkin:
		if e.useSkinserver {
			return images.SkinTypeIconURL(typeID, size)
		}
		return images.TypeIconURL(typeID, size)
	default:
		return images.TypeIconURL(typeID, size)
	}
}
