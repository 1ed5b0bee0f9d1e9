package images

import (
	"fmt"

	"eveuniverse/internal/shared/errors"
)

const skinServerBaseURL = "https://eveskinserver.kalkoken.net"

// SkinTypeIconURL returns an icon URL for a SKIN type, served by the
// auxiliary skin server.
func SkinTypeIconURL(id int64, size int) (string, error) {
	if id <= 0 {
		return "", errors.NewInvalidInputError("invalid id", fmt.Sprint(id))
	}
	if !validSizes[size] {
		return "", errors.NewInvalidInputError("invalid size", fmt.Sprint(size))
	}
	return fmt.Sprintf("%s/skin/%d/icon?size=%d", skinServerBaseURL, id, size), nil
}
