package roam

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// newBlockUID returns a 13-character block identifier derived from a random
// UUID. UIDs are generated client-side so write operations can report the
// identifier of the block they created.
func newBlockUID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])[:13]
}
