package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by collection).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// EntryUUID identifies a content entry by collection and slug.
func EntryUUID(collection, slug string) uuid.UUID {
	collection = strings.ToLower(strings.TrimSpace(collection))
	slug = strings.ToLower(strings.TrimSpace(slug))
	return UUID("go-garden:" + collection + ":" + slug)
}

// TagUUID identifies a tag index page.
func TagUUID(tag string) uuid.UUID {
	return UUID("go-garden:tag:" + strings.ToLower(strings.TrimSpace(tag)))
}

// RouteUUID identifies a synthetic page that is not backed by a single entry,
// such as the home page or a collection index.
func RouteUUID(route string) uuid.UUID {
	route = strings.Trim(strings.TrimSpace(route), "/")
	return UUID("go-garden:route:/" + route)
}
