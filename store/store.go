package store

import "context"

// Collection names, matching the documents the original site accumulated.
const (
	StatusChecks    = "status_checks"
	ContactMessages = "contact_messages"
	GalleryImages   = "gallery_images"
	Services        = "services"
	Promotions      = "promotions"
)

// Retrieval caps. Listings never page; they cut off here.
const (
	DefaultListCap = 1000
	ShortListCap   = 100
)

// Store is the collection-scoped persistence adapter. Filters are flat
// field-equality maps; a nil filter matches everything. FindAll decodes at
// most limit documents into out (a pointer to a slice) and never exposes
// the store-internal _id. UpdateOne applies patch as a field replacement
// and reports how many documents it touched; with upsert set it inserts a
// new document (stamping a fresh id) when nothing matches. DeleteOne
// reports 0 or 1; callers treat 0 as not found.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) error
	FindAll(ctx context.Context, collection string, filter map[string]any, limit int64, out any) error
	UpdateOne(ctx context.Context, collection string, filter, patch map[string]any, upsert bool) (int64, error)
	DeleteOne(ctx context.Context, collection string, filter map[string]any) (int64, error)
}
