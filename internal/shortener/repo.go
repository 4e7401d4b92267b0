package shortener

import "context"

// CodeFunc derives a short code from a link id reserved by the store.
type CodeFunc func(id int64) string

// Repository defines the persistence operations for Link entities. Each
// method runs in its own transaction scope and leaves nothing behind on error.
type Repository interface {
	CreateCustom(ctx context.Context, target, short string) (Link, error)
	CreateGenerated(ctx context.Context, target string, code CodeFunc) (Link, error)
	Resolve(ctx context.Context, short string) (Link, error)
	ListRecent(ctx context.Context, limit int) ([]Link, error)
}
