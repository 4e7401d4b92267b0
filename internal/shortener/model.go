package shortener

import "time"

// Link is a short code mapped to its target. Only Clicks changes after creation.
type Link struct {
	ID        int64
	Short     string
	Target    string
	Clicks    int64
	CreatedAt time.Time
}
