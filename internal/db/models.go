package db

import "github.com/jackc/pgx/v5/pgtype"

type Link struct {
	ID        int64
	Short     string
	Target    string
	Clicks    int64
	CreatedAt pgtype.Timestamptz
}

type CreateLinkParams struct {
	ID     int64
	Short  string
	Target string
}
