package db

import (
	"context"
)

const linkColumns = `id, short, target, clicks, created_at`

func scanLink(row interface{ Scan(dest ...any) error }) (Link, error) {
	var i Link
	err := row.Scan(
		&i.ID,
		&i.Short,
		&i.Target,
		&i.Clicks,
		&i.CreatedAt,
	)
	return i, err
}

const nextLinkID = `SELECT nextval('links_id_seq')::bigint`

func (q *Queries) NextLinkID(ctx context.Context) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, nextLinkID).Scan(&id)
	return id, err
}

const createLink = `INSERT INTO links (id, short, target)
VALUES ($1, $2, $3)
RETURNING ` + linkColumns

func (q *Queries) CreateLink(ctx context.Context, arg CreateLinkParams) (Link, error) {
	row := q.db.QueryRow(ctx, createLink, arg.ID, arg.Short, arg.Target)
	return scanLink(row)
}

const shortExists = `SELECT EXISTS (SELECT 1 FROM links WHERE short = $1)`

func (q *Queries) ShortExists(ctx context.Context, short string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, shortExists, short).Scan(&exists)
	return exists, err
}

const getLinkByShort = `SELECT ` + linkColumns + `
FROM links
WHERE short = $1`

func (q *Queries) GetLinkByShort(ctx context.Context, short string) (Link, error) {
	row := q.db.QueryRow(ctx, getLinkByShort, short)
	return scanLink(row)
}

// The row lock taken by UPDATE serializes concurrent increments of one link.
const incrementClicks = `UPDATE links
SET clicks = clicks + 1
WHERE short = $1
RETURNING ` + linkColumns

func (q *Queries) IncrementClicks(ctx context.Context, short string) (Link, error) {
	row := q.db.QueryRow(ctx, incrementClicks, short)
	return scanLink(row)
}

const listRecentLinks = `SELECT ` + linkColumns + `
FROM links
ORDER BY created_at DESC, id DESC
LIMIT $1`

func (q *Queries) ListRecentLinks(ctx context.Context, limit int32) ([]Link, error) {
	rows, err := q.db.Query(ctx, listRecentLinks, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Link{}
	for rows.Next() {
		i, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
