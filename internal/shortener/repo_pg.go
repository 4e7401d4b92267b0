package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sundayezeilo/linkshort/internal/db"
	"github.com/sundayezeilo/linkshort/internal/errx"
)

// store is the part of *db.Store the repository needs.
type store interface {
	db.Querier
	ExecTx(ctx context.Context, fn func(db.Querier) error) error
}

type repo struct {
	store store
}

// NewRepository creates a PostgreSQL-backed Repository.
func NewRepository(s store) Repository {
	return &repo{store: s}
}

func mustTime(ts pgtype.Timestamptz, field string) (time.Time, error) {
	if !ts.Valid {
		return time.Time{}, fmt.Errorf("%s unexpectedly NULL", field)
	}
	return ts.Time, nil
}

func toDomainLink(x db.Link) (Link, error) {
	createdAt, err := mustTime(x.CreatedAt, "created_at")
	if err != nil {
		return Link{}, err
	}

	return Link{
		ID:        x.ID,
		Short:     x.Short,
		Target:    x.Target,
		Clicks:    x.Clicks,
		CreatedAt: createdAt,
	}, nil
}

func mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return errx.E(op, errx.NotFound, err)

	case isShortTaken(err):
		return errx.E(op, errx.Duplicate, err)

	case isShortLengthViolation(err):
		return errx.E(op, errx.Invalid, err)

	default:
		return errx.E(op, errx.Storage, err)
	}
}

// insertLink reserves an id, asks code for the short code and inserts the row
// in one statement, so no row is ever visible without its final code.
func insertLink(ctx context.Context, q db.Querier, target string, code CodeFunc) (db.Link, error) {
	id, err := q.NextLinkID(ctx)
	if err != nil {
		return db.Link{}, err
	}

	short := code(id)
	exists, err := q.ShortExists(ctx, short)
	if err != nil {
		return db.Link{}, err
	}
	if exists {
		return db.Link{}, errShortTaken
	}

	return q.CreateLink(ctx, db.CreateLinkParams{
		ID:     id,
		Short:  short,
		Target: target,
	})
}

func (r *repo) create(ctx context.Context, op, target string, code CodeFunc) (Link, error) {
	var row db.Link
	err := r.store.ExecTx(ctx, func(q db.Querier) error {
		var err error
		row, err = insertLink(ctx, q, target, code)
		return err
	})
	if err != nil {
		return Link{}, mapRepoError(op, err)
	}

	link, err := toDomainLink(row)
	if err != nil {
		return Link{}, errx.E(op, errx.Storage, err)
	}
	return link, nil
}

func (r *repo) CreateCustom(ctx context.Context, target, short string) (Link, error) {
	return r.create(ctx, "shortener.repo.CreateCustom", target, func(int64) string { return short })
}

func (r *repo) CreateGenerated(ctx context.Context, target string, code CodeFunc) (Link, error) {
	return r.create(ctx, "shortener.repo.CreateGenerated", target, code)
}

func (r *repo) Resolve(ctx context.Context, short string) (Link, error) {
	const op = "shortener.repo.Resolve"

	row, err := r.store.IncrementClicks(ctx, short)
	if err != nil {
		return Link{}, mapRepoError(op, err)
	}

	link, err := toDomainLink(row)
	if err != nil {
		return Link{}, errx.E(op, errx.Storage, err)
	}
	return link, nil
}

func (r *repo) ListRecent(ctx context.Context, limit int) ([]Link, error) {
	const op = "shortener.repo.ListRecent"

	rows, err := r.store.ListRecentLinks(ctx, int32(limit))
	if err != nil {
		return nil, mapRepoError(op, err)
	}

	links := make([]Link, 0, len(rows))
	for _, row := range rows {
		link, err := toDomainLink(row)
		if err != nil {
			return nil, errx.E(op, errx.Storage, err)
		}
		links = append(links, link)
	}
	return links, nil
}
