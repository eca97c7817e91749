package readstore

import (
	"context"
	"errors"

	"campus-booking/internal/infra"
	"campus-booking/internal/infra/db"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VenueReadStore struct {
	db db.DBTX
}

func NewVenueReadStore(db db.DBTX) *VenueReadStore {
	return &VenueReadStore{db: db}
}

func (r *VenueReadStore) ByID(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	const query = `
		SELECT id, name, department, kind, created_at
		FROM venues
		WHERE id = $1`

	var snap shared.VenueSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.Department, &snap.Kind, &snap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err)
	}

	return &snap, nil
}

func (r *VenueReadStore) List(ctx context.Context) ([]*shared.VenueSnapshot, error) {
	const query = `
		SELECT id, name, department, kind, created_at
		FROM venues
		ORDER BY department, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	defer rows.Close()

	snaps := make([]*shared.VenueSnapshot, 0)
	for rows.Next() {
		var snap shared.VenueSnapshot
		err := rows.Scan(&snap.ID, &snap.Name, &snap.Department, &snap.Kind, &snap.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue", err)
		}
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venues", err)
	}

	return snaps, nil
}
