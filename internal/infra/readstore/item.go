package readstore

import (
	"context"
	"strings"

	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemReadQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	ListItemIDsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemIDsByOwnerParams) ([]uuid.UUID, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsByOwnerParams) ([]sqlc.Items, error)
	SearchAvailableItems(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchAvailableItemsParams) ([]sqlc.Items, error)
	ListItemsByRequestIDs(ctx context.Context, db sqlc.DBTX, requestIds []uuid.UUID) ([]sqlc.Items, error)
}

// ItemReadStore also serves as the booking core's ItemCatalog.
type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.getRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ItemViewFromRow(row), nil
}

func (r *ItemReadStore) GetItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	row, err := r.getRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ItemSnapshotFromRow(row), nil
}

func (r *ItemReadStore) GetOwnedItemIDs(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]uuid.UUID, error) {
	ids, err := r.queries.ListItemIDsByOwner(ctx, r.db, sqlc.ListItemIDsByOwnerParams{
		OwnerID:    ownerID,
		PageLimit:  pgconv.IntToInt32(page.Limit),
		PageOffset: pgconv.IntToInt32(page.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned item ids", err)
	}
	return ids, nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, sqlc.ListItemsByOwnerParams{
		OwnerID:    ownerID,
		PageLimit:  pgconv.IntToInt32(page.Limit),
		PageOffset: pgconv.IntToInt32(page.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return converter.ItemViewsFromRows(rows), nil
}

func (r *ItemReadStore) Search(ctx context.Context, text string, page shared.Page) ([]*queries.ItemView, error) {
	rows, err := r.queries.SearchAvailableItems(ctx, r.db, sqlc.SearchAvailableItemsParams{
		Pattern:    escapeLike(text),
		PageLimit:  pgconv.IntToInt32(page.Limit),
		PageOffset: pgconv.IntToInt32(page.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return converter.ItemViewsFromRows(rows), nil
}

func (r *ItemReadStore) ListByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*queries.ItemView, error) {
	if len(requestIDs) == 0 {
		return []*queries.ItemView{}, nil
	}
	rows, err := r.queries.ListItemsByRequestIDs(ctx, r.db, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request", err)
	}
	return converter.ItemViewsFromRows(rows), nil
}

func (r *ItemReadStore) getRow(ctx context.Context, id uuid.UUID) (sqlc.Items, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Items{}, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return sqlc.Items{}, infra.WrapRepoErr("failed to get item", err)
	}
	return row, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user text match literally inside ILIKE (backslash is the default escape).
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
