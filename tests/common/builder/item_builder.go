//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/item"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
	CreatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
		CreatedAt:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() *item.Item {
	return item.ReconstructItem(
		b.ID, b.OwnerID,
		item.ReconstructName(b.Name), item.ReconstructDescription(b.Description),
		b.Available, b.RequestID,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ItemBuilder) BuildInfra() sqlc.Items {
	var requestID pgtype.UUID
	if b.RequestID != nil {
		requestID = pgtype.UUID{Bytes: *b.RequestID, Valid: true}
	}
	return sqlc.Items{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   requestID,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ItemBuilder) BuildReadModel() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) Unavailable() *ItemBuilder {
	b.Available = false
	return b
}
