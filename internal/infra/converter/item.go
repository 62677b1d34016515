package converter

import (
	"shareit/internal/domain/item"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

func ItemToCreateParams(it *item.Item) sqlc.CreateItemParams {
	return sqlc.CreateItemParams{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name().String(),
		Description: it.Description().String(),
		Available:   it.Available(),
		RequestID:   pgconv.UUIDPtrToPgtype(it.RequestID()),
		CreatedAt:   pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
	}
}

func ItemToUpdateParams(it *item.Item) sqlc.UpdateItemParams {
	return sqlc.UpdateItemParams{
		Name:        it.Name().String(),
		Description: it.Description().String(),
		Available:   it.Available(),
		UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
		ID:          it.ID(),
	}
}

func ItemFromRow(row sqlc.Items) *item.Item {
	return item.ReconstructItem(
		row.ID,
		row.OwnerID,
		item.ReconstructName(row.Name),
		item.ReconstructDescription(row.Description),
		row.Available,
		pgconv.UUIDPtrFromPgtype(row.RequestID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ItemViewFromRow(row sqlc.Items) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		RequestID:   pgconv.UUIDPtrFromPgtype(row.RequestID),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func ItemViewsFromRows(rows []sqlc.Items) []*queries.ItemView {
	out := make([]*queries.ItemView, 0, len(rows))
	for _, r := range rows {
		out = append(out, ItemViewFromRow(r))
	}
	return out
}

func ItemSnapshotFromRow(row sqlc.Items) *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Available: row.Available,
	}
}

func CommentToCreateParams(c *item.Comment) sqlc.CreateCommentParams {
	return sqlc.CreateCommentParams{
		ID:        c.ID(),
		ItemID:    c.ItemID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text().String(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CommentViewsFromRows(rows []sqlc.ListCommentsByItemRow) []*queries.CommentView {
	out := make([]*queries.CommentView, 0, len(rows))
	for _, r := range rows {
		out = append(out, &queries.CommentView{
			ID:         r.ID,
			ItemID:     r.ItemID,
			AuthorID:   r.AuthorID,
			AuthorName: r.AuthorName,
			Text:       r.Text,
			CreatedAt:  pgconv.TimeFromPgtype(r.CreatedAt),
		})
	}
	return out
}
