package converter

import (
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserToUpdateParams(u *user.User) sqlc.UpdateUserParams {
	return sqlc.UpdateUserParams{
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
		ID:        u.ID(),
	}
}

func UserFromRow(row sqlc.Users) *user.User {
	return user.ReconstructUser(
		row.ID,
		user.ReconstructName(row.Name),
		user.ReconstructEmail(row.Email),
		row.PasswordHash,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func UserViewFromRow(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func UserSnapshotFromRow(row sqlc.Users) *shared.UserSnapshot {
	return &shared.UserSnapshot{ID: row.ID, Name: row.Name, Email: row.Email}
}

func ItemRequestToCreateParams(r *itemrequest.ItemRequest) sqlc.CreateItemRequestParams {
	return sqlc.CreateItemRequestParams{
		ID:          r.ID(),
		RequesterID: r.RequesterID(),
		Description: r.Description(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ItemRequestViewFromRow(row sqlc.ItemRequests) *queries.ItemRequestView {
	return &queries.ItemRequestView{
		ID:          row.ID,
		RequesterID: row.RequesterID,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func ItemRequestViewsFromRows(rows []sqlc.ItemRequests) []*queries.ItemRequestView {
	out := make([]*queries.ItemRequestView, 0, len(rows))
	for _, r := range rows {
		out = append(out, ItemRequestViewFromRow(r))
	}
	return out
}
