package readstore

import (
	"context"

	"grandehotel-core/internal/infra"
	"grandehotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db
}

func NewUserReadStore(db db) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, email, display_name, role, is_active
		FROM users
		WHERE id = @id`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).
		Scan(&view.ID, &view.Email, &view.DisplayName, &view.Role, &view.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find user", err)
	}
	return &view, nil
}
