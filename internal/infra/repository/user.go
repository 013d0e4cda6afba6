package repository

import (
	"context"
	"time"

	"grandehotel-core/internal/domain/user"
	"grandehotel-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db
}

func NewUserRepository(db db) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	const q = `
		SELECT id, email, password_hash, display_name, role, last_login, is_active, created_at, updated_at
		FROM users
		WHERE email = @email`

	var (
		id           uuid.UUID
		emailRaw     string
		passwordHash string
		displayName  string
		roleRaw      string
		lastLogin    *time.Time
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email.Value()}).
		Scan(&id, &emailRaw, &passwordHash, &displayName, &roleRaw, &lastLogin, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find user", err)
	}

	storedEmail, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored email is malformed", err)
	}
	role, err := user.NewRole(roleRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored role is malformed", err)
	}

	return user.ReconstructUser(id, storedEmail, passwordHash, displayName, role, lastLogin, isActive, createdAt, updatedAt), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	const q = `
		UPDATE users
		SET last_login = @at, updated_at = now()
		WHERE id = @id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": userID, "at": at}); err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to update last login", err)
	}
	return nil
}
