package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

// UserRepo stores credential hashes; hashing itself happens in the account
// service.
type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *repository.User) error {
	err := r.db.Get(ctx, &user.ID,
		"INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id",
		user.Username, user.Password, user.Role)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT id, username, password, role FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*repository.User, error) {
	var users []*repository.User
	err := r.db.Select(ctx, &users, "SELECT id, username, password, role FROM users ORDER BY username ASC")
	return users, err
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// Update rewrites the user identified by username. An empty Password keeps
// the stored hash.
func (r *UserRepo) Update(ctx context.Context, username string, user *repository.User) error {
	var (
		tagErr error
		rows   int64
	)
	if user.Password != "" {
		tag, err := r.db.Exec(ctx,
			"UPDATE users SET username = $1, password = $2, role = $3 WHERE username = $4",
			user.Username, user.Password, user.Role, username)
		rows, tagErr = tag.RowsAffected(), err
	} else {
		tag, err := r.db.Exec(ctx,
			"UPDATE users SET username = $1, role = $2 WHERE username = $3",
			user.Username, user.Role, username)
		rows, tagErr = tag.RowsAffected(), err
	}

	if tagErr != nil {
		if db.IsUniqueViolation(tagErr) {
			return repository.ErrDuplicate
		}
		return tagErr
	}
	if rows == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM users WHERE username = $1", username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
