package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/educenter/backoffice-go/internal/domain/user"
	"github.com/educenter/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if newUser.ID == "" {
		newUser.ID = uuid.New().String()
	}

	// Username and email uniqueness checks must see the same snapshot as
	// the insert.
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var usernameTaken, emailTaken bool
		err := tx.QueryRow(ctx,
			`SELECT
				EXISTS(SELECT 1 FROM users WHERE username = $1),
				EXISTS(SELECT 1 FROM users WHERE email = $2)`,
			newUser.Username, newUser.Email,
		).Scan(&usernameTaken, &emailTaken)
		if err != nil {
			return fmt.Errorf("check user uniqueness: %w", err)
		}
		if usernameTaken {
			return user.ErrUsernameExists
		}
		if emailTaken {
			return user.ErrEmailExists
		}

		query := `
			INSERT INTO users (id, username, email, password_hash, full_name, role, department, position, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at, updated_at
		`

		err = tx.QueryRow(ctx, query,
			newUser.ID,
			newUser.Username,
			newUser.Email,
			newUser.PasswordHash,
			newUser.FullName,
			string(newUser.Role),
			newUser.Department,
			newUser.Position,
			newUser.IsActive,
		).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	return newUser, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *userRepositoryImpl) getBy(ctx context.Context, column, value string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, full_name, role, department, position, is_active, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var u user.User
	var role string
	err := q.QueryRow(ctx, query, value).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&role,
		&u.Department,
		&u.Position,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("get user: %w", err)
	}

	u.Role = user.Role(role)
	return u, nil
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, email, password_hash, full_name, role, department, position, is_active, created_at, updated_at
		FROM users
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		var role string
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.PasswordHash,
			&u.FullName,
			&role,
			&u.Department,
			&u.Position,
			&u.IsActive,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = user.Role(role)
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, full_name = $4, role = $5,
			department = $6, position = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
	`

	result, err := q.Exec(ctx, query,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FullName,
		string(u.Role),
		u.Department,
		u.Position,
		u.IsActive,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
