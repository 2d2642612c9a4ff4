package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/user-directory/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

const userColumns = "id, user_id, name, email, password_hash, role, gender, address, country, phone_number, created_at"

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	externalID := uuid.NewString()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, name, email, password_hash, role, gender, address, country, phone_number, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		externalID, user.Name, user.Email, user.PasswordHash, user.Role, user.Gender,
		user.Address, user.Country, user.PhoneNumber, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	user.ID = id
	user.UserID = externalID
	user.CreatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id,
	)
	return scanUser(row, "query user by id")
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE user_id = ?", userID,
	)
	return scanUser(row, "query user by user_id")
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email,
	)
	return scanUser(row, "query user by email")
}

// List returns every user in insertion order. The stable fetch order is
// what list sorting later breaks ties against.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var address, country, phone sql.NullString
		if err := rows.Scan(&u.ID, &u.UserID, &u.Name, &u.Email, &u.PasswordHash,
			&u.Role, &u.Gender, &address, &country, &phone, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Address = nullableString(address)
		u.Country = nullableString(country)
		u.PhoneNumber = nullableString(phone)
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateProfile sets exactly the four editable profile columns. All other
// columns, password_hash included, are left untouched.
func (r *UserRepository) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, address = ?, country = ? WHERE id = ?`,
		update.Name, update.Email, update.Address, update.Country, update.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update user profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID string, role string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET role = ? WHERE user_id = ?", role, userID,
	)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func scanUser(row *sql.Row, op string) (*domain.User, error) {
	u := &domain.User{}
	var address, country, phone sql.NullString
	err := row.Scan(&u.ID, &u.UserID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Role, &u.Gender, &address, &country, &phone, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Address = nullableString(address)
	u.Country = nullableString(country)
	u.PhoneNumber = nullableString(phone)
	return u, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
