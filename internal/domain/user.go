package domain

import (
	"context"
	"time"
)

// User represents one record in the administrative user directory.
//
// ID and UserID are assigned on creation and never change afterwards.
// PasswordHash is carried for authentication only; it is never rendered
// and never written through the profile-edit path.
type User struct {
	ID           int64
	UserID       string // stable external identifier (uuid)
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Gender       string
	Address      *string
	Country      *string
	PhoneNumber  *string
	CreatedAt    time.Time
}

// Roles used when seeding the directory. Role is otherwise a free-form
// string managed through the role-change flow.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ProfileUpdate is the editable surface of a User. Exactly these four
// fields can be changed through the profile-edit path; all are required.
type ProfileUpdate struct {
	ID      int64
	Name    string
	Email   string
	Address string
	Country string
}

// UserRepository defines persistence operations for directory users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) error
	UpdateRole(ctx context.Context, userID string, role string) error
	Count(ctx context.Context) (int, error)
}
