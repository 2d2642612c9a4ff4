package service

import (
	"context"
	"fmt"

	"github.com/msomdec/user-directory/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// DirectoryService provides the user directory: the full list and a
// single profile-update operation.
type DirectoryService struct {
	users domain.UserRepository
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(users domain.UserRepository) *DirectoryService {
	return &DirectoryService{users: users}
}

// List returns all users in their stable fetch order.
func (s *DirectoryService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a single user by numeric ID.
func (s *DirectoryService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByUserID retrieves a single user by their stable external identifier.
func (s *DirectoryService) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByUserID(ctx, userID)
}

// UpdateProfile applies a profile edit. All four editable fields are
// required; only their presence is validated. On success the confirmed
// record is re-read and returned, untouched fields intact.
func (s *DirectoryService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	if update.Name == "" || update.Email == "" || update.Address == "" || update.Country == "" {
		return nil, fmt.Errorf("%w: name, email, address, and country are required", domain.ErrInvalidInput)
	}

	if err := s.users.UpdateProfile(ctx, update); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	user, err := s.users.GetByID(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("reload updated user: %w", err)
	}
	return user, nil
}

// ChangeRole sets a user's role. Part of the role-management flow the
// detail dialog links to; separate from profile editing.
func (s *DirectoryService) ChangeRole(ctx context.Context, userID string, role string) (*domain.User, error) {
	if role == "" {
		return nil, fmt.Errorf("%w: role is required", domain.ErrInvalidInput)
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	user, err := s.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return user, nil
}

// seedUser describes one demo account created on first startup.
type seedUser struct {
	name     string
	email    string
	password string
	role     string
	gender   string
	address  string
	country  string
	phone    string
}

var seedUsers = []seedUser{
	{"Admin", "admin@example.com", "admin-password", domain.RoleAdmin, "other", "1 Ops Lane", "Netherlands", "+31 6 0000 0001"},
	{"Ann Harper", "ann@example.com", "ann-password", domain.RoleAdmin, "female", "12 Elm Street", "Canada", "+1 555 0102"},
	{"Bob Mercer", "bob@example.com", "bob-password", domain.RoleUser, "male", "9 Rue de Lyon", "France", ""},
	{"Carla Diaz", "carla@example.com", "carla-password", domain.RoleUser, "female", "", "", ""},
}

// Seed creates the demo accounts if the directory is empty. Idempotent:
// a non-empty directory is left as is.
func (s *DirectoryService) Seed(ctx context.Context, bcryptCost int) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		user := &domain.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
			Gender:       su.gender,
		}
		if su.address != "" {
			user.Address = &su.address
		}
		if su.country != "" {
			user.Country = &su.country
		}
		if su.phone != "" {
			user.PhoneNumber = &su.phone
		}

		if err := s.users.Create(ctx, user); err != nil {
			return fmt.Errorf("create seed user %s: %w", su.email, err)
		}
	}

	return nil
}
