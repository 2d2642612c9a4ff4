package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/msomdec/user-directory/internal/domain"
	"github.com/msomdec/user-directory/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createUser(t *testing.T, repo *sqlite.UserRepository, name, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hash-" + email,
		Role:         domain.RoleUser,
		Gender:       "other",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create %s: %v", email, err)
	}
	return user
}

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	user := createUser(t, repo, "Test User", "test@example.com")

	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
	if user.UserID == "" {
		t.Fatal("expected external user_id to be assigned")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	createUser(t, repo, "User 1", "dup@example.com")

	err := repo.Create(context.Background(), &domain.User{
		Name:         "User 2",
		Email:        "dup@example.com",
		PasswordHash: "hash2",
		Role:         domain.RoleUser,
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	created := createUser(t, repo, "Ann", "ann@example.com")

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "ann@example.com" || got.UserID != created.UserID {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByID(ctx, 99999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	created := createUser(t, repo, "Ann", "ann@example.com")

	got, err := repo.GetByUserID(ctx, created.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}

	if _, err := repo.GetByUserID(ctx, "no-such-id"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_List_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	createUser(t, repo, "Cara", "cara@example.com")
	createUser(t, repo, "Abel", "abel@example.com")
	createUser(t, repo, "Beth", "beth@example.com")

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	// Insertion order, not alphabetical.
	if users[0].Name != "Cara" || users[1].Name != "Abel" || users[2].Name != "Beth" {
		t.Fatalf("expected insertion order, got %s, %s, %s", users[0].Name, users[1].Name, users[2].Name)
	}
}

func TestUserRepository_OptionalFieldsRoundtrip(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	address := "12 Elm Street"
	user := &domain.User{
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
		Gender:       "female",
		Address:      &address,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Address == nil || *got.Address != "12 Elm Street" {
		t.Fatal("expected address to roundtrip")
	}
	if got.Country != nil || got.PhoneNumber != nil {
		t.Fatal("expected unset optional fields to stay nil")
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	created := createUser(t, repo, "Bob", "bob@example.com")

	err := repo.UpdateProfile(ctx, domain.ProfileUpdate{
		ID:      created.ID,
		Name:    "Robert",
		Email:   "robert@example.com",
		Address: "9 Rue de Lyon",
		Country: "France",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Robert" || got.Email != "robert@example.com" {
		t.Fatalf("expected profile fields updated, got %+v", got)
	}
	if got.Address == nil || *got.Address != "9 Rue de Lyon" {
		t.Fatal("expected address updated")
	}
	if got.PasswordHash != created.PasswordHash {
		t.Fatal("expected password hash untouched")
	}
	if got.Role != created.Role {
		t.Fatal("expected role untouched")
	}
	if got.UserID != created.UserID {
		t.Fatal("expected user_id untouched")
	}
}

func TestUserRepository_UpdateProfile_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	err := repo.UpdateProfile(context.Background(), domain.ProfileUpdate{
		ID:      12345,
		Name:    "Ghost",
		Email:   "ghost@example.com",
		Address: "Nowhere",
		Country: "Nowhere",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_UpdateProfile_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	createUser(t, repo, "Ann", "ann@example.com")
	bob := createUser(t, repo, "Bob", "bob@example.com")

	err := repo.UpdateProfile(context.Background(), domain.ProfileUpdate{
		ID:      bob.ID,
		Name:    "Bob",
		Email:   "ann@example.com",
		Address: "Somewhere",
		Country: "Somewhere",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_UpdateRole(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	created := createUser(t, repo, "Ann", "ann@example.com")

	if err := repo.UpdateRole(ctx, created.UserID, "moderator"); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Role != "moderator" {
		t.Fatalf("expected role moderator, got %s", got.Role)
	}

	if err := repo.UpdateRole(ctx, "no-such-user", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Count(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 users, got %d", count)
	}

	createUser(t, repo, "Ann", "ann@example.com")
	createUser(t, repo, "Bob", "bob@example.com")

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 users, got %d", count)
	}
}
