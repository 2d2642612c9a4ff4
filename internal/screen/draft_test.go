package screen_test

import (
	"testing"

	"github.com/msomdec/user-directory/internal/domain"
	"github.com/msomdec/user-directory/internal/screen"
)

func TestDraft_WithFieldReturnsNewValue(t *testing.T) {
	address := "12 Elm Street"
	source := domain.User{ID: 1, Name: "Ann", Email: "ann@example.com", Address: &address}

	d1 := screen.NewDraft(source)
	d2 := d1.WithName("Anne")

	if d1.Name() != "Ann" {
		t.Fatalf("expected original draft untouched, got %s", d1.Name())
	}
	if d2.Name() != "Anne" {
		t.Fatalf("expected new draft name Anne, got %s", d2.Name())
	}
	if d2.Email() != "ann@example.com" || d2.Address() != "12 Elm Street" {
		t.Fatal("expected untouched fields to carry over")
	}
	if source.Name != "Ann" {
		t.Fatal("expected source record untouched")
	}
}

func TestDraft_AbsentOptionalFieldsDisplayEmpty(t *testing.T) {
	d := screen.NewDraft(domain.User{ID: 1, Name: "Carla", Email: "carla@example.com"})

	if d.Address() != "" || d.Country() != "" {
		t.Fatalf("expected empty display for absent fields, got %q / %q", d.Address(), d.Country())
	}
	if d.User().Address != nil || d.User().Country != nil {
		t.Fatal("expected absent fields to stay absent, not become empty strings")
	}
}

func TestDraft_ProfileCarriesEditableFieldsOnly(t *testing.T) {
	country := "France"
	d := screen.NewDraft(domain.User{
		ID:           7,
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: "secret-hash",
		Role:         "user",
		Country:      &country,
	})
	d = d.WithAddress("9 Rue de Lyon")

	p := d.Profile()
	if p.ID != 7 || p.Name != "Bob" || p.Email != "bob@example.com" {
		t.Fatalf("unexpected payload identity fields: %+v", p)
	}
	if p.Address != "9 Rue de Lyon" || p.Country != "France" {
		t.Fatalf("unexpected payload address fields: %+v", p)
	}
}
