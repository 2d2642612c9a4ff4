package screen_test

import (
	"errors"
	"testing"

	"github.com/msomdec/user-directory/internal/domain"
	"github.com/msomdec/user-directory/internal/screen"
)

// atMostOneOpen fails the test if both dialogs report visible.
func atMostOneOpen(t *testing.T, o *screen.Orchestrator) {
	t.Helper()
	if o.DetailVisible() && o.EditVisible() {
		t.Fatal("both dialogs report visible at once")
	}
}

func TestOrchestrator_FullTransitionSequence(t *testing.T) {
	o := screen.NewOrchestrator()
	atMostOneOpen(t, o)

	ann := domain.User{ID: 2, Name: "Ann", Email: "ann@example.com", Role: "admin"}

	if err := o.Select(ann); err != nil {
		t.Fatalf("Select: %v", err)
	}
	atMostOneOpen(t, o)
	if !o.DetailVisible() {
		t.Fatal("expected detail dialog open after select")
	}

	if err := o.RequestEdit(); err != nil {
		t.Fatalf("RequestEdit: %v", err)
	}
	atMostOneOpen(t, o)
	if !o.EditVisible() || o.DetailVisible() {
		t.Fatal("expected only edit dialog open after edit request")
	}

	draft, ok := o.Draft()
	if !ok {
		t.Fatal("expected draft while editing")
	}
	if draft.Name() != "Ann" {
		t.Fatalf("expected draft seeded from selection, got %s", draft.Name())
	}

	if err := o.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	atMostOneOpen(t, o)
	if !o.DetailVisible() {
		t.Fatal("expected detail dialog restored after cancel")
	}

	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	atMostOneOpen(t, o)
	if o.State() != screen.ModalClosed {
		t.Fatalf("expected closed state, got %v", o.State())
	}
}

func TestOrchestrator_CancelRestoresOriginalValues(t *testing.T) {
	o := screen.NewOrchestrator()
	bob := domain.User{ID: 1, Name: "Bob", Email: "bob@example.com"}

	if err := o.Select(bob); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := o.RequestEdit(); err != nil {
		t.Fatalf("RequestEdit: %v", err)
	}
	if err := o.EditDraft(func(d screen.Draft) screen.Draft {
		return d.WithName("Robert").WithEmail("robert@example.com")
	}); err != nil {
		t.Fatalf("EditDraft: %v", err)
	}
	if err := o.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	selected, ok := o.Selected()
	if !ok {
		t.Fatal("expected a selection after cancel")
	}
	if selected.Name != "Bob" || selected.Email != "bob@example.com" {
		t.Fatalf("expected original values after cancel, got %+v", selected)
	}
}

func TestOrchestrator_SaveSucceededShowsUpdatedUser(t *testing.T) {
	o := screen.NewOrchestrator()
	bob := domain.User{ID: 1, Name: "Bob", Email: "bob@example.com"}

	if err := o.Select(bob); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := o.RequestEdit(); err != nil {
		t.Fatalf("RequestEdit: %v", err)
	}
	if _, err := o.BeginSave(); err != nil {
		t.Fatalf("BeginSave: %v", err)
	}

	updated := domain.User{ID: 1, Name: "Robert", Email: "robert@example.com"}
	if err := o.SaveSucceeded(updated); err != nil {
		t.Fatalf("SaveSucceeded: %v", err)
	}

	atMostOneOpen(t, o)
	if !o.DetailVisible() {
		t.Fatal("expected detail dialog after successful save")
	}
	selected, _ := o.Selected()
	if selected.Name != "Robert" {
		t.Fatalf("expected updated values after save, got %+v", selected)
	}
	if o.Saving() {
		t.Fatal("expected in-flight latch released")
	}
}

func TestOrchestrator_SaveFailedKeepsDraft(t *testing.T) {
	o := screen.NewOrchestrator()
	bob := domain.User{ID: 1, Name: "Bob", Email: "bob@example.com"}

	if err := o.Select(bob); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := o.RequestEdit(); err != nil {
		t.Fatalf("RequestEdit: %v", err)
	}
	if err := o.EditDraft(func(d screen.Draft) screen.Draft {
		return d.WithName("Robert")
	}); err != nil {
		t.Fatalf("EditDraft: %v", err)
	}
	if _, err := o.BeginSave(); err != nil {
		t.Fatalf("BeginSave: %v", err)
	}
	if err := o.SaveFailed(); err != nil {
		t.Fatalf("SaveFailed: %v", err)
	}

	if !o.EditVisible() {
		t.Fatal("expected edit dialog still open after failed save")
	}
	draft, ok := o.Draft()
	if !ok || draft.Name() != "Robert" {
		t.Fatal("expected draft intact after failed save")
	}
	if o.Saving() {
		t.Fatal("expected in-flight latch released for explicit re-submission")
	}
}

func TestOrchestrator_DuplicateSaveRejected(t *testing.T) {
	o := screen.NewOrchestrator()
	if err := o.Select(domain.User{ID: 1, Name: "Bob"}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := o.RequestEdit(); err != nil {
		t.Fatalf("RequestEdit: %v", err)
	}

	if _, err := o.BeginSave(); err != nil {
		t.Fatalf("first BeginSave: %v", err)
	}
	if _, err := o.BeginSave(); !errors.Is(err, screen.ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}
}

func TestOrchestrator_InFlightSaveCannotBeAborted(t *testing.T) {
	o := screen.NewOrchestrator()
	if err := o.Select(domain.User{ID: 1, Name: "Bob"}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := o.RequestEdit(); err != nil {
		t.Fatalf("RequestEdit: %v", err)
	}
	if _, err := o.BeginSave(); err != nil {
		t.Fatalf("BeginSave: %v", err)
	}

	if err := o.Cancel(); !errors.Is(err, screen.ErrSaveInFlight) {
		t.Fatalf("expected Cancel rejected while saving, got %v", err)
	}
	if err := o.Select(domain.User{ID: 2, Name: "Ann"}); !errors.Is(err, screen.ErrSaveInFlight) {
		t.Fatalf("expected Select rejected while saving, got %v", err)
	}
}

func TestOrchestrator_SelectReleasesPreviousDialog(t *testing.T) {
	o := screen.NewOrchestrator()
	if err := o.Select(domain.User{ID: 1, Name: "Bob"}); err != nil {
		t.Fatalf("first Select: %v", err)
	}
	if err := o.Select(domain.User{ID: 2, Name: "Ann"}); err != nil {
		t.Fatalf("second Select: %v", err)
	}

	atMostOneOpen(t, o)
	selected, _ := o.Selected()
	if selected.Name != "Ann" {
		t.Fatalf("expected new selection Ann, got %s", selected.Name)
	}
}

func TestOrchestrator_TransitionsInvalidOutsideTheirState(t *testing.T) {
	o := screen.NewOrchestrator()

	if err := o.RequestEdit(); !errors.Is(err, screen.ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition for edit while closed, got %v", err)
	}
	if err := o.Close(); !errors.Is(err, screen.ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition for close while closed, got %v", err)
	}
	if err := o.Cancel(); !errors.Is(err, screen.ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition for cancel while closed, got %v", err)
	}
	if _, err := o.BeginSave(); !errors.Is(err, screen.ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition for save while closed, got %v", err)
	}
}
