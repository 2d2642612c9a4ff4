package screen

import (
	"errors"

	"github.com/msomdec/user-directory/internal/domain"
)

// ModalState identifies which dialog, if any, is visible.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalDetail
	ModalEdit
)

var (
	// ErrBadTransition is returned when an operation is not valid in the
	// current modal state.
	ErrBadTransition = errors.New("invalid modal transition")
	// ErrSaveInFlight is returned when a save is attempted or the edit
	// dialog is dismissed while a previous save is still outstanding.
	ErrSaveInFlight = errors.New("save already in flight")
)

// Orchestrator sequences the detail and edit dialogs over a single
// selected user. At most one dialog is visible at any instant; every
// transition closes the previous dialog before the next one opens.
//
//	Closed --Select--> Detail --RequestEdit--> Edit
//	Detail --Close--> Closed
//	Edit --SaveSucceeded--> Detail (updated user)
//	Edit --Cancel--> Detail (original user)
type Orchestrator struct {
	state    ModalState
	selected domain.User
	draft    Draft
	saving   bool
}

// NewOrchestrator creates an orchestrator with no dialog open.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{state: ModalClosed}
}

// State returns the current modal state.
func (o *Orchestrator) State() ModalState {
	return o.state
}

// Selected returns the currently selected user, if any dialog holds one.
func (o *Orchestrator) Selected() (domain.User, bool) {
	if o.state == ModalClosed {
		return domain.User{}, false
	}
	return o.selected, true
}

// Draft returns the edit draft while the edit dialog is open.
func (o *Orchestrator) Draft() (Draft, bool) {
	if o.state != ModalEdit {
		return Draft{}, false
	}
	return o.draft, true
}

// Saving reports whether a save is outstanding.
func (o *Orchestrator) Saving() bool {
	return o.saving
}

// DetailVisible reports whether the detail dialog is open.
func (o *Orchestrator) DetailVisible() bool {
	return o.state == ModalDetail
}

// EditVisible reports whether the edit dialog is open.
func (o *Orchestrator) EditVisible() bool {
	return o.state == ModalEdit
}

// Select opens the detail dialog for the given user. Any dialog open
// for a previous selection is released first; an in-flight save blocks
// the switch so its result cannot land on the wrong user.
func (o *Orchestrator) Select(user domain.User) error {
	if o.saving {
		return ErrSaveInFlight
	}
	o.state = ModalDetail
	o.selected = user
	o.draft = Draft{}
	return nil
}

// Close dismisses the detail dialog (backdrop click or explicit close).
func (o *Orchestrator) Close() error {
	if o.state != ModalDetail {
		return ErrBadTransition
	}
	o.state = ModalClosed
	o.selected = domain.User{}
	return nil
}

// RequestEdit closes the detail dialog and opens the edit dialog with a
// fresh draft copy of the selected user.
func (o *Orchestrator) RequestEdit() error {
	if o.state != ModalDetail {
		return ErrBadTransition
	}
	o.state = ModalEdit
	o.draft = NewDraft(o.selected)
	return nil
}

// EditDraft replaces the draft with the result of fn while the edit
// dialog is open. Rejected while a save is outstanding.
func (o *Orchestrator) EditDraft(fn func(Draft) Draft) error {
	if o.state != ModalEdit {
		return ErrBadTransition
	}
	if o.saving {
		return ErrSaveInFlight
	}
	o.draft = fn(o.draft)
	return nil
}

// Cancel discards the draft and restores the detail dialog with the
// original, pre-edit user. An in-flight save cannot be aborted.
func (o *Orchestrator) Cancel() error {
	if o.state != ModalEdit {
		return ErrBadTransition
	}
	if o.saving {
		return ErrSaveInFlight
	}
	o.state = ModalDetail
	o.draft = Draft{}
	return nil
}

// BeginSave latches the in-flight flag and returns the draft to submit.
// A second call before SaveSucceeded or SaveFailed is rejected, so two
// saves can never race on the same draft.
func (o *Orchestrator) BeginSave() (Draft, error) {
	if o.state != ModalEdit {
		return Draft{}, ErrBadTransition
	}
	if o.saving {
		return Draft{}, ErrSaveInFlight
	}
	o.saving = true
	return o.draft, nil
}

// SaveSucceeded folds the server-confirmed user back in: the edit
// dialog closes and the detail dialog reopens showing the update.
func (o *Orchestrator) SaveSucceeded(updated domain.User) error {
	if o.state != ModalEdit || !o.saving {
		return ErrBadTransition
	}
	o.saving = false
	o.state = ModalDetail
	o.selected = updated
	o.draft = Draft{}
	return nil
}

// SaveFailed releases the in-flight latch and keeps the edit dialog
// open with the draft intact. Retrying is up to the user.
func (o *Orchestrator) SaveFailed() error {
	if o.state != ModalEdit || !o.saving {
		return ErrBadTransition
	}
	o.saving = false
	return nil
}
