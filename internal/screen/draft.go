package screen

import "github.com/msomdec/user-directory/internal/domain"

// Draft is an independent copy of a user being edited. Value semantics
// give the immutable-update discipline: each With* call returns a new
// Draft differing in exactly one field, so intermediate states stay
// inspectable and the source record is never touched before save.
type Draft struct {
	user domain.User
}

// NewDraft copies the given user into a fresh draft.
func NewDraft(user domain.User) Draft {
	return Draft{user: user}
}

func (d Draft) WithName(name string) Draft {
	d.user.Name = name
	return d
}

func (d Draft) WithEmail(email string) Draft {
	d.user.Email = email
	return d
}

func (d Draft) WithAddress(address string) Draft {
	d.user.Address = &address
	return d
}

func (d Draft) WithCountry(country string) Draft {
	d.user.Country = &country
	return d
}

// User returns the draft's current user value.
func (d Draft) User() domain.User {
	return d.user
}

// Name returns the draft name.
func (d Draft) Name() string { return d.user.Name }

// Email returns the draft email.
func (d Draft) Email() string { return d.user.Email }

// Address returns the draft address for display; absent is shown as "".
func (d Draft) Address() string {
	if d.user.Address == nil {
		return ""
	}
	return *d.user.Address
}

// Country returns the draft country for display; absent is shown as "".
func (d Draft) Country() string {
	if d.user.Country == nil {
		return ""
	}
	return *d.user.Country
}

// Profile builds the update payload the directory expects. Fields left
// absent on the draft stay empty and fail the directory's presence
// check; the draft never invents values for them.
func (d Draft) Profile() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		ID:      d.user.ID,
		Name:    d.user.Name,
		Email:   d.user.Email,
		Address: d.Address(),
		Country: d.Country(),
	}
}
