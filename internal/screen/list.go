// Package screen holds the per-admin UI state for the user directory:
// the filtered/sorted list view and the detail/edit modal state machine.
// Everything here is pure, synchronous, in-memory logic; persistence and
// transport live elsewhere.
package screen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/msomdec/user-directory/internal/domain"
)

// SortKey selects the field the user list is ordered by.
type SortKey string

const (
	SortByName SortKey = "name"
	SortByRole SortKey = "role"
)

// ListController holds the full user set, the active search text, and
// the active sort key, and derives the visible list from exactly those
// three inputs.
type ListController struct {
	users   []domain.User
	search  string
	sortKey SortKey
}

// NewListController creates a list controller sorted by name with no
// search filter.
func NewListController() *ListController {
	return &ListController{sortKey: SortByName}
}

// SetUsers replaces the backing user set. The given order becomes the
// stable fetch order that sorting breaks ties against.
func (c *ListController) SetUsers(users []domain.User) {
	c.users = slices.Clone(users)
}

// SetSearch replaces the active filter substring.
func (c *ListController) SetSearch(text string) {
	c.search = text
}

// SetSortKey replaces the active sort key. Unknown keys are rejected.
func (c *ListController) SetSortKey(key SortKey) error {
	switch key {
	case SortByName, SortByRole:
		c.sortKey = key
		return nil
	default:
		return fmt.Errorf("%w: unknown sort key %q", domain.ErrInvalidInput, string(key))
	}
}

// Search returns the active filter substring.
func (c *ListController) Search() string {
	return c.search
}

// SortKey returns the active sort key.
func (c *ListController) SortKey() SortKey {
	return c.sortKey
}

// Get returns the cached copy of the user with the given ID.
func (c *ListController) Get(id int64) (domain.User, bool) {
	for _, u := range c.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// ApplyUpdate replaces the cached copy of a single user after a
// confirmed edit. The list is never re-fetched for this.
func (c *ListController) ApplyUpdate(user domain.User) {
	for i := range c.users {
		if c.users[i].ID == user.ID {
			c.users[i] = user
			return
		}
	}
}

// Derived produces the visible projection: users whose name contains
// the search text (case-insensitive), ordered by the active sort key.
// The sort is stable, so equal keys keep their fetch order. It is
// recomputed from scratch on every call.
func (c *ListController) Derived() []domain.User {
	query := strings.ToLower(c.search)

	var out []domain.User
	for _, u := range c.users {
		if strings.Contains(strings.ToLower(u.Name), query) {
			out = append(out, u)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.User) int {
		switch c.sortKey {
		case SortByRole:
			return strings.Compare(a.Role, b.Role)
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})

	return out
}
