// Package authz holds the single capability check consulted by every
// mutating operation. Authorship grants full control over content the
// actor created; spot ownership grants control over what happens on the
// owned spot (booking cancellation and visibility, image removal) but
// never over content authored by others.
package authz

import "github.com/google/uuid"

type Action string

const (
	ActionEdit        Action = "edit"
	ActionDelete      Action = "delete"
	ActionViewPrivate Action = "viewPrivate"
)

// Principal is the authenticated actor, supplied by the auth middleware
// after token verification. The engine trusts it.
type Principal struct {
	ID uuid.UUID
}

func (p Principal) IsZero() bool {
	return p.ID == uuid.Nil
}

// Resource describes the ownership facts CanAct needs: who authored the
// content, and who owns the spot it lives on. For spots themselves the
// two are the same user.
type Resource struct {
	AuthorID    uuid.UUID
	SpotOwnerID uuid.UUID

	// OwnerMayDelete marks resources the spot owner can remove even
	// though someone else authored them. True for bookings, false for
	// reviews.
	OwnerMayDelete bool
}

func CanAct(p Principal, r Resource, action Action) bool {
	if p.IsZero() {
		return false
	}

	switch action {
	case ActionEdit:
		return p.ID == r.AuthorID
	case ActionDelete:
		if p.ID == r.AuthorID {
			return true
		}
		return r.OwnerMayDelete && p.ID == r.SpotOwnerID
	case ActionViewPrivate:
		return p.ID == r.AuthorID || p.ID == r.SpotOwnerID
	default:
		return false
	}
}
