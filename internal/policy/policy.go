// Package policy centralizes the access-control decisions the HTTP handlers
// rely on. Every function is pure: it decides over already-fetched data and
// never touches the store, so the authorization contract is testable without
// the HTTP or persistence layers.
package policy

import "github.com/OlegMusatov3000/BlitzMarket/internal/model"

// Principal is the resolved calling identity, as extracted from a validated
// bearer token.
type Principal struct {
	ID       uint
	Role     model.RoleType
	IsActive bool
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// Reason tags a deny decision so handlers can map it to a transport status
// mechanically.
type Reason string

const (
	ReasonForbiddenRole      Reason = "FORBIDDEN_ROLE"
	ReasonForbiddenOwnership Reason = "FORBIDDEN_OWNERSHIP"
	ReasonDuplicate          Reason = "DUPLICATE"
	ReasonInvalidRating      Reason = "INVALID_RATING"
	ReasonNotFound           Reason = "NOT_FOUND"
)

// Decision is the outcome of a policy check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Allow returns an allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision tagged with reason.
func Deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// CanCreateAd allows any authenticated principal to place an ad.
func CanCreateAd(p Principal) Decision {
	return Allow()
}

// CanDeleteAd allows only the ad owner to delete it. Admins get no override
// here; that asymmetry with comment deletion is a pending product decision,
// not an oversight.
func CanDeleteAd(p Principal, ad *model.Ad) Decision {
	if ad == nil {
		return Deny(ReasonNotFound)
	}
	if p.ID != ad.UserID {
		return Deny(ReasonForbiddenOwnership)
	}
	return Allow()
}

// CanModerateAd gates admin-only ad moderation: type reassignment and
// comment deletion.
func CanModerateAd(p Principal) Decision {
	if !p.IsAdmin() {
		return Deny(ReasonForbiddenRole)
	}
	return Allow()
}

// CanCreateReview decides review submission. The rating bound is checked
// before the duplicate flag so an out-of-range rating never needs a store
// lookup; for valid ratings an existing review wins.
func CanCreateReview(p Principal, ad *model.Ad, rating int, hasExisting bool) Decision {
	if ad == nil {
		return Deny(ReasonNotFound)
	}
	if rating < model.RatingMin || rating > model.RatingMax {
		return Deny(ReasonInvalidRating)
	}
	if hasExisting {
		return Deny(ReasonDuplicate)
	}
	return Allow()
}

// CanCreateComplaint decides complaint submission: one per (author, ad).
func CanCreateComplaint(p Principal, ad *model.Ad, hasExisting bool) Decision {
	if ad == nil {
		return Deny(ReasonNotFound)
	}
	if hasExisting {
		return Deny(ReasonDuplicate)
	}
	return Allow()
}

// CanListComplaints restricts the complaint queue to admins.
func CanListComplaints(p Principal) Decision {
	if !p.IsAdmin() {
		return Deny(ReasonForbiddenRole)
	}
	return Allow()
}

// CanChangeUserRole restricts role and active-flag changes to admins.
func CanChangeUserRole(p Principal) Decision {
	if !p.IsAdmin() {
		return Deny(ReasonForbiddenRole)
	}
	return Allow()
}
