package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
)

var (
	regularUser = Principal{ID: 1, Role: model.RoleUser, IsActive: true}
	otherUser   = Principal{ID: 2, Role: model.RoleUser, IsActive: true}
	adminUser   = Principal{ID: 9, Role: model.RoleAdmin, IsActive: true}
)

func TestCanCreateAd(t *testing.T) {
	assert.True(t, CanCreateAd(regularUser).Allowed)
	assert.True(t, CanCreateAd(adminUser).Allowed)
}

func TestCanDeleteAd(t *testing.T) {
	ad := &model.Ad{ID: 10, UserID: 1}

	tests := []struct {
		name      string
		principal Principal
		ad        *model.Ad
		allowed   bool
		reason    Reason
	}{
		{"owner may delete", regularUser, ad, true, ""},
		{"non-owner denied", otherUser, ad, false, ReasonForbiddenOwnership},
		// Admins have no delete override on ads; only ownership counts.
		{"admin denied despite role", adminUser, ad, false, ReasonForbiddenOwnership},
		{"missing ad", regularUser, nil, false, ReasonNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanDeleteAd(tt.principal, tt.ad)
			assert.Equal(t, tt.allowed, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestCanModerateAd(t *testing.T) {
	assert.True(t, CanModerateAd(adminUser).Allowed)

	d := CanModerateAd(regularUser)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonForbiddenRole, d.Reason)
}

func TestCanCreateReview(t *testing.T) {
	ad := &model.Ad{ID: 10, UserID: 2}

	tests := []struct {
		name        string
		ad          *model.Ad
		rating      int
		hasExisting bool
		allowed     bool
		reason      Reason
	}{
		{"valid first review", ad, 5, false, true, ""},
		{"lowest valid rating", ad, 1, false, true, ""},
		{"rating below range", ad, 0, false, false, ReasonInvalidRating},
		{"rating above range", ad, 6, false, false, ReasonInvalidRating},
		{"duplicate with valid rating", ad, 3, true, false, ReasonDuplicate},
		// The bound check runs first, so an out-of-range rating on an
		// already-reviewed ad reports the rating problem.
		{"duplicate with invalid rating", ad, 7, true, false, ReasonInvalidRating},
		{"missing ad", nil, 3, false, false, ReasonNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanCreateReview(regularUser, tt.ad, tt.rating, tt.hasExisting)
			assert.Equal(t, tt.allowed, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestCanCreateComplaint(t *testing.T) {
	ad := &model.Ad{ID: 10, UserID: 2}

	assert.True(t, CanCreateComplaint(regularUser, ad, false).Allowed)

	d := CanCreateComplaint(regularUser, ad, true)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonDuplicate, d.Reason)

	d = CanCreateComplaint(regularUser, nil, false)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotFound, d.Reason)
}

func TestAdminOnlyChecks(t *testing.T) {
	for _, check := range []struct {
		name string
		fn   func(Principal) Decision
	}{
		{"CanListComplaints", CanListComplaints},
		{"CanChangeUserRole", CanChangeUserRole},
	} {
		t.Run(check.name, func(t *testing.T) {
			assert.True(t, check.fn(adminUser).Allowed)

			d := check.fn(regularUser)
			assert.False(t, d.Allowed)
			assert.Equal(t, ReasonForbiddenRole, d.Reason)
		})
	}
}
