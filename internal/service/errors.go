package service

import (
	apperrors "github.com/OlegMusatov3000/BlitzMarket/internal/errors"
	"github.com/OlegMusatov3000/BlitzMarket/internal/policy"
)

// denyError translates a policy deny into the domain error the handlers map
// to a status code. notFoundErr and duplicateErr vary per resource.
func denyError(d policy.Decision, notFoundErr, duplicateErr error) error {
	switch d.Reason {
	case policy.ReasonNotFound:
		return notFoundErr
	case policy.ReasonForbiddenRole:
		return apperrors.ErrForbiddenRole
	case policy.ReasonForbiddenOwnership:
		return apperrors.ErrForbiddenOwnership
	case policy.ReasonDuplicate:
		return duplicateErr
	case policy.ReasonInvalidRating:
		return apperrors.ErrInvalidRating
	default:
		return apperrors.ErrForbiddenRole
	}
}
