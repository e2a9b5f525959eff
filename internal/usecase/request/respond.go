package request

import (
	"context"

	"github.com/agroconnect/agroconnect-api/internal/audit"
	domain "github.com/agroconnect/agroconnect-api/internal/domain/request"
	"github.com/agroconnect/agroconnect-api/internal/httperr"
	"github.com/agroconnect/agroconnect-api/internal/models"
)

type RespondToRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRespondToRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RespondToRequest {
	return &RespondToRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RespondToRequest) Execute(
	ctx context.Context,
	requestID uint,
	callerID uint,
	next domain.Status,
) (*models.ResourceRequest, error) {

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	if req.OwnerID != callerID {
		return nil, httperr.ErrBusiness("not_request_owner")
	}

	if err := domain.CanRespond(next); err != nil {
		return nil, err
	}

	req.Status = string(next)
	if err := uc.repo.UpdateRequest(ctx, req); err != nil {
		return nil, err
	}

	// Accepting claims the resource. The request and resource writes are
	// independent: no transaction spans them, and the resource's current
	// availability is not re-checked, so concurrent accepts of two pending
	// requests on the same resource both go through (the second flip is
	// redundant). A resource deleted in the meantime is simply skipped.
	if next == domain.StatusAccepted {
		if res, err := uc.repo.GetResource(ctx, req.ResourceID); err == nil {
			res.Availability = models.AvailabilityInUse
			if err := uc.repo.UpdateResource(ctx, res); err != nil {
				return nil, err
			}
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "request_" + string(next),
		Entity:   "resource_request",
		EntityID: &req.ID,
	})

	return req, nil
}
