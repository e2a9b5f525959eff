package request

import (
	"context"
	"time"

	"github.com/agroconnect/agroconnect-api/internal/audit"
	domain "github.com/agroconnect/agroconnect-api/internal/domain/request"
	"github.com/agroconnect/agroconnect-api/internal/httperr"
	"github.com/agroconnect/agroconnect-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateRequestInput struct {
	ResourceID  uint
	RequesterID uint

	StartDate   time.Time
	EndDate     time.Time
	OfferAmount float64
	Message     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateRequest {
	return &CreateRequest{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRequest) Execute(
	ctx context.Context,
	in CreateRequestInput,
) (*models.ResourceRequest, error) {

	res, err := uc.repo.GetResource(ctx, in.ResourceID)
	if err != nil {
		return nil, httperr.ErrBusiness("resource_not_found")
	}

	if res.Availability != models.AvailabilityAvailable {
		return nil, httperr.ErrBusiness("resource_unavailable")
	}

	// Owner is denormalized from the resource; the resource itself is
	// untouched until the owner accepts.
	req := &models.ResourceRequest{
		ResourceID:  res.ID,
		RequesterID: in.RequesterID,
		OwnerID:     res.OwnerID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      string(domain.InitialStatus()),
		OfferAmount: in.OfferAmount,
		Message:     in.Message,
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequesterID,
		Action:   "request_created",
		Entity:   "resource_request",
		EntityID: &req.ID,
		Metadata: map[string]any{
			"resourceId":  res.ID,
			"offerAmount": in.OfferAmount,
		},
	})

	return req, nil
}
