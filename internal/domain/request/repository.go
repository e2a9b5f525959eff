package request

import (
	"context"

	"github.com/agroconnect/agroconnect-api/internal/models"
)

type Repository interface {
	// -------- Resource --------
	GetResource(
		ctx context.Context,
		id uint,
	) (*models.Resource, error)

	UpdateResource(
		ctx context.Context,
		res *models.Resource,
	) error

	// -------- Request --------
	CreateRequest(
		ctx context.Context,
		req *models.ResourceRequest,
	) error

	GetRequest(
		ctx context.Context,
		id uint,
	) (*models.ResourceRequest, error)

	UpdateRequest(
		ctx context.Context,
		req *models.ResourceRequest,
	) error

	// ListRequestsForOwner returns the owner's requests newest-first with
	// Resource and Requester loaded for read-side joining.
	ListRequestsForOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.ResourceRequest, error)
}
