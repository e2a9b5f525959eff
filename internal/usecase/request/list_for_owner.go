package request

import (
	"context"

	domain "github.com/agroconnect/agroconnect-api/internal/domain/request"
	"github.com/agroconnect/agroconnect-api/internal/models"
)

type ListRequestsForOwner struct {
	repo domain.Repository
}

func NewListRequestsForOwner(repo domain.Repository) *ListRequestsForOwner {
	return &ListRequestsForOwner{repo: repo}
}

func (uc *ListRequestsForOwner) Execute(
	ctx context.Context,
	ownerID uint,
) ([]models.ResourceRequest, error) {
	return uc.repo.ListRequestsForOwner(ctx, ownerID)
}
