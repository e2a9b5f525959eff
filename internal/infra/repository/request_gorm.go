package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agroconnect/agroconnect-api/internal/models"
)

type RequestGormRepository struct {
	db *gorm.DB
}

func NewRequestGormRepository(db *gorm.DB) *RequestGormRepository {
	return &RequestGormRepository{db: db}
}

func (r *RequestGormRepository) GetResource(
	ctx context.Context,
	id uint,
) (*models.Resource, error) {

	var res models.Resource
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *RequestGormRepository) UpdateResource(
	ctx context.Context,
	res *models.Resource,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *RequestGormRepository) CreateRequest(
	ctx context.Context,
	req *models.ResourceRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestGormRepository) GetRequest(
	ctx context.Context,
	id uint,
) (*models.ResourceRequest, error) {

	var req models.ResourceRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestGormRepository) UpdateRequest(
	ctx context.Context,
	req *models.ResourceRequest,
) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *RequestGormRepository) ListRequestsForOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.ResourceRequest, error) {

	var requests []models.ResourceRequest
	err := r.db.WithContext(ctx).
		Preload("Resource").
		Preload("Requester").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&requests).Error

	return requests, err
}
