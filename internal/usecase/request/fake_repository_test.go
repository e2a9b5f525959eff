package request

import (
	"context"
	"errors"
	"sort"

	"github.com/agroconnect/agroconnect-api/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepository is an in-memory Repository for use case tests. It hands out
// copies so that use case mutations only become visible through Update calls,
// mirroring how the GORM implementation behaves.
type fakeRepository struct {
	resources map[uint]models.Resource
	requests  map[uint]models.ResourceRequest
	nextID    uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		resources: map[uint]models.Resource{},
		requests:  map[uint]models.ResourceRequest{},
		nextID:    1,
	}
}

func (f *fakeRepository) addResource(res models.Resource) uint {
	id := f.nextID
	f.nextID++
	res.ID = id
	f.resources[id] = res
	return id
}

func (f *fakeRepository) GetResource(_ context.Context, id uint) (*models.Resource, error) {
	res, ok := f.resources[id]
	if !ok {
		return nil, errNotFound
	}
	cp := res
	return &cp, nil
}

func (f *fakeRepository) UpdateResource(_ context.Context, res *models.Resource) error {
	if _, ok := f.resources[res.ID]; !ok {
		return errNotFound
	}
	f.resources[res.ID] = *res
	return nil
}

func (f *fakeRepository) CreateRequest(_ context.Context, req *models.ResourceRequest) error {
	req.ID = f.nextID
	f.nextID++
	f.requests[req.ID] = *req
	return nil
}

func (f *fakeRepository) GetRequest(_ context.Context, id uint) (*models.ResourceRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, errNotFound
	}
	cp := req
	return &cp, nil
}

func (f *fakeRepository) UpdateRequest(_ context.Context, req *models.ResourceRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return errNotFound
	}
	f.requests[req.ID] = *req
	return nil
}

func (f *fakeRepository) ListRequestsForOwner(_ context.Context, ownerID uint) ([]models.ResourceRequest, error) {
	var out []models.ResourceRequest
	for _, req := range f.requests {
		if req.OwnerID == ownerID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
