package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agroconnect/agroconnect-api/internal/audit"
	"github.com/agroconnect/agroconnect-api/internal/cache"
	"github.com/agroconnect/agroconnect-api/internal/httperr"
	"github.com/agroconnect/agroconnect-api/internal/httpresp"
	"github.com/agroconnect/agroconnect-api/internal/middleware"
	"github.com/agroconnect/agroconnect-api/internal/models"
	"github.com/agroconnect/agroconnect-api/internal/validators"
)

type ResourceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewResourceHandler(db *gorm.DB, cc *cache.Cache, audit *audit.Dispatcher) *ResourceHandler {
	return &ResourceHandler{db: db, cache: cc, audit: audit}
}

// --------- Requests ---------

type CreateResourceRequest struct {
	Name         string   `json:"name" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	PricePerDay  *float64 `json:"pricePerDay" binding:"required"`
	Description  string   `json:"description"`
	Availability string   `json:"availability"`
}

// --------- Views ---------

type resourceView struct {
	ID           uint      `json:"id"`
	OwnerID      uint      `json:"ownerId"`
	OwnerName    string    `json:"ownerName"`
	OwnerEmail   string    `json:"ownerEmail"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Availability string    `json:"availability"`
	PricePerDay  float64   `json:"pricePerDay"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

// --------- Handlers ---------

// List returns resources in every availability state; unlike crops there is
// no implicit status restriction.
func (h *ResourceHandler) List(c *gin.Context) {
	resType := c.Query("type")
	availability := c.Query("availability")
	maxPrice := c.Query("maxPrice")

	key := cache.ListKey(cache.ResourceListPrefix, map[string]string{
		"type":         resType,
		"availability": availability,
		"maxPrice":     maxPrice,
	})

	var cached []resourceView
	if ok, _ := h.cache.GetJSON(c.Request.Context(), key, &cached); ok {
		httpresp.OK(c, gin.H{"resources": cached})
		return
	}

	q := h.db.Model(&models.Resource{})

	if resType != "" {
		q = q.Where("type = ?", resType)
	}
	if availability != "" {
		q = q.Where("availability = ?", availability)
	}
	if maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			q = q.Where("price_per_day <= ?", v)
		}
	}

	var resources []models.Resource
	if err := q.
		Preload("Owner").
		Order("created_at DESC").
		Find(&resources).Error; err != nil {

		httperr.Internal(c, "Error fetching resources", err.Error())
		return
	}

	views := make([]resourceView, 0, len(resources))
	for i := range resources {
		views = append(views, newResourceView(&resources[i]))
	}

	_ = h.cache.SetJSON(c.Request.Context(), key, views)

	httpresp.OK(c, gin.H{"resources": views})
}

func (h *ResourceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil || user.Role != models.RoleFarmer {
		httperr.Forbidden(c, "Only farmers can create resource listings", "")
		return
	}

	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid resource data", err.Error())
		return
	}

	if err := validators.ValidateResourceType(req.Type); err != nil {
		httperr.BadRequest(c, "Invalid resource data", err.Error())
		return
	}
	if err := validators.ValidateNonNegative("pricePerDay", *req.PricePerDay); err != nil {
		httperr.BadRequest(c, "Invalid resource data", err.Error())
		return
	}

	availability := req.Availability
	if availability == "" {
		availability = models.AvailabilityAvailable
	}
	if err := validators.ValidateAvailability(availability); err != nil {
		httperr.BadRequest(c, "Invalid resource data", err.Error())
		return
	}

	resource := models.Resource{
		OwnerID:      userID,
		Name:         req.Name,
		Type:         req.Type,
		Availability: availability,
		PricePerDay:  *req.PricePerDay,
		Description:  req.Description,
	}

	if err := h.db.Create(&resource).Error; err != nil {
		httperr.Internal(c, "Error creating resource listing", err.Error())
		return
	}

	_ = h.cache.InvalidatePrefix(c.Request.Context(), cache.ResourceListPrefix)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "resource_created",
		Entity:   "resource",
		EntityID: &resource.ID,
	})

	resource.Owner = user
	httpresp.Created(c, gin.H{"resource": newResourceView(&resource)})
}

func newResourceView(res *models.Resource) resourceView {
	return resourceView{
		ID:           res.ID,
		OwnerID:      res.OwnerID,
		OwnerName:    res.Owner.FullName,
		OwnerEmail:   res.Owner.Email,
		Name:         res.Name,
		Type:         res.Type,
		Availability: res.Availability,
		PricePerDay:  res.PricePerDay,
		Description:  res.Description,
		CreatedAt:    res.CreatedAt,
	}
}
