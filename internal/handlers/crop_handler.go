package handlers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agroconnect/agroconnect-api/internal/audit"
	"github.com/agroconnect/agroconnect-api/internal/cache"
	"github.com/agroconnect/agroconnect-api/internal/geo"
	"github.com/agroconnect/agroconnect-api/internal/httperr"
	"github.com/agroconnect/agroconnect-api/internal/httpresp"
	"github.com/agroconnect/agroconnect-api/internal/middleware"
	"github.com/agroconnect/agroconnect-api/internal/models"
	"github.com/agroconnect/agroconnect-api/internal/validators"
)

type CropHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewCropHandler(db *gorm.DB, cc *cache.Cache, audit *audit.Dispatcher) *CropHandler {
	return &CropHandler{db: db, cache: cc, audit: audit}
}

// --------- Requests ---------

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type CreateCropRequest struct {
	Name        string           `json:"name" binding:"required"`
	Quantity    *float64         `json:"quantity" binding:"required"`
	Unit        string           `json:"unit" binding:"required"`
	Price       *float64         `json:"price" binding:"required"`
	Location    *LocationRequest `json:"location" binding:"required"`
	Description string           `json:"description"`
}

type UpdateCropStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Views ---------

type cropView struct {
	ID          uint      `json:"id"`
	FarmerID    uint      `json:"farmerId"`
	FarmerName  string    `json:"farmerName"`
	FarmerEmail string    `json:"farmerEmail"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	Location    locView   `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	Distance    *float64  `json:"distance,omitempty"`
}

type locView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// --------- Handlers ---------

// List returns available crops, price-filtered, newest-first. When both
// latitude and longitude are supplied the result is annotated with the
// haversine distance to each crop and re-sorted nearest-first.
func (h *CropHandler) List(c *gin.Context) {
	minPrice := c.Query("minPrice")
	maxPrice := c.Query("maxPrice")
	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")

	key := cache.ListKey(cache.CropListPrefix, map[string]string{
		"minPrice":  minPrice,
		"maxPrice":  maxPrice,
		"latitude":  latStr,
		"longitude": lonStr,
	})

	var cached []cropView
	if ok, _ := h.cache.GetJSON(c.Request.Context(), key, &cached); ok {
		httpresp.OK(c, gin.H{"crops": cached})
		return
	}

	// Listings that are not available are invisible here regardless of
	// the price filter.
	q := h.db.Where("status = ?", models.CropStatusAvailable)

	if minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			q = q.Where("price >= ?", v)
		}
	}
	if maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			q = q.Where("price <= ?", v)
		}
	}

	var crops []models.Crop
	if err := q.
		Preload("Farmer").
		Order("created_at DESC").
		Find(&crops).Error; err != nil {

		httperr.Internal(c, "Error fetching crops", err.Error())
		return
	}

	views := make([]cropView, 0, len(crops))
	for i := range crops {
		views = append(views, newCropView(&crops[i]))
	}

	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr == nil && lonErr == nil {
			for i := range views {
				d := geo.Distance(lat, lon, views[i].Location.Latitude, views[i].Location.Longitude)
				views[i].Distance = &d
			}
			sort.SliceStable(views, func(i, j int) bool {
				return *views[i].Distance < *views[j].Distance
			})
		}
	}

	_ = h.cache.SetJSON(c.Request.Context(), key, views)

	httpresp.OK(c, gin.H{"crops": views})
}

func (h *CropHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil || user.Role != models.RoleFarmer {
		httperr.Forbidden(c, "Only farmers can create crop listings", "")
		return
	}

	var req CreateCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid crop data", err.Error())
		return
	}

	if err := validators.ValidateCoordinates(*req.Location.Latitude, *req.Location.Longitude); err != nil {
		httperr.BadRequest(c, "Invalid crop data", err.Error())
		return
	}
	if err := validators.ValidateNonNegative("quantity", *req.Quantity); err != nil {
		httperr.BadRequest(c, "Invalid crop data", err.Error())
		return
	}
	if err := validators.ValidateNonNegative("price", *req.Price); err != nil {
		httperr.BadRequest(c, "Invalid crop data", err.Error())
		return
	}

	crop := models.Crop{
		FarmerID:    userID,
		Name:        req.Name,
		Quantity:    *req.Quantity,
		Unit:        req.Unit,
		Price:       *req.Price,
		Latitude:    *req.Location.Latitude,
		Longitude:   *req.Location.Longitude,
		Description: req.Description,
		Status:      models.CropStatusAvailable,
	}

	if err := h.db.Create(&crop).Error; err != nil {
		httperr.Internal(c, "Error creating crop listing", err.Error())
		return
	}

	_ = h.cache.InvalidatePrefix(c.Request.Context(), cache.CropListPrefix)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "crop_created",
		Entity:   "crop",
		EntityID: &crop.ID,
	})

	crop.Farmer = user
	httpresp.Created(c, gin.H{"crop": newCropView(&crop)})
}

func (h *CropHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "Crop not found", "")
		return
	}

	var crop models.Crop
	if err := h.db.First(&crop, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Crop not found", "")
			return
		}
		httperr.Internal(c, "Error updating crop status", err.Error())
		return
	}

	if crop.FarmerID != userID {
		httperr.Forbidden(c, "Not authorized to update this crop", "")
		return
	}

	var req UpdateCropStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid status", err.Error())
		return
	}
	if err := validators.ValidateCropStatus(req.Status); err != nil {
		httperr.BadRequest(c, "Invalid status", err.Error())
		return
	}

	// No transition graph: any valid status overwrites the current one.
	crop.Status = req.Status
	if err := h.db.Save(&crop).Error; err != nil {
		httperr.Internal(c, "Error updating crop status", err.Error())
		return
	}

	_ = h.cache.InvalidatePrefix(c.Request.Context(), cache.CropListPrefix)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "crop_status_updated",
		Entity:   "crop",
		EntityID: &crop.ID,
		Metadata: map[string]any{"status": crop.Status},
	})

	httpresp.OK(c, gin.H{
		"crop": gin.H{
			"id":     crop.ID,
			"status": crop.Status,
		},
	})
}

func newCropView(crop *models.Crop) cropView {
	return cropView{
		ID:          crop.ID,
		FarmerID:    crop.FarmerID,
		FarmerName:  crop.Farmer.FullName,
		FarmerEmail: crop.Farmer.Email,
		Name:        crop.Name,
		Quantity:    crop.Quantity,
		Unit:        crop.Unit,
		Price:       crop.Price,
		Location: locView{
			Latitude:  crop.Latitude,
			Longitude: crop.Longitude,
		},
		Description: crop.Description,
		Status:      crop.Status,
		CreatedAt:   crop.CreatedAt,
	}
}
