package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agroconnect/agroconnect-api/internal/cache"
	domain "github.com/agroconnect/agroconnect-api/internal/domain/request"
	"github.com/agroconnect/agroconnect-api/internal/httperr"
	"github.com/agroconnect/agroconnect-api/internal/httpresp"
	"github.com/agroconnect/agroconnect-api/internal/middleware"
	"github.com/agroconnect/agroconnect-api/internal/models"
	ucRequest "github.com/agroconnect/agroconnect-api/internal/usecase/request"
	"github.com/agroconnect/agroconnect-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type RequestHandler struct {
	createUC  *ucRequest.CreateRequest
	respondUC *ucRequest.RespondToRequest
	listUC    *ucRequest.ListRequestsForOwner
	cache     *cache.Cache
}

func NewRequestHandler(
	createUC *ucRequest.CreateRequest,
	respondUC *ucRequest.RespondToRequest,
	listUC *ucRequest.ListRequestsForOwner,
	cc *cache.Cache,
) *RequestHandler {
	return &RequestHandler{
		createUC:  createUC,
		respondUC: respondUC,
		listUC:    listUC,
		cache:     cc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateResourceRequestRequest struct {
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	OfferAmount *float64 `json:"offerAmount" binding:"required"`
	Message     string   `json:"message"`
}

type RespondRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

// parseDate accepts both full timestamps and bare dates, the two formats
// clients actually send.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ======================================================
// CREATE
// ======================================================

func (h *RequestHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	resourceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "Resource not found", "")
		return
	}

	var req CreateResourceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request data", err.Error())
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "Invalid request data", "startDate: invalid date")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "Invalid request data", "endDate: invalid date")
		return
	}

	if err := validators.ValidateNonNegative("offerAmount", *req.OfferAmount); err != nil {
		httperr.BadRequest(c, "Invalid request data", err.Error())
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucRequest.CreateRequestInput{
		ResourceID:  uint(resourceID),
		RequesterID: userID,
		StartDate:   start,
		EndDate:     end,
		OfferAmount: *req.OfferAmount,
		Message:     req.Message,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "resource_not_found"):
			httperr.NotFound(c, "Resource not found", "")
		case httperr.IsBusiness(err, "resource_unavailable"):
			httperr.BadRequest(c, "Resource is not available", "")
		default:
			httperr.Internal(c, "Error creating request", err.Error())
		}
		return
	}

	httpresp.Created(c, gin.H{
		"request": gin.H{
			"id":          created.ID,
			"resourceId":  created.ResourceID,
			"requesterId": created.RequesterID,
			"ownerId":     created.OwnerID,
			"startDate":   created.StartDate,
			"endDate":     created.EndDate,
			"status":      created.Status,
			"offerAmount": created.OfferAmount,
			"message":     created.Message,
			"createdAt":   created.CreatedAt,
		},
	})
}

// ======================================================
// RESPOND
// ======================================================

func (h *RequestHandler) Respond(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "Request not found", "")
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid status", err.Error())
		return
	}

	updated, err := h.respondUC.Execute(
		c.Request.Context(),
		uint(requestID),
		userID,
		domain.Status(req.Status),
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "request_not_found"):
			httperr.NotFound(c, "Request not found", "")
		case httperr.IsBusiness(err, "not_request_owner"):
			httperr.Forbidden(c, "Not authorized to respond to this request", "")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "Invalid status", "status: must be accepted or rejected")
		default:
			httperr.Internal(c, "Error responding to request", err.Error())
		}
		return
	}

	// Accepting flips the resource to in_use, so listing snapshots are stale.
	if updated.Status == string(domain.StatusAccepted) {
		_ = h.cache.InvalidatePrefix(c.Request.Context(), cache.ResourceListPrefix)
	}

	httpresp.OK(c, gin.H{
		"request": gin.H{
			"id":     updated.ID,
			"status": updated.Status,
		},
	})
}

// ======================================================
// LIST (owner side)
// ======================================================

func (h *RequestHandler) ListForOwner(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	requests, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "Error fetching requests", err.Error())
		return
	}

	views := make([]gin.H, 0, len(requests))
	for i := range requests {
		views = append(views, requestView(&requests[i]))
	}

	httpresp.OK(c, gin.H{"requests": views})
}

func requestView(req *models.ResourceRequest) gin.H {
	return gin.H{
		"id": req.ID,
		"resource": gin.H{
			"id":          req.Resource.ID,
			"name":        req.Resource.Name,
			"type":        req.Resource.Type,
			"pricePerDay": req.Resource.PricePerDay,
		},
		"requester": gin.H{
			"id":    req.Requester.ID,
			"name":  req.Requester.FullName,
			"email": req.Requester.Email,
		},
		"startDate":   req.StartDate,
		"endDate":     req.EndDate,
		"status":      req.Status,
		"offerAmount": req.OfferAmount,
		"message":     req.Message,
		"createdAt":   req.CreatedAt,
	}
}
