package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agroconnect/agroconnect-api/internal/config"
	"github.com/agroconnect/agroconnect-api/internal/httperr"
	"github.com/agroconnect/agroconnect-api/internal/httpresp"
	"github.com/agroconnect/agroconnect-api/internal/middleware"
	"github.com/agroconnect/agroconnect-api/internal/models"
	"github.com/agroconnect/agroconnect-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid registration data", err.Error())
		return
	}

	if err := validators.ValidateUserRole(req.Role); err != nil {
		httperr.BadRequest(c, "Invalid registration data", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "Error creating user", err.Error())
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "User already exists with this email", "")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Error creating user", err.Error())
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// The unique index can still fire when two registrations race past
		// the count check; that is the same duplicate, not a server fault.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "User already exists with this email", "")
			return
		}
		httperr.Internal(c, "Error creating user", err.Error())
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Error creating user", err.Error())
		return
	}

	httpresp.Created(c, gin.H{
		"token": token,
		"user":  userView(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid login data", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "Invalid credentials", "")
			return
		}
		httperr.Internal(c, "Error during login", err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Invalid credentials", "")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Error during login", err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"token": token,
		"user":  userView(&user),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User not found", "")
			return
		}
		httperr.Internal(c, "Error fetching user", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"user": userView(&user)})
}

// --------- Views ---------

func userView(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"email":     u.Email,
		"fullName":  u.FullName,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
