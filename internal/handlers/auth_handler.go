package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barberflow/internal/audit"
	"github.com/BruksfildServices01/barberflow/internal/config"
	"github.com/BruksfildServices01/barberflow/internal/identity"
	"github.com/BruksfildServices01/barberflow/internal/models"
)

type AuthHandler struct {
	identity *identity.Manager
	audit    *audit.Dispatcher
	config   *config.Config
}

func NewAuthHandler(im *identity.Manager, ad *audit.Dispatcher, cfg *config.Config) *AuthHandler {
	return &AuthHandler{identity: im, audit: ad, config: cfg}
}

// --------- Requests ---------

type BarberRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type BarberLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ClientLoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterBarber(c *gin.Context) {
	var req BarberRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barber, err := h.identity.RegisterBarber(c.Request.Context(), req.Name, req.Phone, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.generateToken(barber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:   barber.ID,
		ActorRole: models.RoleBarber,
		Action:    "barber_registered",
		Entity:    "user",
		EntityID:  barber.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  userJSON(barber),
		"token": token,
	})
}

func (h *AuthHandler) LoginBarber(c *gin.Context) {
	var req BarberLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barber, err := h.identity.LoginBarber(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.generateToken(barber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(barber),
		"token": token,
	})
}

// LoginClient mints an ephemeral client identity; there is no client
// registry to check against.
func (h *AuthHandler) LoginClient(c *gin.Context) {
	var req ClientLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.identity.LoginClient(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.generateToken(client)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(client),
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.identity.Logout(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	user := h.identity.Current()
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"phone": user.Phone,
		"role":  user.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// userJSON never echoes the password back.
func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"phone": u.Phone,
		"role":  u.Role,
	}
}
