package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shopkit/commerce-api/internal/application"
	"github.com/shopkit/commerce-api/internal/domain/identity"
	"github.com/shopkit/commerce-api/internal/domain/repository"
	"github.com/shopkit/commerce-api/pkg/helpers"
	"github.com/shopkit/commerce-api/pkg/response"
	"github.com/shopkit/commerce-api/pkg/validation"
)

const sessionTTL = 24 * time.Hour

// AuthHandler is the HTTP boundary for the identity context. It translates
// requests into commands, maps domain failures onto status codes and issues
// tokens once authentication succeeds.
type AuthHandler struct {
	Register     *application.RegisterUserHandler
	Authenticate *application.AuthenticateUserHandler
	Users        repository.UserRepository
	JWT          *helpers.JWTManager
	RDB          *redis.Client
	Logger       *logrus.Logger
}

func NewAuthHandler(register *application.RegisterUserHandler, authenticate *application.AuthenticateUserHandler, users repository.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		Register:     register,
		Authenticate: authenticate,
		Users:        users,
		JWT:          jwt,
		RDB:          rdb,
		Logger:       logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HandleRegister POST /api/auth/register
func (h *AuthHandler) HandleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Register.Handle(c.Request.Context(), application.RegisterUserCommand{
		Email:         req.Email,
		PlainPassword: req.Password,
	})
	if err != nil {
		h.identityError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"userId": res.UserID,
		"email":  res.Email,
	}, "user registered successfully")
}

// HandleLogin POST /api/auth/login
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Authenticate.Handle(c.Request.Context(), application.AuthenticateUserCommand{
		Email:         req.Email,
		PlainPassword: req.Password,
	})
	if err != nil {
		h.identityError(c, err)
		return
	}

	access, exp, err := h.JWT.GenerateAccessToken(res.UserID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", res.UserID).Error("generate access token failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	if err := h.storeSession(c, res.UserID, req.Email); err != nil {
		h.Logger.WithError(err).WithField("user_id", res.UserID).Warn("store session failed")
	}

	response.Success(c, http.StatusOK, gin.H{
		"userId":    res.UserID,
		"token":     access,
		"expiresIn": int64(time.Until(exp).Seconds()),
	}, "authentication successful")
}

// HandleLogout POST /api/auth/logout (auth required)
func (h *AuthHandler) HandleLogout(c *gin.Context) {
	uid := c.GetInt64("userID")
	if err := h.RDB.Del(c.Request.Context(), helpers.SessionKey(uid)).Err(); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Warn("clear session failed")
	}
	response.Success[any](c, http.StatusOK, gin.H{"loggedOut": true}, "logged out")
}

// HandleMe GET /api/auth/me (auth required)
func (h *AuthHandler) HandleMe(c *gin.Context) {
	uid := c.GetInt64("userID")
	u, err := h.Users.FindByID(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("load user failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if u == nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"userId":   u.ID(),
		"email":    u.Email().String(),
		"isActive": u.IsActive(),
	}, "current user")
}

func (h *AuthHandler) storeSession(c *gin.Context, userID int64, email string) error {
	key := helpers.SessionKey(userID)
	pipe := h.RDB.Pipeline()
	pipe.HSet(c.Request.Context(), key, map[string]any{
		"user_id":    userID,
		"email":      email,
		"logged_in":  true,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(c.Request.Context(), key, sessionTTL)
	_, err := pipe.Exec(c.Request.Context())
	return err
}

// identityError maps identity failures onto the boundary status contract:
// duplicate email 409, credential mismatch 401, malformed input 422.
func (h *AuthHandler) identityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrUserAlreadyExists):
		response.Error[any](c, http.StatusConflict, "email already exists", nil)
	case errors.Is(err, identity.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, identity.ErrInvalidEmail), errors.Is(err, identity.ErrEmptyPasswordHash):
		response.Error[any](c, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error("identity use case failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
