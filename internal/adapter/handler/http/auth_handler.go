package http

import (
	"errors"
	"net/http"

	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	domainErrors "github.com/gymlink/wellness-backend/internal/domain/errors"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"github.com/gymlink/wellness-backend/internal/middleware/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthHandler struct {
	logger         *zap.Logger
	jwtSecret      string
	authenticator  *wellness.Authenticator
	consultantRepo repository.ConsultantRepository
}

func NewAuthHandler(logger *zap.Logger, jwtSecret string, authenticator *wellness.Authenticator, consultantRepo repository.ConsultantRepository) *AuthHandler {
	return &AuthHandler{
		logger:         logger,
		jwtSecret:      jwtSecret,
		authenticator:  authenticator,
		consultantRepo: consultantRepo,
	}
}

type tokenRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Token authenticates a consultant against the wellness login and issues a
// session token. The consultant must already be mirrored locally and enabled.
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
			"code":  "VALIDATION_FAILED",
		})
	}

	consultant, err := h.consultantRepo.GetByEmail(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrConsultantNotFound) {
			h.logger.Warn("Login for unknown consultant", zap.String("username", req.Username))
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": "Invalid credentials",
				"code":  "INVALID_CREDENTIALS",
			})
		}
		h.logger.Error("Failed to look up consultant", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to authenticate",
		})
	}

	if err := h.authenticator.Verify(c.Request().Context(), req.Username, req.Password); err != nil {
		h.logger.Warn("Wellness login rejected credentials",
			zap.String("username", req.Username),
			zap.Error(err))
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	token, err := auth.CreateAccessToken(h.jwtSecret, req.Username, consultant.IdWinC, []string(consultant.Roles))
	if err != nil {
		h.logger.Error("Failed to issue access token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to issue token",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"token_type":   "bearer",
		"consultant": echo.Map{
			"id":      consultant.IdWinC,
			"name":    consultant.Name,
			"surname": consultant.Surname,
			"roles":   consultant.Roles,
		},
	})
}
