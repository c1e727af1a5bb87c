package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	domainErrors "github.com/gymlink/wellness-backend/internal/domain/errors"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/middleware/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PTHandler struct {
	logger       *zap.Logger
	trainingRepo repository.TrainingRepository
}

func NewPTHandler(logger *zap.Logger, trainingRepo repository.TrainingRepository) *PTHandler {
	return &PTHandler{
		logger:       logger,
		trainingRepo: trainingRepo,
	}
}

// ActivePackage returns the open PT package of a customer with its sessions
// and integration history.
func (h *PTHandler) ActivePackage(c echo.Context) error {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Customer id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	active, err := h.trainingRepo.GetActivePackage(c.Request().Context(), customerID)
	if err != nil {
		h.logger.Error("Failed to get active PT package",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get active package",
		})
	}
	if active == nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": domainErrors.ErrNoActivePackage.Error(),
			"code":  "NO_ACTIVE_PACKAGE",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"package":             active.Package,
		"sessions":            active.Sessions,
		"integration_history": active.IntegrationHistory,
		"total_session":       active.TotalSession,
		"session_number":      active.SessionNumber,
	})
}

// PackageHistory lists the completed PT packages of a customer.
func (h *PTHandler) PackageHistory(c echo.Context) error {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Customer id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	packages, err := h.trainingRepo.GetCompletedPackages(c.Request().Context(), customerID)
	if err != nil {
		h.logger.Error("Failed to list completed PT packages",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list packages",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"packages": packages,
		"count":    len(packages),
	})
}

type createPackageRequest struct {
	SessionPTTypeId int64  `json:"session_pt_type_id" validate:"required,gt=0"`
	DateStart       string `json:"date_start" validate:"required,datetime=2006-01-02"`
}

// CreatePackage opens a new PT package for a customer.
func (h *PTHandler) CreatePackage(c echo.Context) error {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Customer id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	var req createPackageRequest
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

	dateStart, err := time.Parse("2006-01-02", req.DateStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "date_start must be YYYY-MM-DD",
			"code":  "VALIDATION_FAILED",
		})
	}

	pt := &model.CustomerPT{
		CustomerId:      customerID,
		SessionPTTypeId: req.SessionPTTypeId,
		DateStart:       dateStart,
	}

	if err := h.trainingRepo.CreatePackage(c.Request().Context(), pt); err != nil {
		h.logger.Error("Failed to create PT package",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create package",
		})
	}

	return c.JSON(http.StatusCreated, pt)
}

type upgradePackageRequest struct {
	SessionPTTypeId int64  `json:"session_pt_type_id" validate:"required,gt=0"`
	SessionAdded    int    `json:"session_added" validate:"required,gt=0"`
	DateStart       string `json:"date_start" validate:"required,datetime=2006-01-02"`
}

// UpgradePackage adds sessions to an open package and switches its type.
func (h *PTHandler) UpgradePackage(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
		})
	}

	ptID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Package id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	var req upgradePackageRequest
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

	dateStart, err := time.Parse("2006-01-02", req.DateStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "date_start must be YYYY-MM-DD",
			"code":  "VALIDATION_FAILED",
		})
	}

	history := &model.CustomerPTHistory{
		CustomerPTId:       ptID,
		TrainingOperatorId: user.IdWinC,
		DateStart:          dateStart,
		SessionAdded:       req.SessionAdded,
	}

	if err := h.trainingRepo.UpgradePackage(c.Request().Context(), history, req.SessionPTTypeId); err != nil {
		h.logger.Error("Failed to upgrade PT package",
			zap.Int64("customer_pt_id", ptID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to upgrade package",
		})
	}

	return c.JSON(http.StatusCreated, history)
}

type createSessionRequest struct {
	DateStart string `json:"date_start" validate:"required,datetime=2006-01-02"`
}

// CreateSession records a performed session; the package is marked completed
// once the session count reaches its total.
func (h *PTHandler) CreateSession(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
		})
	}

	ptID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Package id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	var req createSessionRequest
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

	dateStart, err := time.Parse("2006-01-02", req.DateStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "date_start must be YYYY-MM-DD",
			"code":  "VALIDATION_FAILED",
		})
	}

	session := &model.SessionPT{
		CustomerPTId:       ptID,
		TrainingOperatorId: user.IdWinC,
		DateStart:          dateStart,
	}

	if err := h.trainingRepo.CreateSession(c.Request().Context(), session); err != nil {
		h.logger.Error("Failed to create PT session",
			zap.Int64("customer_pt_id", ptID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create session",
		})
	}

	return c.JSON(http.StatusCreated, session)
}

// DeleteSession removes a performed session and reopens the package.
func (h *PTHandler) DeleteSession(c echo.Context) error {
	ptID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Package id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	sessionID, err := strconv.ParseInt(c.Param("sessionId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Session id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	if err := h.trainingRepo.DeleteSession(c.Request().Context(), ptID, sessionID); err != nil {
		h.logger.Error("Failed to delete PT session",
			zap.Int64("customer_pt_id", ptID),
			zap.Int64("session_id", sessionID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete session",
		})
	}

	return c.NoContent(http.StatusNoContent)
}
