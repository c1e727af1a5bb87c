package http

import (
	"errors"
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

type CardHandler struct {
	logger   *zap.Logger
	cardRepo repository.CardRepository
}

func NewCardHandler(logger *zap.Logger, cardRepo repository.CardRepository) *CardHandler {
	return &CardHandler{
		logger:   logger,
		cardRepo: cardRepo,
	}
}

type createCardRequest struct {
	CustomerId             int64  `json:"customer_id" validate:"required"`
	CustomerSubscriptionId int64  `json:"customer_subscription_id" validate:"required"`
	DateStart              string `json:"date_start" validate:"required,datetime=2006-01-02"`
	DurationWeek           int    `json:"duration_week" validate:"required,gt=1"`
}

// Create assigns a new training card; the previously active card of the
// customer is disabled inside the same transaction.
func (h *CardHandler) Create(c echo.Context) error {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
		})
	}

	var req createCardRequest
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

	card := &model.Card{
		CustomerId:             req.CustomerId,
		CustomerSubscriptionId: req.CustomerSubscriptionId,
		TrainingOperatorId:     user.IdWinC,
		DateStart:              dateStart,
		DateEnd:                dateStart.AddDate(0, 0, req.DurationWeek*7),
		DurationWeek:           req.DurationWeek,
		Enabled:                true,
	}

	if err := h.cardRepo.Create(c.Request().Context(), card); err != nil {
		h.logger.Error("Failed to create card",
			zap.Int64("customer_id", req.CustomerId),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create card",
		})
	}

	return c.JSON(http.StatusCreated, card)
}

// Reschedule flags a card as rescheduled.
func (h *CardHandler) Reschedule(c echo.Context) error {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Card id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	if err := h.cardRepo.Reschedule(c.Request().Context(), cardID); err != nil {
		if errors.Is(err, domainErrors.ErrCardNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Card not found",
				"code":  "CARD_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to reschedule card",
			zap.Int64("card_id", cardID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to reschedule card",
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// Undo reverts the last operation on a card.
func (h *CardHandler) Undo(c echo.Context) error {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Card id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	if err := h.cardRepo.Undo(c.Request().Context(), cardID); err != nil {
		if errors.Is(err, domainErrors.ErrCardNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Card not found",
				"code":  "CARD_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to undo card operation",
			zap.Int64("card_id", cardID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to undo card operation",
		})
	}

	return c.NoContent(http.StatusNoContent)
}
