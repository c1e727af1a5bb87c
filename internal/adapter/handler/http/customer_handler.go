package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	logger       *zap.Logger
	customerRepo repository.CustomerRepository
	cardRepo     repository.CardRepository
	saleRepo     repository.CustomerSubscriptionRepository
}

func NewCustomerHandler(logger *zap.Logger, customerRepo repository.CustomerRepository, cardRepo repository.CardRepository, saleRepo repository.CustomerSubscriptionRepository) *CustomerHandler {
	return &CustomerHandler{
		logger:       logger,
		customerRepo: customerRepo,
		cardRepo:     cardRepo,
		saleRepo:     saleRepo,
	}
}

// Dashboard lists enabled customers, optionally filtered by name fragment and
// training operator.
func (h *CustomerHandler) Dashboard(c echo.Context) error {
	var filter repository.DashboardFilter

	if name := c.QueryParam("customer_name"); name != "" {
		filter.CustomerName = &name
	}
	if raw := c.QueryParam("training_operator_id"); raw != "" {
		operatorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "training_operator_id must be an integer",
				"code":  "INVALID_FILTER",
			})
		}
		filter.TrainingOperatorId = &operatorID
	}

	customers, err := h.customerRepo.Dashboard(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list dashboard customers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list customers",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"customers": customers,
		"count":     len(customers),
	})
}

// Detail returns one customer with its active card and running subscriptions.
func (h *CustomerHandler) Detail(c echo.Context) error {
	idWinC, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Customer id must be an integer",
			"code":  "INVALID_ID",
		})
	}

	ctx := c.Request().Context()

	customer, err := h.customerRepo.GetByIdWinC(ctx, idWinC)
	if err != nil {
		h.logger.Error("Failed to get customer",
			zap.Int64("id_winc", idWinC),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get customer",
		})
	}
	if customer == nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Customer not found",
			"code":  "CUSTOMER_NOT_FOUND",
		})
	}

	card, err := h.cardRepo.GetActiveForCustomer(ctx, customer.IdWinC)
	if err != nil {
		h.logger.Error("Failed to get active card",
			zap.Int64("id_winc", idWinC),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get active card",
		})
	}

	sales, err := h.saleRepo.GetActiveForCustomer(ctx, customer.IdWinC, time.Now())
	if err != nil {
		h.logger.Error("Failed to get customer subscriptions",
			zap.Int64("id_winc", idWinC),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get subscriptions",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"customer":      customer,
		"active_card":   card,
		"subscriptions": sales,
	})
}
