package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DehBarca/ordernotify/internal/dispatch"
	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
	"github.com/DehBarca/ordernotify/internal/export"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	engine   *dispatch.Engine
	exporter *export.ExcelWriter
	logger   Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(engine *dispatch.Engine, exporter *export.ExcelWriter, logger Logger) *Handlers {
	return &Handlers{
		engine:   engine,
		exporter: exporter,
		logger:   logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CustomerPayload carries the recipient in dispatch requests
type CustomerPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DeviceToken string `json:"device_token,omitempty"`
}

// ItemPayload carries one order line item
type ItemPayload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// DispatchRequest is the body of POST /api/orders/dispatch. Order
// field validation is left to the engine's validator chain so clients
// get the chain's failure reasons.
type DispatchRequest struct {
	OrderID  string          `json:"order_id"`
	Customer CustomerPayload `json:"customer"`
	Total    float64         `json:"total"`
	Items    []ItemPayload   `json:"items,omitempty"`
	Channels []string        `json:"channels" binding:"required"`
}

func (r *DispatchRequest) toOrder() *entity.Order {
	addresses := make(map[channel.Kind]string)
	if r.Customer.Email != "" {
		addresses[channel.KindEmail] = r.Customer.Email
	}
	if r.Customer.Phone != "" {
		addresses[channel.KindSMS] = r.Customer.Phone
	}
	if r.Customer.DeviceToken != "" {
		addresses[channel.KindPush] = r.Customer.DeviceToken
	}

	items := make([]entity.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entity.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return &entity.Order{
		ID: r.OrderID,
		Customer: entity.Customer{
			Name:      r.Customer.Name,
			Addresses: addresses,
		},
		Total: r.Total,
		Items: items,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// DispatchOrder handles POST /api/orders/dispatch
func (h *Handlers) DispatchOrder(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid dispatch request", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	kinds := make([]channel.Kind, 0, len(req.Channels))
	for _, name := range req.Channels {
		kinds = append(kinds, channel.Kind(name))
	}

	results, err := h.engine.Dispatch(c.Request.Context(), req.toOrder(), kinds)
	if err != nil {
		var validationErr *dispatch.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, Response{
				Success: false,
				Error:   validationErr.Reason,
			})
			return
		}

		h.logger.Error("Dispatch failed", "order_id", req.OrderID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "dispatch failed",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    results,
	})
}

// ListChannels handles GET /api/channels
func (h *Handlers) ListChannels(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    h.engine.Registry().Kinds(),
	})
}

// ListHistory handles GET /api/history
func (h *Handlers) ListHistory(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    h.engine.History().All(),
	})
}

// ExportHistory handles GET /api/history/export
func (h *Handlers) ExportHistory(c *gin.Context) {
	data, err := h.exporter.HistoryBytes(h.engine.History().All())
	if err != nil {
		h.logger.Error("History export failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "export failed",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="dispatch_history.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
