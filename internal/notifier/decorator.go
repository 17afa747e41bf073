package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

// Retrying wraps a handler and retries transport failures up to a
// configured number of attempts. The wrapped handler's kind is
// preserved so the registry treats it like the handler it wraps.
type Retrying struct {
	inner       Handler
	maxAttempts int
	logger      *zap.Logger
}

// NewRetrying wraps a handler with retry-on-failure. maxAttempts is
// the total number of tries, not the number of retries after the first.
func NewRetrying(inner Handler, maxAttempts int, logger *zap.Logger) *Retrying {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Retrying{
		inner:       inner,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (h *Retrying) Kind() channel.Kind {
	return h.inner.Kind()
}

func (h *Retrying) Send(ctx context.Context, customer entity.Customer, orderID string, total float64) (*entity.NotificationResult, error) {
	var lastErr error

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		result, err := h.inner.Send(ctx, customer, orderID, total)
		if err == nil {
			return result, nil
		}

		lastErr = err
		h.logger.Warn("Send attempt failed",
			zap.String("kind", h.Kind().String()),
			zap.String("order_id", orderID),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", h.maxAttempts),
			zap.Error(err))
	}

	return nil, fmt.Errorf("send failed after %d attempts: %w", h.maxAttempts, lastErr)
}

// Logging wraps a handler with structured logs around each send
type Logging struct {
	inner  Handler
	logger *zap.Logger
}

// NewLogging wraps a handler with send logging
func NewLogging(inner Handler, logger *zap.Logger) *Logging {
	return &Logging{
		inner:  inner,
		logger: logger,
	}
}

func (h *Logging) Kind() channel.Kind {
	return h.inner.Kind()
}

func (h *Logging) Send(ctx context.Context, customer entity.Customer, orderID string, total float64) (*entity.NotificationResult, error) {
	h.logger.Info("Sending notification",
		zap.String("kind", h.Kind().String()),
		zap.String("order_id", orderID))

	result, err := h.inner.Send(ctx, customer, orderID, total)
	if err != nil {
		h.logger.Error("Notification send failed",
			zap.String("kind", h.Kind().String()),
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, err
	}

	h.logger.Info("Notification sent",
		zap.String("kind", h.Kind().String()),
		zap.String("order_id", orderID),
		zap.String("recipient", result.Recipient))

	return result, nil
}
