package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
	"github.com/DehBarca/ordernotify/internal/history"
	"github.com/DehBarca/ordernotify/internal/notifier"
	"github.com/DehBarca/ordernotify/internal/validation"
	"go.uber.org/zap"
)

// mockLogger implements Logger for testing
type mockLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (m *mockLogger) Info(msg string, keysAndValues ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, msg)
}

func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func (m *mockLogger) HasError(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.errors {
		if e == msg {
			return true
		}
	}
	return false
}

// stubHandler is a send-capable handler with scripted behavior
type stubHandler struct {
	kind  channel.Kind
	fail  bool
	calls int
}

func (h *stubHandler) Kind() channel.Kind {
	return h.kind
}

func (h *stubHandler) Send(ctx context.Context, customer entity.Customer, orderID string, total float64) (*entity.NotificationResult, error) {
	h.calls++
	if h.fail {
		return nil, errors.New("send failed")
	}
	message := fmt.Sprintf("order %s confirmed", orderID)
	return entity.NewResult(h.kind, orderID, customer.Address(h.kind), message), nil
}

// recordingListener captures every update in order
type recordingListener struct {
	name    string
	results []*entity.NotificationResult
	order   *[]string
}

func (l *recordingListener) Update(result *entity.NotificationResult) {
	l.results = append(l.results, result)
	if l.order != nil {
		*l.order = append(*l.order, l.name)
	}
}

func validOrder() *entity.Order {
	return &entity.Order{
		ID: "O1",
		Customer: entity.Customer{
			Name: "Ana",
			Addresses: map[channel.Kind]string{
				channel.KindEmail: "a@x.com",
				channel.KindSMS:   "+34600123456",
			},
		},
		Total: 10,
	}
}

func newTestEngine(handlers ...*stubHandler) *Engine {
	registry := notifier.NewRegistry(zap.NewNop())
	for _, h := range handlers {
		registry.Register(h.kind, h)
	}
	return NewEngine(validation.DefaultChain(), registry, history.NewLog())
}

func TestDispatch_RejectedOrderNeverReachesHandlers(t *testing.T) {
	email := &stubHandler{kind: channel.KindEmail}
	engine := newTestEngine(email)

	order := validOrder()
	order.ID = ""

	results, err := engine.Dispatch(context.Background(), order, []channel.Kind{channel.KindEmail})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Reason != validation.ReasonIdentifierMissing {
		t.Errorf("reason = %q, want %q", validationErr.Reason, validation.ReasonIdentifierMissing)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
	if email.calls != 0 {
		t.Errorf("handler called %d times, want 0", email.calls)
	}
	if engine.History().Len() != 0 {
		t.Errorf("history has %d entries, want 0", engine.History().Len())
	}
}

func TestDispatch_OneResultPerRegisteredChannelInRequestOrder(t *testing.T) {
	email := &stubHandler{kind: channel.KindEmail}
	sms := &stubHandler{kind: channel.KindSMS}
	engine := newTestEngine(email, sms)

	results, err := engine.Dispatch(context.Background(), validOrder(), []channel.Kind{channel.KindSMS, channel.KindEmail})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Kind != channel.KindSMS || results[1].Kind != channel.KindEmail {
		t.Errorf("results out of request order: %v, %v", results[0].Kind, results[1].Kind)
	}
	if engine.History().Len() != 2 {
		t.Errorf("history has %d entries, want 2", engine.History().Len())
	}
}

func TestDispatch_UnregisteredChannelIsSkipped(t *testing.T) {
	email := &stubHandler{kind: channel.KindEmail}
	engine := newTestEngine(email)
	logger := &mockLogger{}
	engine.logger = logger

	results, err := engine.Dispatch(context.Background(), validOrder(),
		[]channel.Kind{channel.Kind("telegram"), channel.KindEmail})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Kind != channel.KindEmail {
		t.Errorf("result kind = %v, want email", results[0].Kind)
	}
	if !logger.HasError("Channel skipped, no handler registered") {
		t.Error("expected skip to be logged")
	}
}

func TestDispatch_ChannelFailureIsolation(t *testing.T) {
	email := &stubHandler{kind: channel.KindEmail, fail: true}
	sms := &stubHandler{kind: channel.KindSMS}
	engine := newTestEngine(email, sms)

	results, err := engine.Dispatch(context.Background(), validOrder(), []channel.Kind{channel.KindEmail, channel.KindSMS})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Status != entity.StatusFailed {
		t.Errorf("first result status = %v, want FAILED", results[0].Status)
	}
	if results[0].Error == "" {
		t.Error("failed result should carry the error text")
	}
	if results[1].Status != entity.StatusSent {
		t.Errorf("second result status = %v, want SENT", results[1].Status)
	}
	if sms.calls != 1 {
		t.Errorf("sms handler called %d times, want 1", sms.calls)
	}
	// Failed outcomes are history entries too
	if engine.History().Len() != 2 {
		t.Errorf("history has %d entries, want 2", engine.History().Len())
	}
}

func TestDispatch_ListenersNotifiedInRegistrationOrder(t *testing.T) {
	email := &stubHandler{kind: channel.KindEmail}
	engine := newTestEngine(email)

	var callOrder []string
	first := &recordingListener{name: "first", order: &callOrder}
	second := &recordingListener{name: "second", order: &callOrder}
	engine.AddListener(first)
	engine.AddListener(second)

	_, err := engine.Dispatch(context.Background(), validOrder(), []channel.Kind{channel.KindEmail})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if len(first.results) != 1 || len(second.results) != 1 {
		t.Fatalf("listener counts = %d, %d; want 1, 1", len(first.results), len(second.results))
	}
	if len(callOrder) != 2 || callOrder[0] != "first" || callOrder[1] != "second" {
		t.Errorf("listener call order = %v", callOrder)
	}
}

func TestDispatch_RemoveListener(t *testing.T) {
	email := &stubHandler{kind: channel.KindEmail}
	engine := newTestEngine(email)

	listener := &recordingListener{name: "audit"}
	engine.AddListener(listener)
	engine.RemoveListener(listener)

	_, err := engine.Dispatch(context.Background(), validOrder(), []channel.Kind{channel.KindEmail})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if len(listener.results) != 0 {
		t.Errorf("removed listener received %d updates", len(listener.results))
	}
}

func TestDispatch_SingleEmailScenario(t *testing.T) {
	email := &stubHandler{kind: channel.KindEmail}
	engine := newTestEngine(email)

	order := &entity.Order{
		ID: "O1",
		Customer: entity.Customer{
			Name:      "Ana",
			Addresses: map[channel.Kind]string{channel.KindEmail: "a@x.com"},
		},
		Total: 10,
	}

	results, err := engine.Dispatch(context.Background(), order, []channel.Kind{channel.KindEmail})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Kind != channel.KindEmail {
		t.Errorf("kind = %v, want email", results[0].Kind)
	}
	if results[0].Status != entity.StatusSent {
		t.Errorf("status = %v, want SENT", results[0].Status)
	}
	if results[0].Recipient != "a@x.com" {
		t.Errorf("recipient = %q, want a@x.com", results[0].Recipient)
	}
}

func TestAuditTrail_RecordsOutcomes(t *testing.T) {
	email := &stubHandler{kind: channel.KindEmail}
	sms := &stubHandler{kind: channel.KindSMS, fail: true}
	engine := newTestEngine(email, sms)

	trail := NewAuditTrail()
	engine.AddListener(trail)

	_, err := engine.Dispatch(context.Background(), validOrder(), []channel.Kind{channel.KindEmail, channel.KindSMS})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	entries := trail.Entries()
	if len(entries) != 2 {
		t.Fatalf("audit trail has %d entries, want 2", len(entries))
	}
	if entries[0].Kind != channel.KindEmail || entries[0].Status != entity.StatusSent {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].Kind != channel.KindSMS || entries[1].Status != entity.StatusFailed {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestEngine_ConfigDefaults(t *testing.T) {
	engine := newTestEngine()

	cfg := engine.Config()
	if cfg.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.MaxAttempts)
	}
	if !cfg.LogSends {
		t.Error("LogSends should default to true")
	}
}
