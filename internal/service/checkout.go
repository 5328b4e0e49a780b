package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopfront/shopfront/internal/mail"
	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/model"
)

// Checkout errors.
var (
	ErrMissingOrderData = errors.New("missing order details or email")
	ErrMailDispatch     = errors.New("failed to dispatch confirmation email")
)

const defaultMailTimeout = 15 * time.Second

// Dispatcher delivers outbound email through the mail relay.
type Dispatcher interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// CheckoutService validates orders and dispatches confirmation emails.
// Orders are never persisted; the rendered summary presents the caller's
// total amount as supplied.
type CheckoutService struct {
	dispatcher  Dispatcher
	metrics     metrics.Recorder
	mailTimeout time.Duration
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(dispatcher Dispatcher, recorder metrics.Recorder, mailTimeout time.Duration) *CheckoutService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if mailTimeout <= 0 {
		mailTimeout = defaultMailTimeout
	}
	return &CheckoutService{
		dispatcher:  dispatcher,
		metrics:     recorder,
		mailTimeout: mailTimeout,
	}
}

// Checkout validates the order payload and sends exactly one confirmation
// email. Invalid payloads are rejected before any dispatch.
func (s *CheckoutService) Checkout(ctx context.Context, email string, order model.Order) error {
	if strings.TrimSpace(email) == "" || len(order.Items) == 0 {
		return ErrMissingOrderData
	}

	body, err := mail.RenderOrderConfirmation(order)
	if err != nil {
		return fmt.Errorf("failed to render confirmation: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.mailTimeout)
	defer cancel()

	start := time.Now()
	if err := s.dispatcher.Send(ctx, email, mail.OrderConfirmationSubject, body); err != nil {
		return fmt.Errorf("%w: %w", ErrMailDispatch, err)
	}
	s.metrics.ObserveMailDispatchDuration(time.Since(start))
	s.metrics.IncOrderConfirmed()

	return nil
}
