package service

import (
	"context"

	"go.uber.org/zap"

	"driwich/internal/domain"
	apperrors "driwich/internal/errors"
	"driwich/internal/notify"
)

type Dispatcher interface {
	PrintOrder(ctx context.Context, order domain.Order) error
}

type Formatter interface {
	Format(order domain.Order) string
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type Recorder interface {
	PrintFailed()
}

// TicketService prints order tickets and reports failures to the operator.
// A failed print never touches the order itself.
type TicketService struct {
	dispatcher Dispatcher
	formatter  Formatter
	notifier   Notifier
	recorder   Recorder
	logger     *zap.Logger
}

func NewTicketService(
	dispatcher Dispatcher,
	formatter Formatter,
	notifier Notifier,
	recorder Recorder,
	logger *zap.Logger,
) *TicketService {
	return &TicketService{
		dispatcher: dispatcher,
		formatter:  formatter,
		notifier:   notifier,
		recorder:   recorder,
		logger:     logger,
	}
}

// Print sends the ticket to the printer. On failure a destructive
// notification is emitted and the *errors.PrintError is returned.
func (s *TicketService) Print(ctx context.Context, order domain.Order) error {
	err := s.dispatcher.PrintOrder(ctx, order)
	if err == nil {
		return nil
	}

	message := err.Error()
	if pe, ok := apperrors.IsPrintError(err); ok {
		message = pe.Message
	} else {
		err = apperrors.NewPrintError(message, err)
	}

	s.logger.Warn("ticket not printed", zap.Uint("orderNumber", order.OrderNumber), zap.Error(err))
	s.recorder.PrintFailed()
	s.notifier.Notify(ctx, notify.Error("Print error", capitalize(message)))
	return err
}

// Text renders the ticket without printing it.
func (s *TicketService) Text(order domain.Order) string {
	return s.formatter.Format(order)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
