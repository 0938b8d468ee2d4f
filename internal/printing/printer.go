package printing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"driwich/internal/domain"
	apperrors "driwich/internal/errors"
	"driwich/internal/ticket"
)

// Printer renders a document on some surface and asks the host to print it.
type Printer interface {
	Print(ctx context.Context, doc ticket.Document) error
}

type Formatter interface {
	Format(order domain.Order) string
}

// Dispatcher turns orders into printed tickets.
type Dispatcher struct {
	formatter Formatter
	printer   Printer
	logger    *zap.Logger
}

func NewDispatcher(formatter Formatter, printer Printer, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		formatter: formatter,
		printer:   printer,
		logger:    logger,
	}
}

// PrintOrder formats the ticket and hands it to the printer. Every failure
// comes back as a *errors.PrintError.
func (d *Dispatcher) PrintOrder(ctx context.Context, order domain.Order) error {
	text := d.formatter.Format(order)

	doc, err := ticket.NewDocument(order, text)
	if err != nil {
		d.logger.Error("building ticket document failed", zap.Uint("orderNumber", order.OrderNumber), zap.Error(err))
		return apperrors.NewPrintError("could not prepare print document", err)
	}

	if err := d.printer.Print(ctx, doc); err != nil {
		d.logger.Error("print error", zap.Uint("orderNumber", order.OrderNumber), zap.Error(err))
		if _, ok := apperrors.IsPrintError(err); ok {
			return err
		}
		return apperrors.NewPrintError(fmt.Sprintf("printing order #%d failed", order.OrderNumber), err)
	}

	d.logger.Info("ticket sent to printer", zap.Uint("orderNumber", order.OrderNumber), zap.Int("bytes", len(doc.HTML)))
	return nil
}

// LogPrinter writes documents to the log instead of a device.
type LogPrinter struct {
	logger *zap.Logger
}

func NewLogPrinter(logger *zap.Logger) *LogPrinter {
	return &LogPrinter{logger: logger}
}

func (p *LogPrinter) Print(_ context.Context, doc ticket.Document) error {
	p.logger.Info("print requested", zap.String("title", doc.Title), zap.Int("bytes", len(doc.HTML)))
	p.logger.Debug("print document", zap.ByteString("html", doc.HTML))
	return nil
}
