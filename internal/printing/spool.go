package printing

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "driwich/internal/errors"
	"driwich/internal/ticket"
)

type runFunc func(ctx context.Context, name string, args ...string) error

// SpoolPrinter writes each document to a transient file, passes the path to
// a host print command and removes the file once DisposeDelay has passed.
type SpoolPrinter struct {
	dir          string
	command      string
	args         []string
	disposeDelay time.Duration
	runTimeout   time.Duration
	logger       *zap.Logger

	run     runFunc
	pending sync.WaitGroup
}

func NewSpoolPrinter(dir, command string, args []string, disposeDelay time.Duration, logger *zap.Logger) *SpoolPrinter {
	return &SpoolPrinter{
		dir:          dir,
		command:      command,
		args:         args,
		disposeDelay: disposeDelay,
		runTimeout:   10 * time.Second,
		logger:       logger,
		run:          runCommand,
	}
}

func (p *SpoolPrinter) Print(ctx context.Context, doc ticket.Document) error {
	path, err := p.prepare(doc)
	if err != nil {
		return apperrors.NewPrintError("could not prepare print document", err)
	}

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.runTimeout)
	defer cancel()

	args := append(append([]string{}, p.args...), path)
	if err := p.run(runCtx, p.command, args...); err != nil {
		p.dispose(path)
		return apperrors.NewPrintError("print request failed", err)
	}

	p.pending.Add(1)
	time.AfterFunc(p.disposeDelay, func() {
		defer p.pending.Done()
		p.dispose(path)
	})

	return nil
}

// Close waits for scheduled surface removals.
func (p *SpoolPrinter) Close() {
	p.pending.Wait()
}

func (p *SpoolPrinter) prepare(doc ticket.Document) (string, error) {
	f, err := os.CreateTemp(p.dir, "ticket-*.html")
	if err != nil {
		return "", fmt.Errorf("creating print surface: %w", err)
	}

	if _, err := f.Write(doc.HTML); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing print surface: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing print surface: %w", err)
	}

	return f.Name(), nil
}

func (p *SpoolPrinter) dispose(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("disposing print surface failed", zap.String("path", path), zap.Error(err))
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
