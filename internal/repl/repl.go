// Package repl implements the interactive meal logging loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"macrolog/internal/app"
	"macrolog/internal/apperror"
	"macrolog/internal/domain"
)

const (
	banner          = "Macrolog Meal Logger"
	example         = "Example: 'I had 2 eggs and toast for breakfast'"
	prompt          = "You: "
	analyzing       = " Analyzing...\r"
	processingError = " Processing failed. Check your API key or connection."
	syncComplete    = " Sync complete."
)

// Extractor turns a meal description into structured facts, or nil when
// extraction fails.
type Extractor interface {
	ExtractMealInfo(ctx context.Context, text string) *domain.Extraction
}

// Recorder persists meals and reports today's totals.
type Recorder interface {
	SaveMeal(ctx context.Context, in domain.MealInput) (*domain.Meal, error)
	DailyMacroTotals(ctx context.Context) (domain.MacroTotals, error)
}

// Loop reads meal descriptions line by line and prints feedback. When
// recorder is nil, meals are only analyzed.
type Loop struct {
	extractor Extractor
	recorder  Recorder
	log       *zap.Logger
}

// New creates a Loop. recorder may be nil.
func New(extractor Extractor, recorder Recorder, log *zap.Logger) *Loop {
	return &Loop{extractor: extractor, recorder: recorder, log: log}
}

// Run drives the loop until a quit command, EOF, or ctx cancellation.
func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, example)
	fmt.Fprintln(out)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(out, prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case s, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-errc
			}
			line = s
		}

		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if isQuit(text) {
			return nil
		}
		l.handle(ctx, text, out)
	}
}

// readLines reads in on its own goroutine so a blocked read does not hold up
// cancellation. Lines of any length are delivered whole. The error channel
// receives the read error, nil at EOF, before lines closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			line, err := r.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					errc <- nil
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				errc <- err
				return
			}
		}
	}()
	return lines, errc
}

func (l *Loop) handle(ctx context.Context, text string, out io.Writer) {
	fmt.Fprint(out, analyzing)
	ext := l.extractor.ExtractMealInfo(ctx, text)
	if ext == nil {
		fmt.Fprintln(out, processingError)
		return
	}
	fmt.Fprintln(out, app.GiveFeedback(*ext))

	if l.recorder == nil {
		return
	}
	if _, err := l.recorder.SaveMeal(ctx, ext.MealInput()); err != nil {
		l.log.Error("sync meal", zap.Error(err))
		fmt.Fprintf(out, " Sync failed: %s\n\n", apperror.Summary(err))
		return
	}
	fmt.Fprintln(out, syncComplete)

	totals, err := l.recorder.DailyMacroTotals(ctx)
	if err != nil {
		l.log.Warn("daily totals", zap.Error(err))
		fmt.Fprintln(out)
		return
	}
	fmt.Fprintln(out, app.FormatTotals(totals))
	fmt.Fprintln(out)
}

func isQuit(text string) bool {
	switch strings.ToLower(text) {
	case "quit", "exit", "q":
		return true
	}
	return false
}
