// Package checker runs palindrome checks and records their outcomes
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mrled/suns/palin/internal/model"
	"github.com/mrled/suns/palin/internal/palindrome"
	"github.com/mrled/suns/palin/internal/selftest"
)

// Service checks text and, when a repository is set, records each result
type Service struct {
	repo model.CheckRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a checker. repo may be nil to skip recording.
func NewService(repo model.CheckRepository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

// Check runs the predicate on text and records the result.
// Invalid input under strict options is returned as an error and not recorded.
func (s *Service) Check(ctx context.Context, text string, opts palindrome.Options) (*model.CheckRecord, error) {
	ok, err := palindrome.Check(text, opts)
	if err != nil {
		s.log.Debug("Rejected input", slog.String("text", text), slog.String("error", err.Error()))
		return nil, err
	}

	record := &model.CheckRecord{
		Text:         text,
		Fold:         opts.Fold.String(),
		IsPalindrome: ok,
		CheckTime:    s.now().UTC(),
	}
	s.log.Debug("Checked text",
		slog.String("text", text),
		slog.String("fold", record.Fold),
		slog.Bool("palindrome", ok))

	if s.repo == nil {
		return record, nil
	}
	if err := s.repo.Store(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record check: %w", err)
	}
	return record, nil
}

// SelfTest runs the known literals through the predicate with opts
func (s *Service) SelfTest(opts palindrome.Options) ([]selftest.Result, error) {
	check := func(text string) bool {
		ok, _ := palindrome.Check(text, opts)
		return ok
	}
	results := selftest.Results(check)
	err := selftest.Run(check)
	if err != nil {
		s.log.Warn("Self-test failed", slog.String("error", err.Error()))
	}
	return results, err
}
