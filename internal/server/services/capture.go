package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/dbx"
	"github.com/dmitrijs2005/edgesync/internal/logging"
	"github.com/dmitrijs2005/edgesync/internal/metrics"
	"github.com/dmitrijs2005/edgesync/internal/server/config"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edgesync/internal/timex"
)

// Input limits of a capture request.
const (
	MaxTerminalIDLen     = 64
	MinIdempotencyKeyLen = 8
	MaxIdempotencyKeyLen = 128
)

// CaptureRequest is one checkout submitted by a terminal.
type CaptureRequest struct {
	TerminalID     string
	IdempotencyKey string
	LineItems      []models.LineItem
	Payment        models.PaymentMetadata
}

// CaptureResult carries the stored record. IsDuplicate is set when the
// idempotency key had been used before; Record is then the original row.
type CaptureResult struct {
	Record      *models.EdgeRecord
	IsDuplicate bool
}

type CaptureService struct {
	db              *sql.DB
	repomanager     repomanager.EdgeRepositoryManager
	clock           timex.Clock
	defaultCurrency string
	log             logging.Logger
}

func NewCaptureService(db *sql.DB, m repomanager.EdgeRepositoryManager, cfg *config.Config,
	clock timex.Clock, log logging.Logger) *CaptureService {
	return &CaptureService{
		db:              db,
		repomanager:     m,
		clock:           clock,
		defaultCurrency: cfg.DefaultCurrency,
		log:             log.With("module", "capture"),
	}
}

// Capture validates req and stores it as a pending edge record. A repeated
// (terminal, idempotency key) returns the first record unchanged. Capture
// never starts a sync.
func (s *CaptureService) Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error) {
	if err := s.normalize(&req); err != nil {
		metrics.CapturesTotal.WithLabelValues(metrics.CaptureRejected).Inc()
		return nil, err
	}

	rec := &models.EdgeRecord{
		TerminalID:     req.TerminalID,
		IdempotencyKey: req.IdempotencyKey,
		AmountTotal:    models.ComputeTotal(req.LineItems),
		Payment:        req.Payment,
		LineItems:      req.LineItems,
		CreatedAt:      s.clock.Now(),
	}

	result := &CaptureResult{}
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Records(tx)

		outcome, err := repo.Insert(ctx, rec)
		if err != nil {
			return err
		}
		if outcome == common.Inserted {
			result.Record = rec
			return nil
		}

		existing, err := repo.GetByKey(ctx, req.TerminalID, req.IdempotencyKey)
		if err != nil {
			return fmt.Errorf("load original record: %w", err)
		}
		result.Record = existing
		result.IsDuplicate = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	if result.IsDuplicate {
		metrics.CapturesTotal.WithLabelValues(metrics.CaptureDuplicate).Inc()
		s.log.Debug(ctx, "duplicate capture", "terminal_id", req.TerminalID,
			"idempotency_key", req.IdempotencyKey, "record_id", result.Record.ID)
	} else {
		metrics.CapturesTotal.WithLabelValues(metrics.CaptureCreated).Inc()
		s.log.Info(ctx, "captured", "terminal_id", req.TerminalID,
			"record_id", rec.ID, "amount", rec.AmountTotal.StringFixed(models.AmountPlaces))
	}
	return result, nil
}

// ListEdge returns edge records, oldest first.
func (s *CaptureService) ListEdge(ctx context.Context, filter models.EdgeFilter) ([]*models.EdgeRecord, error) {
	return s.repomanager.Records(s.db).List(ctx, filter)
}

func (s *CaptureService) normalize(req *CaptureRequest) error {
	req.TerminalID = strings.TrimSpace(req.TerminalID)
	if err := validateTerminalID(req.TerminalID); err != nil {
		return err
	}

	if n := utf8.RuneCountInString(req.IdempotencyKey); n < MinIdempotencyKeyLen || n > MaxIdempotencyKeyLen {
		return fmt.Errorf("%w: idempotency key must be %d..%d characters",
			common.ErrValidation, MinIdempotencyKeyLen, MaxIdempotencyKeyLen)
	}

	if req.Payment.Currency == "" {
		req.Payment.Currency = s.defaultCurrency
	}
	req.Payment.Currency = strings.ToUpper(req.Payment.Currency)
	if !isCurrencyCode(req.Payment.Currency) {
		return fmt.Errorf("%w: currency must be a 3-letter code", common.ErrValidation)
	}

	if len(req.LineItems) == 0 {
		return fmt.Errorf("%w: at least one line item is required", common.ErrValidation)
	}
	for i, it := range req.LineItems {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: line item %d: quantity must be positive", common.ErrValidation, i)
		}
		if !it.UnitPrice.IsPositive() {
			return fmt.Errorf("%w: line item %d: unit price must be positive", common.ErrValidation, i)
		}
	}
	return nil
}

func validateTerminalID(id string) error {
	if id == "" || utf8.RuneCountInString(id) > MaxTerminalIDLen {
		return fmt.Errorf("%w: terminal id must be 1..%d characters", common.ErrValidation, MaxTerminalIDLen)
	}
	return nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
