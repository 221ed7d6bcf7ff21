package tipping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/GlebRadaev/snackvote/internal/config"
	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/pkg/clients"
	"go.uber.org/zap"
)

//go:generate mockgen -source=tipping.go -destination=mock_tipping.go -package=tipping

type OfficeReader interface {
	Get(ctx context.Context, officeID string) (*domain.Office, error)
}

var ErrTipRejected = errors.New("tip rejected by payment rpc")

type Request struct {
	FromUserID string  `json:"_from_user_id"`
	ToUserID   string  `json:"_to_user_id"`
	Amount     float64 `json:"_amount"`
}

type Service struct {
	url        string
	apiKey     string
	offices    OfficeReader
	client     clients.HTTPClientI
	workerPool WorkerPoolI

	mu       sync.Mutex
	closed   bool
	dispatch sync.WaitGroup
}

func New(cfg *config.Config, offices OfficeReader, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.TipRPCURL,
		apiKey:     cfg.TipAPIKey,
		offices:    offices,
		client:     client,
		workerPool: NewWorkerPool(cfg.TipWorkers),
	}
}

// Tip transfers amount coins from one user to another through the payment RPC.
func (s *Service) Tip(ctx context.Context, fromUserID, toUserID string, amount float64) error {
	if toUserID == "" || amount <= 0 {
		return nil
	}
	if s.url == "" {
		zap.L().Debug("Tipping rpc is not configured, tip skipped", zap.String("toUserID", toUserID))
		return nil
	}

	body, err := json.Marshal(Request{FromUserID: fromUserID, ToUserID: toUserID, Amount: amount})
	if err != nil {
		return fmt.Errorf("failed to encode tip: %w", err)
	}

	headers := http.Header{}
	headers.Set("Accept", "*/*")
	headers.Set("Content-Type", "application/json")
	headers.Set("apikey", s.apiKey)
	headers.Set("content-profile", "public")

	statusCode, respBody, err := s.client.Post(ctx, s.url, headers, body)
	if err != nil {
		return fmt.Errorf("failed to send tip to %s: %w", toUserID, err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d: %s", ErrTipRejected, statusCode, respBody)
	}

	zap.L().Info("Tipped czar", zap.String("toUserID", toUserID), zap.Float64("amount", amount))
	return nil
}

// TipForSettlement forwards regular coins spent in officeID to the office's czar.
// It returns immediately; failures are logged by the worker and dropped.
func (s *Service) TipForSettlement(ctx context.Context, fromUserID, officeID string, amount float64) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		zap.L().Warn("Tip dropped", zap.String("officeID", officeID), zap.Error(ErrPoolClosed))
		return
	}
	s.dispatch.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.dispatch.Done()
		err := s.workerPool.AddTask(ctx, func() error {
			return s.tipCzar(ctx, fromUserID, officeID, amount)
		})
		if err != nil {
			zap.L().Warn("Tip dropped", zap.String("officeID", officeID), zap.Error(err))
		}
	}()
}

func (s *Service) tipCzar(ctx context.Context, fromUserID, officeID string, amount float64) error {
	office, err := s.offices.Get(ctx, officeID)
	if err != nil {
		return fmt.Errorf("failed to load office %s for tipping: %w", officeID, err)
	}
	if office == nil || office.Czar == nil || !office.TippingEnabled {
		return nil
	}
	return s.Tip(ctx, fromUserID, *office.Czar, amount)
}

// Close refuses new tips and waits for accepted ones to finish.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.dispatch.Wait()
	s.workerPool.Close()
}
