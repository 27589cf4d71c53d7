package workers

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Conte777/keepalive-service/config"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/usecase/business"
	pkgerrors "github.com/Conte777/keepalive-service/pkg/errors"
)

// KeepaliveWorker connects every configured account when the app starts
// and stops their schedulers when it stops.
type KeepaliveWorker struct {
	uc         *business.UseCase
	accounts   *config.AccountsConfig
	schedulers *Factory
	logger     zerolog.Logger

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewKeepaliveWorker creates a new keepalive worker
func NewKeepaliveWorker(
	uc *business.UseCase,
	accounts *config.AccountsConfig,
	schedulers *Factory,
	logger zerolog.Logger,
) *KeepaliveWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &KeepaliveWorker{
		uc:         uc,
		accounts:   accounts,
		schedulers: schedulers,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start validates the accounts and connects them in the background.
// Invalid account configuration fails startup.
func (w *KeepaliveWorker) Start() error {
	accounts, err := business.BuildAccounts(w.accounts)
	if err != nil {
		if pkgerrors.IsValidationError(err) {
			w.logger.Error().Err(err).Msg("Invalid account configuration")
		}
		return err
	}

	w.logger.Info().
		Int("accounts", len(accounts)).
		Msg("Starting keepalive worker")

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.uc.ConnectAll(w.ctx, accounts)
	}()

	return nil
}

// Stop aborts pending connects and stops every scheduler
func (w *KeepaliveWorker) Stop() {
	w.logger.Info().Msg("Stopping keepalive worker")

	w.cancel()
	w.wg.Wait()
	w.schedulers.StopAll()

	w.logger.Info().Msg("Keepalive worker stopped")
}
