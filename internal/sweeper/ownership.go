package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/chain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/messaging"
	"github.com/henrymaxel/platform-mvp-sub000/internal/metrics"
	"github.com/henrymaxel/platform-mvp-sub000/internal/royalty"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
)

const (
	TriggerSchedule = "schedule"
	TriggerStartup  = "startup"
	TriggerManual   = "manual"
)

const (
	defaultBatchSize    = 200
	defaultPoolSize     = 8
	defaultAssetTimeout = 20 * time.Second
)

// Sweeper defines the interface for long-running background sweepers
//
//go:generate mockgen -source=ownership.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper,OwnershipSweeper=MockOwnershipSweeper
type Sweeper interface {
	// Start runs the sweeper until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper, waiting for in-flight runs
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// OwnershipSweeper re-verifies every owned asset against the chain
type OwnershipSweeper interface {
	Sweeper

	// Sweep checks every owned asset once and applies the resulting ownership state
	Sweep(ctx context.Context) (*SweepResult, error)

	// Run sweeps and then reconciles every royalty record
	Run(ctx context.Context, trigger string) (*RunResult, error)
}

// Config holds configuration for the ownership sweeper
type Config struct {
	Schedule     string        // cron expression with seconds
	RunOnStart   bool          // run once immediately when started
	BatchSize    int           // assets loaded per page
	PoolSize     int           // concurrent ownership checks
	AssetTimeout time.Duration // bound on a single ownership check
}

// SweepResult aggregates one sweep
type SweepResult struct {
	SweepID  string        `json:"sweep_id"`
	Verified int           `json:"verified"`
	Failed   int           `json:"failed"`
	Lost     int           `json:"lost"`
	Regained int           `json:"regained"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration"`
}

// RunResult is a sweep followed by royalty reconciliation
type RunResult struct {
	Sweep   *SweepResult    `json:"sweep"`
	Royalty *royalty.Result `json:"royalty"`
}

type counters struct {
	verified atomic.Int64
	failed   atomic.Int64
	lost     atomic.Int64
	regained atomic.Int64
	skipped  atomic.Int64
}

type ownershipSweeper struct {
	config     Config
	store      store.Store
	gateway    chain.Gateway
	reconciler royalty.Reconciler
	publisher  messaging.Publisher
	clock      adapter.Clock

	// stopChan and stoppedCh belong to the current Start call and are nil while stopped
	mu        sync.Mutex
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewOwnershipSweeper creates a new ownership sweeper
func NewOwnershipSweeper(
	config Config,
	st store.Store,
	gateway chain.Gateway,
	reconciler royalty.Reconciler,
	publisher messaging.Publisher,
	clock adapter.Clock,
) OwnershipSweeper {
	if config.BatchSize <= 0 {
		config.BatchSize = defaultBatchSize
	}
	if config.PoolSize <= 0 {
		config.PoolSize = defaultPoolSize
	}
	if config.AssetTimeout <= 0 {
		config.AssetTimeout = defaultAssetTimeout
	}
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}

	return &ownershipSweeper{
		config:     config,
		store:      st,
		gateway:    gateway,
		reconciler: reconciler,
		publisher:  publisher,
		clock:      clock,
	}
}

// Name returns the sweeper's name
func (s *ownershipSweeper) Name() string {
	return "ownership-sweeper"
}

// Start schedules runs on the cron expression. Overlapping runs are allowed; every
// per asset write is independent.
func (s *ownershipSweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.stopChan != nil {
		s.mu.Unlock()
		return fmt.Errorf("sweeper already running")
	}
	stopChan, stoppedCh := make(chan struct{}), make(chan struct{})
	s.stopChan, s.stoppedCh = stopChan, stoppedCh
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.stopChan, s.stoppedCh = nil, nil
		s.mu.Unlock()
		close(stoppedCh)
	}()

	scheduler := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cronLogger{})),
		cron.WithLogger(cronLogger{}),
	)
	_, err := scheduler.AddFunc(s.config.Schedule, func() {
		s.runLogged(ctx, TriggerSchedule)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.config.Schedule, err)
	}

	logger.InfoCtx(ctx, "Starting ownership sweeper",
		zap.String("schedule", s.config.Schedule),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("pool_size", s.config.PoolSize),
		zap.Duration("asset_timeout", s.config.AssetTimeout),
	)

	scheduler.Start()
	if s.config.RunOnStart {
		go s.runLogged(ctx, TriggerStartup)
	}

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Ownership sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-stopChan:
		logger.InfoCtx(ctx, "Ownership sweeper stop requested")
	}

	// Wait for running jobs to finish
	<-scheduler.Stop().Done()
	return nil
}

// Stop gracefully stops the sweeper with timeout support
func (s *ownershipSweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	stopChan, stoppedCh := s.stopChan, s.stoppedCh
	if stopChan == nil {
		s.mu.Unlock()
		return nil
	}
	select {
	case <-stopChan:
	default:
		close(stopChan)
	}
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Stopping ownership sweeper")
	select {
	case <-stoppedCh:
		logger.InfoCtx(ctx, "Ownership sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Ownership sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *ownershipSweeper) runLogged(ctx context.Context, trigger string) {
	if _, err := s.Run(ctx, trigger); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, fmt.Errorf("ownership run failed: %w", err), zap.String("trigger", trigger))
	}
}

// Run sweeps every asset, then reconciles every royalty record
func (s *ownershipSweeper) Run(ctx context.Context, trigger string) (*RunResult, error) {
	metrics.SweepRunsTotal.WithLabelValues(trigger).Inc()

	sweep, err := s.Sweep(ctx)
	if err != nil {
		return nil, err
	}

	royalties, err := s.reconciler.ReconcileAll(ctx)
	if err != nil {
		return &RunResult{Sweep: sweep}, fmt.Errorf("failed to reconcile royalties: %w", err)
	}

	return &RunResult{Sweep: sweep, Royalty: royalties}, nil
}

// Sweep pages through every owned asset by id and checks each on a bounded pool
func (s *ownershipSweeper) Sweep(ctx context.Context) (*SweepResult, error) {
	sweepID := ulid.Make().String()
	startTime := s.clock.Now()

	logger.InfoCtx(ctx, "Starting ownership sweep", zap.String("sweep_id", sweepID))

	pool := pond.NewPool(s.config.PoolSize, pond.WithContext(ctx))
	defer pool.StopAndWait()

	var c counters
	var afterID uint64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		targets, err := s.store.ListAssetsForVerification(ctx, afterID, s.config.BatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list assets for verification: %w", err)
		}
		if len(targets) == 0 {
			break
		}

		group := pool.NewGroup()
		for _, target := range targets {
			group.Submit(func() {
				s.verifyAsset(ctx, sweepID, target, &c)
			})
		}
		// Tasks never return errors, only a canceled pool does
		if err := group.Wait(); err != nil {
			return nil, err
		}

		afterID = targets[len(targets)-1].AssetID
		if len(targets) < s.config.BatchSize {
			break
		}
	}

	duration := s.clock.Since(startTime)
	metrics.SweepLatency.Observe(duration.Seconds())

	result := &SweepResult{
		SweepID:  sweepID,
		Verified: int(c.verified.Load()),
		Failed:   int(c.failed.Load()),
		Lost:     int(c.lost.Load()),
		Regained: int(c.regained.Load()),
		Skipped:  int(c.skipped.Load()),
		Duration: duration,
	}

	logger.InfoCtx(ctx, "Ownership sweep completed",
		zap.String("sweep_id", sweepID),
		zap.Duration("duration", duration),
		zap.Int("verified", result.Verified),
		zap.Int("failed", result.Failed),
		zap.Int("lost", result.Lost),
		zap.Int("regained", result.Regained),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

// verifyAsset checks one asset. Every failure is logged and counted, never propagated.
func (s *ownershipSweeper) verifyAsset(ctx context.Context, sweepID string, target store.VerificationTarget, c *counters) {
	chainLabel := target.ChainID.String()
	fields := []zap.Field{
		zap.String("sweep_id", sweepID),
		zap.Uint64("asset_id", target.AssetID),
		zap.String("contract", target.CollectionAddress),
		zap.String("token_id", target.TokenID),
		zap.Int64("chain_id", int64(target.ChainID)),
	}

	defer func() {
		if r := recover(); r != nil {
			c.failed.Add(1)
			metrics.SweepAssetsFailed.WithLabelValues(chainLabel, "panic").Inc()
			logger.ErrorCtx(ctx, fmt.Errorf("ownership check panicked: %v", r), fields...)
		}
	}()

	owned, err := s.checkOwnership(ctx, target)
	if err != nil {
		c.failed.Add(1)
		metrics.SweepAssetsFailed.WithLabelValues(chainLabel, failureReason(err)).Inc()
		logger.WarnCtx(ctx, "Ownership check failed", append(fields, zap.Error(err))...)
		return
	}

	transition, err := s.store.ApplyVerification(ctx, store.ApplyVerificationInput{
		AssetID:     target.AssetID,
		Owned:       owned,
		VerifiedAt:  s.clock.Now(),
		LossMessage: lossMessage(target),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			// Removed by its owner while the sweep was running
			c.skipped.Add(1)
			return
		}
		c.failed.Add(1)
		metrics.SweepAssetsFailed.WithLabelValues(chainLabel, "store").Inc()
		logger.ErrorCtx(ctx, fmt.Errorf("failed to apply verification: %w", err), fields...)
		return
	}

	c.verified.Add(1)
	metrics.SweepAssetsVerified.WithLabelValues(chainLabel).Inc()

	if !transition.Changed() {
		return
	}

	if transition == domain.TransitionLost {
		c.lost.Add(1)
	} else {
		c.regained.Add(1)
	}
	metrics.SweepTransitions.WithLabelValues(chainLabel, string(transition)).Inc()
	logger.InfoCtx(ctx, "Ownership state changed", append(fields, zap.String("transition", string(transition)))...)

	if _, err := s.reconciler.ReconcileAsset(ctx, target.AssetID); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to reconcile royalties after transition: %w", err), fields...)
	}

	event := domain.OwnershipChangedEvent{
		AssetID:         target.AssetID,
		UserID:          target.UserID,
		WalletAddress:   target.WalletAddress,
		ChainID:         target.ChainID,
		ContractAddress: target.CollectionAddress,
		TokenID:         target.TokenID,
		Transition:      transition,
		SweepID:         sweepID,
		Timestamp:       s.clock.Now(),
	}
	if err := s.publisher.PublishOwnershipChanged(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ownership event", append(fields, zap.Error(err))...)
	}
}

// checkOwnership reports whether the asset's wallet is among the token's current owners
func (s *ownershipSweeper) checkOwnership(ctx context.Context, target store.VerificationTarget) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.AssetTimeout)
	defer cancel()

	owners, err := s.gateway.GetCurrentOwners(ctx, target.CollectionAddress, target.TokenID, target.ChainID)
	if err != nil {
		return false, err
	}

	wallet, err := domain.NormalizeAddress(target.WalletAddress)
	if err != nil {
		return false, chain.Permanent(err)
	}
	for _, owner := range owners {
		normalized, err := domain.NormalizeAddress(owner)
		if err != nil {
			continue
		}
		if normalized == wallet {
			return true, nil
		}
	}
	return false, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case chain.IsPermanent(err):
		return "permanent"
	default:
		return "transient"
	}
}

func lossMessage(target store.VerificationTarget) string {
	name := target.CollectionName
	if name == "" {
		name = domain.UNKNOWN_COLLECTION_NAME
	}
	return fmt.Sprintf("Your wallet %s no longer holds %s #%s. Characters bound to it are paused and its royalties are on hold until ownership is restored.",
		target.WalletAddress, name, target.TokenID)
}

// cronLogger routes cron's own logging through zap
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Default().Sugar().Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Default().Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
