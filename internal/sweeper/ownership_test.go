package sweeper_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/chain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/mocks"
	"github.com/henrymaxel/platform-mvp-sub000/internal/royalty"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store/schema"
	"github.com/henrymaxel/platform-mvp-sub000/internal/sweeper"
)

const (
	holder   = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
	stranger = "0x2222222222222222222222222222222222222222"
	contract = "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"
)

var (
	userID = uuid.MustParse("4e3b2a19-0d8c-4f7e-b6a5-948372615a0b")
	now    = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type sweepMocks struct {
	store      *mocks.MockStore
	gateway    *mocks.MockChainGateway
	reconciler *mocks.MockRoyaltyReconciler
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
}

func newSweeper(t *testing.T, cfg sweeper.Config) (sweeper.OwnershipSweeper, *sweepMocks) {
	ctrl := gomock.NewController(t)
	m := &sweepMocks{
		store:      mocks.NewMockStore(ctrl),
		gateway:    mocks.NewMockChainGateway(ctrl),
		reconciler: mocks.NewMockRoyaltyReconciler(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(now).AnyTimes()
	m.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	return sweeper.NewOwnershipSweeper(cfg, m.store, m.gateway, m.reconciler, m.publisher, m.clock), m
}

func target(assetID uint64, tokenID string) store.VerificationTarget {
	return store.VerificationTarget{
		AssetID:           assetID,
		UserID:            userID,
		WalletID:          1,
		WalletAddress:     holder,
		ChainID:           domain.ChainEthereumMainnet,
		CollectionAddress: contract,
		CollectionName:    "Apes",
		TokenID:           tokenID,
	}
}

func TestOwnershipSweeper_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("one failing asset does not stop the others", func(t *testing.T) {
		s, m := newSweeper(t, sweeper.Config{BatchSize: 10, PoolSize: 2})

		m.store.EXPECT().ListAssetsForVerification(ctx, uint64(0), 10).
			Return([]store.VerificationTarget{target(1, "1"), target(2, "2"), target(3, "3")}, nil)

		// X: transient gateway failure
		m.gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, "1", domain.ChainEthereumMainnet).
			Return(nil, chain.Transient(errors.New("503")))
		// Y: holder is gone
		m.gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, "2", domain.ChainEthereumMainnet).
			Return([]string{stranger}, nil)
		// Z: still held, owner reported checksummed
		m.gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, "3", domain.ChainEthereumMainnet).
			Return([]string{"0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD"}, nil)

		m.store.EXPECT().ApplyVerification(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input store.ApplyVerificationInput) (domain.OwnershipTransition, error) {
				assert.Equal(t, now, input.VerifiedAt)
				switch input.AssetID {
				case 2:
					assert.False(t, input.Owned)
					assert.Contains(t, input.LossMessage, "Apes #2")
					return domain.TransitionLost, nil
				case 3:
					assert.True(t, input.Owned)
					return domain.TransitionNone, nil
				}
				t.Errorf("unexpected asset %d", input.AssetID)
				return domain.TransitionNone, nil
			}).Times(2)

		m.reconciler.EXPECT().ReconcileAsset(ctx, uint64(2)).Return(&royalty.Result{Updated: 1}, nil)
		m.publisher.EXPECT().PublishOwnershipChanged(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, event domain.OwnershipChangedEvent) error {
				assert.Equal(t, uint64(2), event.AssetID)
				assert.Equal(t, domain.TransitionLost, event.Transition)
				assert.Equal(t, userID, event.UserID)
				assert.NotEmpty(t, event.SweepID)
				return nil
			})

		result, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Verified)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.Lost)
		assert.Equal(t, 0, result.Regained)
		assert.NotEmpty(t, result.SweepID)
	})

	t.Run("regain reconciles and survives downstream failures", func(t *testing.T) {
		s, m := newSweeper(t, sweeper.Config{BatchSize: 10, PoolSize: 1})

		lost := target(4, "4")
		lost.OwnershipLost = true
		m.store.EXPECT().ListAssetsForVerification(ctx, uint64(0), 10).Return([]store.VerificationTarget{lost}, nil)
		m.gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, "4", domain.ChainEthereumMainnet).Return([]string{stranger, holder}, nil)
		m.store.EXPECT().ApplyVerification(ctx, gomock.Any()).Return(domain.TransitionRegained, nil)
		m.reconciler.EXPECT().ReconcileAsset(ctx, uint64(4)).Return(nil, errors.New("deadlock"))
		m.publisher.EXPECT().PublishOwnershipChanged(ctx, gomock.Any()).Return(errors.New("nats down"))

		result, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Verified)
		assert.Equal(t, 1, result.Regained)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("pages by asset id", func(t *testing.T) {
		s, m := newSweeper(t, sweeper.Config{BatchSize: 2, PoolSize: 2})

		gomock.InOrder(
			m.store.EXPECT().ListAssetsForVerification(ctx, uint64(0), 2).Return([]store.VerificationTarget{target(5, "5"), target(9, "9")}, nil),
			m.store.EXPECT().ListAssetsForVerification(ctx, uint64(9), 2).Return([]store.VerificationTarget{target(12, "12")}, nil),
		)
		m.gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, gomock.Any(), domain.ChainEthereumMainnet).Return([]string{holder}, nil).Times(3)
		m.store.EXPECT().ApplyVerification(ctx, gomock.Any()).Return(domain.TransitionNone, nil).Times(3)

		result, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Verified)
	})

	t.Run("asset removed during the sweep is skipped", func(t *testing.T) {
		s, m := newSweeper(t, sweeper.Config{BatchSize: 10, PoolSize: 1})

		m.store.EXPECT().ListAssetsForVerification(ctx, uint64(0), 10).Return([]store.VerificationTarget{target(6, "6")}, nil)
		m.gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, "6", domain.ChainEthereumMainnet).Return([]string{holder}, nil)
		m.store.EXPECT().ApplyVerification(ctx, gomock.Any()).Return(domain.TransitionNone, domain.ErrAssetNotFound)

		result, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("slow gateway call times out for that asset only", func(t *testing.T) {
		s, m := newSweeper(t, sweeper.Config{BatchSize: 10, PoolSize: 2, AssetTimeout: 20 * time.Millisecond})

		m.store.EXPECT().ListAssetsForVerification(ctx, uint64(0), 10).Return([]store.VerificationTarget{target(7, "7"), target(8, "8")}, nil)
		m.gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, "7", domain.ChainEthereumMainnet).
			DoAndReturn(func(ctx context.Context, _ string, _ string, _ domain.ChainID) ([]string, error) {
				<-ctx.Done()
				return nil, chain.Transient(ctx.Err())
			})
		m.gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, "8", domain.ChainEthereumMainnet).Return([]string{holder}, nil)
		m.store.EXPECT().ApplyVerification(ctx, gomock.Any()).Return(domain.TransitionNone, nil)

		result, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Verified)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("listing failure aborts the sweep", func(t *testing.T) {
		s, m := newSweeper(t, sweeper.Config{BatchSize: 10})
		m.store.EXPECT().ListAssetsForVerification(ctx, uint64(0), 10).Return(nil, errors.New("connection refused"))

		_, err := s.Sweep(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list assets for verification")
	})
}

func TestOwnershipSweeper_Run(t *testing.T) {
	ctx := context.Background()
	s, m := newSweeper(t, sweeper.Config{BatchSize: 10})

	m.store.EXPECT().ListAssetsForVerification(ctx, uint64(0), 10).Return(nil, nil)
	m.reconciler.EXPECT().ReconcileAll(ctx).Return(&royalty.Result{Created: 2}, nil)

	result, err := s.Run(ctx, sweeper.TriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sweep.Verified)
	assert.Equal(t, 2, result.Royalty.Created)
}

func TestOwnershipSweeper_StartStop(t *testing.T) {
	s, m := newSweeper(t, sweeper.Config{Schedule: "0 0 0 1 1 *", RunOnStart: true, BatchSize: 10})
	assert.Equal(t, "ownership-sweeper", s.Name())

	ran := make(chan struct{})
	m.store.EXPECT().ListAssetsForVerification(gomock.Any(), uint64(0), 10).Return(nil, nil)
	m.reconciler.EXPECT().ReconcileAll(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*royalty.Result, error) {
			close(ran)
			return &royalty.Result{}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("startup run did not happen")
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, s.Stop(stopCtx))
	require.NoError(t, <-done)
}

func TestOwnershipSweeper_RestartAfterStop(t *testing.T) {
	s, m := newSweeper(t, sweeper.Config{Schedule: "0 0 0 1 1 *", RunOnStart: true, BatchSize: 10})

	ran := make(chan struct{}, 2)
	m.store.EXPECT().ListAssetsForVerification(gomock.Any(), uint64(0), 10).Return(nil, nil).Times(2)
	m.reconciler.EXPECT().ReconcileAll(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*royalty.Result, error) {
			ran <- struct{}{}
			return &royalty.Result{}, nil
		}).Times(2)

	for cycle := 1; cycle <= 2; cycle++ {
		done := make(chan error, 1)
		go func() {
			done <- s.Start(context.Background())
		}()

		select {
		case <-ran:
		case <-time.After(5 * time.Second):
			t.Fatalf("startup run of cycle %d did not happen", cycle)
		}

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		require.NoError(t, s.Stop(stopCtx), "cycle %d", cycle)
		require.NoError(t, <-done, "cycle %d", cycle)
		stopCancel()
	}

	// Stopping a stopped sweeper is a no-op
	require.NoError(t, s.Stop(context.Background()))
}

func TestOwnershipSweeper_InvalidSchedule(t *testing.T) {
	s, _ := newSweeper(t, sweeper.Config{Schedule: "not a schedule"})
	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
}

func openSQLite(t *testing.T) (*gorm.DB, store.Store) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, store.Migrate(db))
	return db, store.NewStore(db)
}

// TestOwnershipSweeper_LossAndRegain runs consecutive sweeps against a real database
func TestOwnershipSweeper_LossAndRegain(t *testing.T) {
	ctx := context.Background()
	db, st := openSQLite(t)

	upserted, err := st.UpsertWallet(ctx, store.UpsertWalletInput{
		UserID: userID, Address: holder, ChainID: domain.ChainEthereumMainnet, WalletType: domain.WalletTypeMetaMask,
	})
	require.NoError(t, err)
	collection, err := st.EnsureCollection(ctx, store.EnsureCollectionInput{
		Address: contract, ChainID: domain.ChainEthereumMainnet, Name: "Apes", TokenStandard: domain.StandardERC721,
	})
	require.NoError(t, err)
	asset, err := st.UpsertOwnedAsset(ctx, store.UpsertOwnedAssetInput{
		UserID: userID, CollectionID: collection.ID, WalletID: upserted.Wallet.ID, TokenID: "42", VerifiedAt: now,
	})
	require.NoError(t, err)

	projectID := uint64(3)
	published := now
	publication := schema.Publication{ProjectID: projectID, AuthorID: userID, Title: "Saga", PublishedAt: &published, CreatedAt: now}
	require.NoError(t, db.Create(&publication).Error)
	require.NoError(t, db.Create(&schema.AssetBinding{UserID: userID, OwnedAssetID: asset.ID, ProjectID: &projectID, ProfileName: "Hero", CreatedAt: now}).Error)

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockChainGateway(ctrl)
	s := sweeper.NewOwnershipSweeper(sweeper.Config{BatchSize: 10, PoolSize: 2}, st, gateway, royalty.NewReconciler(st), nil, adapter.NewClock())

	owners := func(list ...string) {
		gateway.EXPECT().GetCurrentOwners(gomock.Any(), contract, "42", domain.ChainEthereumMainnet).Return(list, nil)
	}
	payee := func() *uuid.UUID {
		record, err := st.GetRoyalty(ctx, publication.ID, asset.ID)
		require.NoError(t, err)
		require.NotNil(t, record)
		return record.UserID
	}
	notifications := func() int {
		list, err := st.ListNotifications(ctx, userID, store.NotificationFilter{})
		require.NoError(t, err)
		return len(list)
	}

	// Initial run attributes the royalty to the holder
	owners(holder)
	result, err := s.Run(ctx, sweeper.TriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sweep.Verified)
	assert.Equal(t, 1, result.Royalty.Created)
	require.NotNil(t, payee())

	// Holder sold the token
	owners(stranger)
	result, err = s.Run(ctx, sweeper.TriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sweep.Lost)
	assert.Nil(t, payee())
	assert.Equal(t, 1, notifications())

	// Still lost, no new notification
	owners(stranger)
	result, err = s.Run(ctx, sweeper.TriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sweep.Lost)
	assert.Equal(t, 1, notifications())

	// Bought back
	owners(stranger, holder)
	result, err = s.Run(ctx, sweeper.TriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sweep.Regained)
	restored := payee()
	require.NotNil(t, restored)
	assert.Equal(t, userID, *restored)
	assert.Equal(t, 1, notifications())
}
