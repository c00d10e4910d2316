//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"flashsale/internal/infra"
	"flashsale/internal/infra/cache"
	"flashsale/internal/pkg/clock"
	"flashsale/internal/pkg/config"
	"flashsale/internal/usecase"
	"flashsale/internal/usecase/readmodel"
	usecasemock "flashsale/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	return val, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) SetNX(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; ok {
		return false, nil
	}
	s.data[key] = value
	return true, nil
}

func (s *memStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	return val, ok
}

func shopCacheConfig(strategy string) config.CacheConfig {
	return config.CacheConfig{
		Strategy:       strategy,
		EntityTTL:      30 * time.Minute,
		NullTTL:        2 * time.Minute,
		RebuildLockTTL: 10 * time.Second,
		RetryDelay:     time.Millisecond,
		MaxRetries:     20,
		RebuildWorkers: 10,
	}
}

func newShopUseCase(t *testing.T, strategy string) (usecase.ShopUseCase, *usecasemock.MockShopRepository, *memStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := usecasemock.NewMockShopRepository(ctrl)
	store := newMemStore()
	client := cache.NewClientWithStore(store, clock.NewRealClock(), shopCacheConfig(strategy))
	return usecase.NewShopUseCase(repo, client, strategy), repo, store
}

func TestShopUseCase_GetShop_PassThroughPopulatesCache(t *testing.T) {
	uc, repo, store := newShopUseCase(t, "passthrough")
	shop := &readmodel.ShopRM{ID: 1, Name: "Cafe 103", TypeID: 1, Address: "1 Main St", AvgPrice: 80, Score: 37}

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(shop, nil)

	got, err := uc.GetShop(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, shop, got)

	raw, ok := store.get("cache:shop:1")
	require.True(t, ok)
	var cached readmodel.ShopRM
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, *shop, cached)

	// Second read is served from cache; the repo sees no further calls.
	got, err = uc.GetShop(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, shop, got)
}

func TestShopUseCase_GetShop_MissingShopCachesNullMarker(t *testing.T) {
	uc, repo, store := newShopUseCase(t, "passthrough")

	notFound := infra.WrapRepoErr(infra.KindNotFound, "shop not found", nil)
	repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, notFound)

	_, err := uc.GetShop(context.Background(), 9)
	require.ErrorIs(t, err, usecase.ErrShopNotFound)

	raw, ok := store.get("cache:shop:9")
	require.True(t, ok)
	assert.Empty(t, raw)

	// Repeated lookup stops at the null marker.
	_, err = uc.GetShop(context.Background(), 9)
	require.ErrorIs(t, err, usecase.ErrShopNotFound)
}

func TestShopUseCase_GetShop_MutexRebuildsOnce(t *testing.T) {
	uc, repo, _ := newShopUseCase(t, "mutex")
	shop := &readmodel.ShopRM{ID: 2, Name: "Noodle Bar", TypeID: 2, Address: "2 High St", AvgPrice: 35, Score: 42}

	repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(shop, nil).Times(1)

	var wg sync.WaitGroup
	results := make([]*readmodel.ShopRM, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = uc.GetShop(context.Background(), 2)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, shop, results[i])
	}
}

func TestShopUseCase_GetShop_LogicalExpireUnwarmedKeyIsNotFound(t *testing.T) {
	uc, _, _ := newShopUseCase(t, "logical")

	_, err := uc.GetShop(context.Background(), 3)
	require.ErrorIs(t, err, usecase.ErrShopNotFound)
}

func TestShopUseCase_WarmShopCacheThenGet(t *testing.T) {
	uc, repo, store := newShopUseCase(t, "logical")
	shop := &readmodel.ShopRM{ID: 4, Name: "Tea House", TypeID: 1, Address: "4 Lake Rd", AvgPrice: 50, Score: 45}

	repo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(shop, nil)

	require.NoError(t, uc.WarmShopCache(context.Background(), 4, 30*time.Minute))
	_, ok := store.get("cache:shop:4")
	require.True(t, ok)

	got, err := uc.GetShop(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, shop, got)
}

func TestShopUseCase_UpdateShop_InvalidatesCache(t *testing.T) {
	uc, repo, store := newShopUseCase(t, "passthrough")
	shop := &readmodel.ShopRM{ID: 5, Name: "Bistro", TypeID: 3, Address: "5 Park Ave", AvgPrice: 120, Score: 48}

	require.NoError(t, store.Set(context.Background(), "cache:shop:5", "stale", 0))
	repo.EXPECT().Update(gomock.Any(), shop).Return(nil)

	require.NoError(t, uc.UpdateShop(context.Background(), shop))

	_, ok := store.get("cache:shop:5")
	assert.False(t, ok)
}

func TestShopUseCase_UpdateShop_RequiresID(t *testing.T) {
	uc, _, _ := newShopUseCase(t, "passthrough")

	err := uc.UpdateShop(context.Background(), &readmodel.ShopRM{Name: "No ID"})
	require.ErrorIs(t, err, usecase.ErrShopIDRequired)
}

func TestShopUseCase_UpdateShop_MissingRow(t *testing.T) {
	uc, repo, _ := newShopUseCase(t, "passthrough")
	shop := &readmodel.ShopRM{ID: 6, Name: "Gone"}

	notFound := infra.WrapRepoErr(infra.KindNotFound, "shop not found", nil)
	repo.EXPECT().Update(gomock.Any(), shop).Return(notFound)

	require.ErrorIs(t, uc.UpdateShop(context.Background(), shop), usecase.ErrShopNotFound)
}
