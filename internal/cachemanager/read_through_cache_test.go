package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCacheManager struct {
	mock.Mock
}

func (m *mockCacheManager) Get(ctx context.Context, key string) (cachedCard, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(cachedCard), args.Bool(1)
}

func (m *mockCacheManager) Set(ctx context.Context, key string, value cachedCard, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *mockCacheManager) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *mockCacheManager) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func loadCard(calls *int) func(ctx context.Context, name string) (cachedCard, error) {
	return func(ctx context.Context, name string) (cachedCard, error) {
		*calls++
		return cachedCard{Name: name}, nil
	}
}

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	managerMock := &mockCacheManager{}
	calls := 0

	rtc := NewReadThroughCache[string, cachedCard, string](managerMock, loadCard(&calls), true)

	got, err := rtc.Get(context.Background(), "key", "eevee", time.Minute)
	require.NoError(t, err)
	require.Equal(t, cachedCard{Name: "eevee"}, got)
	require.Equal(t, 1, calls)
	managerMock.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestReadThroughCache_Get_NilCacheSkips(t *testing.T) {
	calls := 0
	rtc := NewReadThroughCache[string, cachedCard, string](nil, loadCard(&calls), false)

	_, err := rtc.Get(context.Background(), "key", "eevee", time.Minute)
	require.NoError(t, err)
	_, err = rtc.Get(context.Background(), "key", "eevee", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_Get_CacheHit(t *testing.T) {
	managerMock := &mockCacheManager{}
	managerMock.On("Get", mock.Anything, "key").Return(cachedCard{Name: "cached"}, true)
	calls := 0

	rtc := NewReadThroughCache[string, cachedCard, string](managerMock, loadCard(&calls), false)

	got, err := rtc.Get(context.Background(), "key", "eevee", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", got.Name)
	require.Zero(t, calls)
	managerMock.AssertExpectations(t)
}

func TestReadThroughCache_Get_CacheMissStores(t *testing.T) {
	managerMock := &mockCacheManager{}
	managerMock.On("Get", mock.Anything, "key").Return(cachedCard{}, false)
	managerMock.On("Set", mock.Anything, "key", cachedCard{Name: "eevee"}, time.Minute).Return()
	calls := 0

	rtc := NewReadThroughCache[string, cachedCard, string](managerMock, loadCard(&calls), false)

	got, err := rtc.Get(context.Background(), "key", "eevee", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "eevee", got.Name)
	require.Equal(t, 1, calls)
	managerMock.AssertExpectations(t)
}

func TestReadThroughCache_Get_ErrorNotStored(t *testing.T) {
	managerMock := &mockCacheManager{}
	managerMock.On("Get", mock.Anything, "key").Return(cachedCard{}, false)
	boom := errors.New("boom")

	rtc := NewReadThroughCache[string, cachedCard, string](managerMock,
		func(ctx context.Context, name string) (cachedCard, error) {
			return cachedCard{}, boom
		}, false)

	_, err := rtc.Get(context.Background(), "key", "eevee", time.Minute)
	require.ErrorIs(t, err, boom)
	managerMock.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_Refresh_BypassesCachedValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, cachedCard]("records", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "key", cachedCard{Name: "stale"}, time.Minute)
	calls := 0

	rtc := NewReadThroughCache[string, cachedCard, string](cache, loadCard(&calls), false)

	got, err := rtc.Refresh(context.Background(), "key", "fresh", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "fresh", got.Name)

	got, err = rtc.Get(context.Background(), "key", "ignored", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "fresh", got.Name)
	require.Equal(t, 1, calls)
}
