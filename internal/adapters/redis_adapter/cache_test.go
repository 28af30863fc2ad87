// internal/adapters/redis_adapter/cache_test.go
package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/sizopi-be/internal/adapters/redis_adapter"
	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/test/helpers"
	"github.com/ammerola/sizopi-be/test/mocks"
)

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	testRedis := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(testRedis.Client, 5*time.Minute, helpers.TestLogger())

	type habitat struct {
		Name     string `json:"nama"`
		Capacity int    `json:"kapasitas"`
	}

	require.NoError(t, cache.Set(ctx, "habitat:Savana", habitat{Name: "Savana", Capacity: 12}))

	var got habitat
	require.NoError(t, cache.Get(ctx, "habitat:Savana", &got))
	assert.Equal(t, habitat{Name: "Savana", Capacity: 12}, got)

	ttl := testRedis.Server.TTL("habitat:Savana")
	assert.Equal(t, 5*time.Minute, ttl)

	err := cache.Get(ctx, "habitat:Rawa", &got)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_SetWithTTL_Expires(t *testing.T) {
	ctx := context.Background()
	testRedis := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(testRedis.Client, time.Hour, helpers.TestLogger())

	require.NoError(t, cache.SetWithTTL(ctx, "k", "v", time.Second))
	testRedis.Server.FastForward(2 * time.Second)

	var got string
	assert.ErrorIs(t, cache.Get(ctx, "k", &got), redis_a.ErrCacheMiss)
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "adopters:top:5", redis_a.BuildKey(redis_a.PrefixTopAdopters, "5"))
	assert.Equal(t, "adopters:details", redis_a.BuildKey(redis_a.PrefixAdopterDetails))
}

func TestCachedAdopterRepository_TopAdopters(t *testing.T) {
	ctx := context.Background()
	top := helpers.CreateTestTopAdopters(3)

	t.Run("second_read_is_served_from_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockAdopterRepository(ctrl)
		next.EXPECT().TopAdopters(gomock.Any(), 3).Return(top, nil).Times(1)

		testRedis := helpers.SetupTestRedis(t)
		repo := redis_a.NewCachedAdopterRepository(next, redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger()), helpers.TestLogger())

		first, err := repo.TopAdopters(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, top, first)

		second, err := repo.TopAdopters(ctx, 3)
		require.NoError(t, err)
		require.Len(t, second, 3)
		for i := range top {
			assert.Equal(t, top[i].ID, second[i].ID)
			assert.Equal(t, top[i].Username, second[i].Username)
			assert.Equal(t, top[i].Rank, second[i].Rank)
			assert.True(t, top[i].TotalContribution.Equal(second[i].TotalContribution))
		}
		assert.True(t, testRedis.Server.Exists("adopters:top:3"))
	})

	t.Run("redis_outage_falls_through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockAdopterRepository(ctrl)
		next.EXPECT().TopAdopters(gomock.Any(), 3).Return(top, nil).Times(2)

		testRedis := helpers.SetupTestRedis(t)
		repo := redis_a.NewCachedAdopterRepository(next, redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger()), helpers.TestLogger())
		testRedis.Server.Close()

		for i := 0; i < 2; i++ {
			got, err := repo.TopAdopters(ctx, 3)
			require.NoError(t, err)
			assert.Len(t, got, 3)
		}
	})

	t.Run("errors_are_not_cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockAdopterRepository(ctrl)
		dbErr := &domain.Error{Kind: domain.KindConnectivity, Message: "connection refused"}
		gomock.InOrder(
			next.EXPECT().TopAdopters(gomock.Any(), 3).Return(nil, dbErr),
			next.EXPECT().TopAdopters(gomock.Any(), 3).Return(top, nil),
		)

		testRedis := helpers.SetupTestRedis(t)
		repo := redis_a.NewCachedAdopterRepository(next, redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger()), helpers.TestLogger())

		_, err := repo.TopAdopters(ctx, 3)
		assert.True(t, errors.Is(err, domain.ErrConnectivity))

		got, err := repo.TopAdopters(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestCachedAdopterRepository_GetAdopterWithDetails(t *testing.T) {
	ctx := context.Background()
	id := uuid.MustParse("1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c55")

	t.Run("caches_found_adopter", func(t *testing.T) {
		details := &domain.AdopterDetails{
			Adopter: domain.Adopter{ID: id, Username: "lestari", TotalContribution: decimal.NewFromInt(11_500_000)},
			Name:    "Yayasan Lestari Satwa",
			Type:    domain.AdopterOrganization,
		}

		ctrl := gomock.NewController(t)
		next := mocks.NewMockAdopterRepository(ctrl)
		next.EXPECT().GetAdopterWithDetails(gomock.Any(), id).Return(details, nil).Times(1)

		testRedis := helpers.SetupTestRedis(t)
		repo := redis_a.NewCachedAdopterRepository(next, redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger()), helpers.TestLogger())

		_, err := repo.GetAdopterWithDetails(ctx, id)
		require.NoError(t, err)

		got, err := repo.GetAdopterWithDetails(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Yayasan Lestari Satwa", got.Name)
		assert.Equal(t, domain.AdopterOrganization, got.Type)
		assert.True(t, got.TotalContribution.Equal(details.TotalContribution))
	})

	t.Run("misses_are_not_cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockAdopterRepository(ctrl)
		next.EXPECT().GetAdopterWithDetails(gomock.Any(), id).Return(nil, nil).Times(2)

		testRedis := helpers.SetupTestRedis(t)
		repo := redis_a.NewCachedAdopterRepository(next, redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger()), helpers.TestLogger())

		for i := 0; i < 2; i++ {
			got, err := repo.GetAdopterWithDetails(ctx, id)
			require.NoError(t, err)
			assert.Nil(t, got)
		}
	})
}

func TestCache_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	testRedis := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger())

	for _, key := range []string{"adopters:top:3", "adopters:top:10", "adopters:details:x"} {
		require.NoError(t, cache.Set(ctx, key, 1))
	}

	require.NoError(t, cache.DeletePrefix(ctx, redis_a.PrefixTopAdopters))

	assert.False(t, testRedis.Server.Exists("adopters:top:3"))
	assert.False(t, testRedis.Server.Exists("adopters:top:10"))
	assert.True(t, testRedis.Server.Exists("adopters:details:x"))
	assert.NoError(t, cache.DeletePrefix(ctx, redis_a.PrefixTopAdopters))
}

func TestCachedAdoptionRepository_Create(t *testing.T) {
	ctx := context.Background()
	adoption := helpers.CreateTestAdoption()
	detailsKey := "adopters:details:" + adoption.AdopterID.String()

	t.Run("new_adoption_drops_leaderboard_and_details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adopters := mocks.NewMockAdopterRepository(ctrl)
		adoptions := mocks.NewMockAdoptionRepository(ctrl)

		before := helpers.CreateTestTopAdopters(3)
		after := helpers.CreateTestTopAdopters(3)
		after[0].Username = "baru"
		gomock.InOrder(
			adopters.EXPECT().TopAdopters(gomock.Any(), 3).Return(before, nil),
			adoptions.EXPECT().Create(gomock.Any(), adoption).Return(adoption, nil),
			adopters.EXPECT().TopAdopters(gomock.Any(), 3).Return(after, nil),
		)

		testRedis := helpers.SetupTestRedis(t)
		cached := redis_a.NewCachedAdopterRepository(adopters, redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger()), helpers.TestLogger())
		repo := redis_a.NewCachedAdoptionRepository(adoptions, cached, helpers.TestLogger())
		require.NoError(t, testRedis.Server.Set(detailsKey, `{"nama":"lama"}`))

		_, err := cached.TopAdopters(ctx, 3)
		require.NoError(t, err)
		require.True(t, testRedis.Server.Exists("adopters:top:3"))

		_, err = repo.Create(ctx, adoption)
		require.NoError(t, err)
		assert.False(t, testRedis.Server.Exists("adopters:top:3"))
		assert.False(t, testRedis.Server.Exists(detailsKey))

		got, err := cached.TopAdopters(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "baru", got[0].Username)
	})

	t.Run("failed_write_keeps_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adoptions := mocks.NewMockAdoptionRepository(ctrl)
		adoptions.EXPECT().Create(gomock.Any(), adoption).
			Return(nil, domain.NewError(domain.KindValidation, "create", "kontribusi_finansial cannot be negative"))

		testRedis := helpers.SetupTestRedis(t)
		cached := redis_a.NewCachedAdopterRepository(mocks.NewMockAdopterRepository(ctrl), redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger()), helpers.TestLogger())
		repo := redis_a.NewCachedAdoptionRepository(adoptions, cached, helpers.TestLogger())
		require.NoError(t, testRedis.Server.Set("adopters:top:3", "[]"))

		_, err := repo.Create(ctx, adoption)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		assert.True(t, testRedis.Server.Exists("adopters:top:3"))
	})

	t.Run("redis_outage_does_not_fail_write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adoptions := mocks.NewMockAdoptionRepository(ctrl)
		adoptions.EXPECT().Create(gomock.Any(), adoption).Return(adoption, nil)

		testRedis := helpers.SetupTestRedis(t)
		cached := redis_a.NewCachedAdopterRepository(mocks.NewMockAdopterRepository(ctrl), redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger()), helpers.TestLogger())
		repo := redis_a.NewCachedAdoptionRepository(adoptions, cached, helpers.TestLogger())
		testRedis.Server.Close()

		created, err := repo.Create(ctx, adoption)
		require.NoError(t, err)
		assert.Same(t, adoption, created)
	})
}
