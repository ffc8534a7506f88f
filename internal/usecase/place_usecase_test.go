package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/places-service/internal/domain"
	apperrors "github.com/places-service/internal/pkg/errors"
	"github.com/places-service/internal/usecase"
	"github.com/places-service/internal/usecase/dto"
)

func newPlaceUC(placeRepo *MockPlaceRepository, cacheRepo *MockCacheRepository) *usecase.PlaceUseCase {
	if cacheRepo == nil {
		return usecase.NewPlaceUseCase(placeRepo, nil, zap.NewNop(), 5*time.Minute, 5*time.Minute)
	}
	return usecase.NewPlaceUseCase(placeRepo, cacheRepo, zap.NewNop(), 5*time.Minute, 5*time.Minute)
}

func TestPlaceUseCase_FindWithinRadius(t *testing.T) {
	ctx := context.Background()

	t.Run("returns places ordered by the repository", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("GetByZipcode", ctx, "10115").Return(placeMitte, nil)
		placeRepo.On("FindWithinRadius", ctx, *placeMitte.Lat, *placeMitte.Lon, 5.0).Return([]*domain.PlaceWithDistance{
			{Name: "Berlin", Zipcode: "10115", Distance: 0},
			{Name: "Berlin", Zipcode: "10117", Distance: 1.71},
		}, nil)

		uc := newPlaceUC(placeRepo, nil)
		resp, err := uc.FindWithinRadius(ctx, dto.RadiusRequest{Zipcode: "10115", RadiusKm: 5})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "10115", resp.Places[0].Zipcode)
	})

	t.Run("rejects out-of-range radius before touching the repository", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newPlaceUC(placeRepo, nil)

		for _, radius := range []float64{0, -1, 1001} {
			_, err := uc.FindWithinRadius(ctx, dto.RadiusRequest{Zipcode: "10115", RadiusKm: radius})
			require.Error(t, err)
			appErr, ok := err.(*apperrors.AppError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		}
		placeRepo.AssertNotCalled(t, "GetByZipcode")
	})

	t.Run("unknown center zipcode is not found", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("GetByZipcode", ctx, "99999").Return(nil, nil)

		uc := newPlaceUC(placeRepo, nil)
		_, err := uc.FindWithinRadius(ctx, dto.RadiusRequest{Zipcode: "99999", RadiusKm: 5})
		assert.Equal(t, apperrors.ErrPlaceNotFound, err)
	})

	t.Run("center without coordinates is not found, not an internal error", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("GetByZipcode", ctx, "10115").Return(&domain.Place{
			ID:      1,
			Zipcode: "10115",
			Name:    "Berlin",
		}, nil)

		uc := newPlaceUC(placeRepo, nil)
		_, err := uc.FindWithinRadius(ctx, dto.RadiusRequest{Zipcode: "10115", RadiusKm: 5})
		assert.Equal(t, apperrors.ErrPlaceNotFound, err)
		placeRepo.AssertNotCalled(t, "FindWithinRadius")
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		cached, err := json.Marshal(dto.RadiusResponse{
			Places: []*domain.PlaceWithDistance{{Name: "Berlin", Zipcode: "10115", Distance: 0}},
			Total:  1,
		})
		require.NoError(t, err)

		placeRepo := &MockPlaceRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", ctx, "radius:10115:5").Return(cached, nil)

		uc := newPlaceUC(placeRepo, cacheRepo)
		resp, err := uc.FindWithinRadius(ctx, dto.RadiusRequest{Zipcode: "10115", RadiusKm: 5})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		placeRepo.AssertNotCalled(t, "GetByZipcode")
	})

	t.Run("cache miss stores the response", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", ctx, "radius:10115:5").Return(nil, nil)
		cacheRepo.On("Set", ctx, "radius:10115:5", mock.Anything, 5*time.Minute).Return(nil)
		placeRepo.On("GetByZipcode", ctx, "10115").Return(placeMitte, nil)
		placeRepo.On("FindWithinRadius", ctx, *placeMitte.Lat, *placeMitte.Lon, 5.0).Return([]*domain.PlaceWithDistance{}, nil)

		uc := newPlaceUC(placeRepo, cacheRepo)
		resp, err := uc.FindWithinRadius(ctx, dto.RadiusRequest{Zipcode: "10115", RadiusKm: 5})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		cacheRepo.AssertCalled(t, "Set", ctx, "radius:10115:5", mock.Anything, 5*time.Minute)
	})
}

func TestPlaceUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("zipcode-prefixed query splits into zipcode and name", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("Search", ctx, "10115", "Berlin", 50).Return([]*domain.Place{placeMitte}, nil)

		uc := newPlaceUC(placeRepo, nil)
		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "10115 Berlin"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		placeRepo.AssertCalled(t, "Search", ctx, "10115", "Berlin", 50)
	})

	t.Run("plain text query searches name and zipcode", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("Search", ctx, "", "Berlin", 50).Return([]*domain.Place{placeMitte, placeUnterDenLinden}, nil)

		uc := newPlaceUC(placeRepo, nil)
		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Berlin"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("bare digits query is not split", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("Search", ctx, "", "10115", 50).Return([]*domain.Place{placeMitte}, nil)

		uc := newPlaceUC(placeRepo, nil)
		_, err := uc.Search(ctx, dto.SearchRequest{Query: "10115"})
		require.NoError(t, err)
		placeRepo.AssertCalled(t, "Search", ctx, "", "10115", 50)
	})

	t.Run("explicit limit overrides the default", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("Search", ctx, "", "Berlin", 5).Return([]*domain.Place{}, nil)

		uc := newPlaceUC(placeRepo, nil)
		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Berlin", Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
	})
}

func TestPlaceUseCase_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("zipcode and name lookup", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("GetByZipcodeAndName", ctx, "10115", "Berlin").Return(placeMitte, nil)

		uc := newPlaceUC(placeRepo, nil)
		place, err := uc.GetByZipcodeAndName(ctx, dto.PlaceIDRequest{Zipcode: "10115", City: "Berlin"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), place.ID)
	})

	t.Run("missing pair is not found", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("GetByZipcodeAndName", ctx, "10115", "Hamburg").Return(nil, nil)

		uc := newPlaceUC(placeRepo, nil)
		_, err := uc.GetByZipcodeAndName(ctx, dto.PlaceIDRequest{Zipcode: "10115", City: "Hamburg"})
		assert.Equal(t, apperrors.ErrPlaceNotFound, err)
	})

	t.Run("id lookup", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("GetByID", ctx, int64(1)).Return(placeMitte, nil)

		uc := newPlaceUC(placeRepo, nil)
		place, err := uc.GetByID(ctx, int64(1))
		require.NoError(t, err)
		assert.Equal(t, "10115", place.Zipcode)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("GetByID", ctx, int64(404)).Return(nil, nil)

		uc := newPlaceUC(placeRepo, nil)
		_, err := uc.GetByID(ctx, int64(404))
		assert.Equal(t, apperrors.ErrPlaceNotFound, err)
	})
}
