package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zvrva/flightlog/internal/domain"
)

// MockStatsUseCase is a mock implementation of stats.UseCase
type MockStatsUseCase struct {
	mock.Mock
}

func (m *MockStatsUseCase) Compute(ctx context.Context, ownerID string) (*domain.Stats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func TestStatsHandler_get(t *testing.T) {
	mockService := &MockStatsUseCase{}
	handler := NewStatsHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/stats", nil)
	c.Request.Header.Set("X-Owner-ID", "user-1")

	view := &domain.Stats{
		TotalFlights:    2,
		AirportsVisited: 3,
		AirlinesFlown:   1,
		TopAirlines:     []domain.AirlineCount{{Airline: "Lufthansa (LH/DLH)", Count: 2, Percentage: 100}},
		MonthlyActivity: []domain.MonthCount{{Month: "Mar", Count: 2}},
	}
	mockService.On("Compute", c.Request.Context(), "user-1").Return(view, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalFlights":2`)
	assert.Contains(t, w.Body.String(), `"month":"Mar"`)

	mockService.AssertExpectations(t)
}

func TestStatsHandler_get_missingOwner(t *testing.T) {
	mockService := &MockStatsUseCase{}
	handler := NewStatsHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/stats", nil)

	handler.get(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Compute")
}

func TestStatsHandler_get_readFailure(t *testing.T) {
	mockService := &MockStatsUseCase{}
	handler := NewStatsHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/stats", nil)
	c.Request.Header.Set("X-Owner-ID", "user-1")

	mockService.On("Compute", c.Request.Context(), "user-1").Return(nil, assert.AnError)

	handler.get(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	mockService.AssertExpectations(t)
}
