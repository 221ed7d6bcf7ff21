package offices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/dto"
	"github.com/GlebRadaev/snackvote/internal/service/officeservice"
	"github.com/GlebRadaev/snackvote/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OfficeHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

var nyc = map[string]string{"office": "nyc"}

func TestGetOfficeHandler(t *testing.T) {
	handler, service := NewMock(t)
	czar := "u9"

	service.EXPECT().GetOffice(gomock.Any(), "nyc").Return(&domain.Office{
		ID:             "nyc",
		Name:           "New York",
		Czar:           &czar,
		TippingEnabled: true,
		CurrentVotingPeriod: domain.VotingPeriod{
			Status: domain.PeriodActive,
		},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetOffice(rr, newRequest(http.MethodGet, "/api/offices/nyc", "", nyc))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body dto.OfficeResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "New York", body.Name)
	require.NotNil(t, body.Czar)
	assert.Equal(t, "u9", *body.Czar)
	assert.Equal(t, "active", body.CurrentVotingPeriod.Status)

	service.EXPECT().GetOffice(gomock.Any(), "nyc").Return(nil, officeservice.ErrOfficeNotFound)
	rr = httptest.NewRecorder()
	handler.GetOffice(rr, newRequest(http.MethodGet, "/api/offices/nyc", "", nyc))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLeaderboardHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.LeaderboardEntryDTO
	}{
		{
			name:  "Ranked entries",
			query: "?limit=2",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), "nyc", 2).Return([]domain.LeaderboardEntry{
					{Product: domain.Product{ID: "p1", Name: "Chips"}, Votes: 5, Voters: 3},
					{Product: domain.Product{ID: "p2", Name: "Apples"}, Votes: 5, Voters: 1},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.LeaderboardEntryDTO{
				{Rank: 1, Product: dto.ProductDTO{ID: "p1", Name: "Chips", Tags: []string{}}, Votes: 5, Voters: 3},
				{Rank: 2, Product: dto.ProductDTO{ID: "p2", Name: "Apples", Tags: []string{}}, Votes: 5, Voters: 1},
			},
		},
		{
			name: "Default limit",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), "nyc", 0).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.LeaderboardEntryDTO{},
		},
		{
			name:         "Non numeric limit",
			query:        "?limit=ten",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Limit out of range",
			query: "?limit=1000",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), "nyc", 1000).Return(nil, officeservice.ErrInvalidLimit)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Leaderboard(rr, newRequest(http.MethodGet, "/api/offices/nyc/leaderboard"+tt.query, "", nyc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var body []dto.LeaderboardEntryDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestProductVotesHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ProductVotes(gomock.Any(), "p1", "nyc").Return(&domain.ProductVotes{
		ProductID: "p1",
		OfficeID:  "nyc",
		Votes:     3,
		UserVotes: map[string]int{"u1": 2, "u2": 1},
	}, nil)

	rr := httptest.NewRecorder()
	handler.ProductVotes(rr, newRequest(http.MethodGet, "/api/offices/nyc/products/p1/votes", "",
		map[string]string{"office": "nyc", "productID": "p1"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body dto.ProductVotesResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, 3, body.Votes)
	assert.Equal(t, map[string]int{"u1": 2, "u2": 1}, body.UserVotes)
}

func TestSetCzarHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Czar assigned",
			body: `{"user_id":"u9"}`,
			prepareMock: func() {
				service.EXPECT().SetCzar(gomock.Any(), "nyc", "u9").Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:          "Missing user",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Unknown user",
			body: `{"user_id":"ghost"}`,
			prepareMock: func() {
				service.EXPECT().SetCzar(gomock.Any(), "nyc", "ghost").Return(officeservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: officeservice.ErrUserNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.SetCzar(rr, newRequest(http.MethodPut, "/api/admin/offices/nyc/czar", tt.body, nyc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestSetTippingHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SetTipping(gomock.Any(), "nyc", true).Return(nil)
	rr := httptest.NewRecorder()
	handler.SetTipping(rr, newRequest(http.MethodPut, "/api/admin/offices/nyc/tipping", `{"enabled":true}`, nyc))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	handler.SetTipping(rr, newRequest(http.MethodPut, "/api/admin/offices/nyc/tipping", `{"enabled":"yes"}`, nyc))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStartVotingPeriodHandler(t *testing.T) {
	handler, service := NewMock(t)
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Period started",
			body: `{"end_date":"2025-10-08T00:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().StartVotingPeriod(gomock.Any(), "nyc", end).
					Return(&domain.VotingPeriod{StartDate: start, EndDate: end, Status: domain.PeriodActive}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "End date in the past",
			body: `{"end_date":"2025-10-08T00:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().StartVotingPeriod(gomock.Any(), "nyc", end).Return(nil, officeservice.ErrInvalidEndDate)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid date",
			body:         `{"end_date":"next week"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"end_date":"2025-10-08T00:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().StartVotingPeriod(gomock.Any(), "nyc", end).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.StartVotingPeriod(rr, newRequest(http.MethodPost, "/api/admin/offices/nyc/period", tt.body, nyc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.VotingPeriodDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, dto.VotingPeriodDTO{StartDate: start, EndDate: end, Status: "active"}, body)
			}
		})
	}
}

func TestCloseVotingPeriodHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CloseVotingPeriod(gomock.Any(), "nyc").Return(nil)
	rr := httptest.NewRecorder()
	handler.CloseVotingPeriod(rr, newRequest(http.MethodPost, "/api/admin/offices/nyc/period/close", "", nyc))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	service.EXPECT().CloseVotingPeriod(gomock.Any(), "nyc").Return(officeservice.ErrOfficeNotFound)
	rr = httptest.NewRecorder()
	handler.CloseVotingPeriod(rr, newRequest(http.MethodPost, "/api/admin/offices/nyc/period/close", "", nyc))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
