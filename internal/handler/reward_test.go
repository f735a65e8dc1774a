package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoinQuest_Go/internal/cooldown"
	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/reward"
	"github.com/osse101/CoinQuest_Go/mocks/servicemocks"
)

func TestHandleClaim(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*servicemocks.MockRewardService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: ClaimRequest{Action: "video", ViewSessionID: "view-1", IdempotencyKey: "key-0001"},
			setupMocks: func(m *servicemocks.MockRewardService) {
				m.On("Claim", mock.Anything, reward.ClaimRequest{
					AuthID: testAuthID, Action: domain.ActionVideo, ViewSessionID: "view-1", IdempotencyKey: "key-0001",
				}).Return(&reward.ClaimResult{Action: domain.ActionVideo, Amount: 50, Balance: 150}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"balance":150`,
		},
		{
			name: "Ad with slot",
			body: ClaimRequest{Action: "ad", Slot: "ad3", IdempotencyKey: "key-0002"},
			setupMocks: func(m *servicemocks.MockRewardService) {
				m.On("Claim", mock.Anything, mock.MatchedBy(func(r reward.ClaimRequest) bool {
					return r.Action == domain.ActionAd && r.Slot == "ad3"
				})).Return(&reward.ClaimResult{Action: domain.ActionAd, Slot: "ad3", Amount: 25, Balance: 25}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"slot":"ad3"`,
		},
		{
			name:           "Ad without slot",
			body:           ClaimRequest{Action: "ad", IdempotencyKey: "key-0003"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"slot":"This field is required"`,
		},
		{
			name:           "Unknown slot",
			body:           ClaimRequest{Action: "ad", Slot: "ad9", IdempotencyKey: "key-0003"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"slot"`,
		},
		{
			name:           "Video without view session",
			body:           ClaimRequest{Action: "video", IdempotencyKey: "key-0008"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"viewsessionid":"This field is required"`,
		},
		{
			name: "Video view already rewarded",
			body: ClaimRequest{Action: "video", ViewSessionID: "view-1", IdempotencyKey: "key-0009"},
			setupMocks: func(m *servicemocks.MockRewardService) {
				m.On("Claim", mock.Anything, mock.Anything).Return(nil, domain.ErrVideoViewClaimed)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgVideoViewClaimedErr,
		},
		{
			name: "Stale video view",
			body: ClaimRequest{Action: "video", ViewSessionID: "view-0", IdempotencyKey: "key-0010"},
			setupMocks: func(m *servicemocks.MockRewardService) {
				m.On("Claim", mock.Anything, mock.Anything).Return(nil, domain.ErrVideoViewNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgVideoViewNotFoundErr,
		},
		{
			name:           "Unknown action",
			body:           ClaimRequest{Action: "lottery", IdempotencyKey: "key-0004"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"action"`,
		},
		{
			name:           "Missing idempotency key",
			body:           ClaimRequest{Action: "spin"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"idempotencykey"`,
		},
		{
			name:           "Client sends amount",
			body:           `{"action":"video","idempotency_key":"key-0005","amount":100000}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "On cooldown",
			body: ClaimRequest{Action: "daily_reward", IdempotencyKey: "key-0006"},
			setupMocks: func(m *servicemocks.MockRewardService) {
				m.On("Claim", mock.Anything, mock.Anything).
					Return(nil, cooldown.ErrOnCooldown{Action: "daily_reward", Remaining: 2 * time.Hour})
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `"retry_after_seconds":7200`,
		},
		{
			name: "Backend unavailable",
			body: ClaimRequest{Action: "spin", IdempotencyKey: "key-0007"},
			setupMocks: func(m *servicemocks.MockRewardService) {
				m.On("Claim", mock.Anything, mock.Anything).Return(nil, domain.ErrBackendUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := servicemocks.NewMockRewardService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			h := NewRewardHandler(svc)

			rec := httptest.NewRecorder()
			h.HandleClaim(rec, newRequest(t, http.MethodPost, "/api/v1/rewards/claim", tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleClaim_Unauthenticated(t *testing.T) {
	h := NewRewardHandler(servicemocks.NewMockRewardService(t))
	rec := httptest.NewRecorder()
	h.HandleClaim(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rewards/claim", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleStartVideo(t *testing.T) {
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := servicemocks.NewMockRewardService(t)
	svc.On("StartVideo", mock.Anything, testAuthID).Return(&reward.VideoSession{
		VideoView:   domain.VideoView{ID: "view-1", StartedAt: started},
		ClaimableAt: started.Add(30 * time.Second),
	}, nil)

	rec := httptest.NewRecorder()
	NewRewardHandler(svc).HandleStartVideo(rec, newRequest(t, http.MethodPost, "/api/v1/rewards/video/sessions", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"view_session_id":"view-1"`)
	assert.Contains(t, rec.Body.String(), `"claimable_at":"2024-03-01T12:00:30Z"`)
}

func TestHandleGetWheel(t *testing.T) {
	svc := servicemocks.NewMockRewardService(t)
	svc.On("WheelSegments").Return(reward.WheelSegments())

	rec := httptest.NewRecorder()
	NewRewardHandler(svc).HandleGetWheel(rec, newRequest(t, http.MethodGet, "/api/v1/rewards/wheel", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var segments []reward.WheelSegment
	decodeBody(t, rec, &segments)
	assert.Len(t, segments, len(reward.SpinValues())+1)
	assert.False(t, segments[len(segments)-1].Drawable)
}
