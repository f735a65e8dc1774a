package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinQuest_Go/internal/auth"
	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/redeem"
	"github.com/osse101/CoinQuest_Go/internal/testing/leaktest"
)

func authedRequest(ctx context.Context, path, authID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return req.WithContext(auth.WithIdentity(ctx, &auth.Identity{AuthID: authID}))
}

func TestHandler_StreamsOwnEventsUntilDisconnect(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	leaktest.CheckNoGoroutineLeak(t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		rec := httptest.NewRecorder()
		done := make(chan struct{})
		go func() {
			defer close(done)
			Handler(hub, time.Hour)(rec, authedRequest(ctx, "/api/v1/events", "alice"))
		}()

		require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

		require.NoError(t, bus.Publish(context.Background(),
			event.NewWalletUpdatedEvent("u-1", "alice", 75, 25, domain.SourceAd)))
		require.NoError(t, bus.Publish(context.Background(),
			event.NewWalletUpdatedEvent("u-2", "bob", 999, 25, domain.SourceAd)))
		time.Sleep(50 * time.Millisecond)

		cancel()
		<-done

		body := rec.Body.String()
		assert.Equal(t, ContentTypeEventStream, rec.Header().Get(HeaderContentType))
		assert.Contains(t, body, "event: connected")
		assert.Contains(t, body, "event: wallet.updated")
		assert.Contains(t, body, `"balance":75`)
		assert.NotContains(t, body, `"balance":999`)
	})

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHandler_RequiresIdentity(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	rec := httptest.NewRecorder()
	Handler(hub, time.Second)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_EndsWhenHubStops(t *testing.T) {
	hub := NewHub()
	hub.Start()

	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		Handler(hub, time.Hour)(rec, authedRequest(context.Background(), "/api/v1/events", "alice"))
	}()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler still running after hub stop")
	}
}

func TestStreamCountdown_StopsWhenConfirmable(t *testing.T) {
	steps := []*redeem.SessionView{
		{State: redeem.StateStep1, Step: 1, RemainingSeconds: 10},
		{State: redeem.StateStep2, Step: 2, RemainingSeconds: 10},
		{State: redeem.StateStep3, Step: 3, RemainingSeconds: 1},
		{State: redeem.StateStep3, Step: 3, CanConfirm: true},
	}
	var calls int32
	view := func(ctx context.Context, now time.Time) (*redeem.SessionView, error) {
		i := atomic.AddInt32(&calls, 1) - 1
		return steps[i], nil
	}

	leaktest.CheckNoGoroutineLeak(t, func() {
		rec := httptest.NewRecorder()
		StreamCountdown(rec, authedRequest(context.Background(), "/countdown", "alice"), view, 5*time.Millisecond)

		assert.Equal(t, int32(len(steps)), atomic.LoadInt32(&calls))
		assert.Equal(t, len(steps), strings.Count(rec.Body.String(), "event: redeem.countdown"))
		assert.Contains(t, rec.Body.String(), `"can_confirm":true`)
	})
}

func TestStreamCountdown_StopsOnDisconnect(t *testing.T) {
	view := func(ctx context.Context, now time.Time) (*redeem.SessionView, error) {
		return &redeem.SessionView{State: redeem.StateStep1, Step: 1, RemainingSeconds: 10}, nil
	}

	leaktest.CheckNoGoroutineLeak(t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			StreamCountdown(httptest.NewRecorder(), authedRequest(ctx, "/countdown", "alice"), view, 5*time.Millisecond)
		}()

		time.Sleep(30 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("countdown kept running after disconnect")
		}
	})
}

func TestStreamCountdown_StopsWhenCancelled(t *testing.T) {
	view := func(ctx context.Context, now time.Time) (*redeem.SessionView, error) {
		return &redeem.SessionView{State: redeem.StateIdle}, nil
	}
	rec := httptest.NewRecorder()
	StreamCountdown(rec, authedRequest(context.Background(), "/countdown", "alice"), view, time.Hour)
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "event: redeem.countdown"))
}
