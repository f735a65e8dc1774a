package sse

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/auth"
	"github.com/osse101/CoinQuest_Go/internal/logger"
	"github.com/osse101/CoinQuest_Go/internal/redeem"
)

// Handler streams wallet and redeem events for the authenticated user
func Handler(hub *Hub, keepalive time.Duration) http.HandlerFunc {
	if keepalive <= 0 {
		keepalive = DefaultKeepaliveInterval
	}

	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		authID := auth.AuthIDFromContext(r.Context())
		if authID == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		client := hub.Register(authID)
		if client == nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info(LogMsgClientConnected, "client_id", client.ID, "auth_id", authID)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		writeStreamHeaders(w)
		if err := writeEvent(w, flusher, NewEvent(EventTypeConnected, map[string]string{"client_id": client.ID})); err != nil {
			return
		}

		ticker := time.NewTicker(keepalive)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if err := writeEvent(w, flusher, evt); err != nil {
					log.Warn(LogMsgWriteError, "error", err)
					return
				}

			case <-ticker.C:
				if err := writeEvent(w, flusher, Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}); err != nil {
					return
				}
			}
		}
	}
}

// ViewFunc renders the current state of a redeem session
type ViewFunc func(ctx context.Context, now time.Time) (*redeem.SessionView, error)

// StreamCountdown sends one countdown tick per interval until the flow can be confirmed,
// leaves the timed steps, or the client disconnects. The first tick is sent immediately.
func StreamCountdown(w http.ResponseWriter, r *http.Request, view ViewFunc, interval time.Duration) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
		return
	}
	if interval <= 0 {
		interval = CountdownInterval
	}

	ctx := r.Context()
	log := logger.FromContext(ctx)

	writeStreamHeaders(w)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	now := time.Now()
	for {
		v, err := view(ctx, now)
		if err != nil {
			log.Warn(LogMsgCountdownError, "error", err)
			return
		}
		if err := writeEvent(w, flusher, NewEvent(EventTypeCountdown, v)); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return
		}
		if countdownDone(v) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case now = <-ticker.C:
		}
	}
}

func countdownDone(v *redeem.SessionView) bool {
	return v.CanConfirm || v.State == redeem.StateIdle || v.State == redeem.StateReady
}

func writeStreamHeaders(w http.ResponseWriter) {
	w.Header().Set(HeaderContentType, ContentTypeEventStream)
	w.Header().Set(HeaderCacheControl, "no-cache")
	w.Header().Set(HeaderConnection, "keep-alive")
	w.Header().Set(HeaderAccelBuffering, "no")
	w.WriteHeader(http.StatusOK)
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, evt Event) error {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
