package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the hub's inbound channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// DefaultKeepaliveInterval is used when no interval is configured
	DefaultKeepaliveInterval = 15 * time.Second

	// CountdownInterval is the tick rate of redeem countdown streams
	CountdownInterval = time.Second
)

// Event types for SSE
const (
	EventTypeConnected     = "connected"
	EventTypeKeepalive     = "keepalive"
	EventTypeWalletUpdated = "wallet.updated"
	EventTypeRedeemUpdated = "redeem.updated"
	EventTypeCountdown     = "redeem.countdown"
)

// Response headers
const (
	HeaderContentType    = "Content-Type"
	HeaderCacheControl   = "Cache-Control"
	HeaderConnection     = "Connection"
	HeaderAccelBuffering = "X-Accel-Buffering"

	ContentTypeEventStream = "text/event-stream"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "streaming unsupported"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE event dropped, buffer full"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgCountdownError     = "Countdown stream stopped on error"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
