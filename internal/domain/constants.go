package domain

// ==== Room Constants ====

// DefaultRoomID is the identifier of the permanent room every joining client
// starts in. It is reserved: name slugs that collide with it fall back to a
// generated room id.
const DefaultRoomID = "general"

// DefaultRoomName is the display name of the permanent room
const DefaultRoomName = "general"

// MaxRoomNameLen is the maximum room display name length in runes
const MaxRoomNameLen = 80

// ==== History Constants ====

// MaxHistorySize is the maximum number of messages retained per room
const MaxHistorySize = 500

// ==== WebSocket Constants ====

// MaxMessageSize is the maximum allowed WebSocket frame size in bytes
const MaxMessageSize = 4096

// ==== Rate Limit Constants ====

const (
	// DefaultRateLimitAPI is the default rate limit for API endpoints (requests/sec)
	DefaultRateLimitAPI = 10

	// DefaultRateLimitWS is the default rate limit for WebSocket connections (req/sec)
	DefaultRateLimitWS = 5
)
