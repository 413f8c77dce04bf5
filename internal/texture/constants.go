package texture

import "time"

// ForestPrompt describes the decorative border image requested from the texture service
const ForestPrompt = "A top-down pixel art texture of a dense green forest, seamless tile, vibrant green trees."

const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = 500 * time.Millisecond

	// MaxImageBytes caps the downloaded image
	MaxImageBytes = 4 << 20
)

// Error messages
const (
	ErrMsgNotConfigured   = "texture service is not configured"
	ErrMsgUnexpectedType  = "unexpected content type"
	ErrMsgUnexpectedState = "texture service returned status"
	ErrMsgEmptyImage      = "texture service returned an empty image"
	ErrMsgImageTooLarge   = "texture image exceeds size limit"
)

// Log messages
const (
	LogMsgRetrying = "Retrying texture request"
	LogMsgFetched  = "Forest texture fetched"
)
