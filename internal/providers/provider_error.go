package providers

import "fmt"

// Error codes for external API failures.
const (
	ErrCodeNetworkError = "NETWORK_ERROR"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeBadStatus    = "BAD_STATUS"
	ErrCodeBadResponse  = "BAD_RESPONSE"
	ErrCodeRenderFailed = "RENDER_FAILED"
)

// ProviderError wraps a failure from an external API with a stable code.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
