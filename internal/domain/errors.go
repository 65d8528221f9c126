package domain

import "fmt"

// UpstreamStatusError reports a non-2xx reply from an upstream service.
type UpstreamStatusError struct {
	StatusCode int
}

func (e UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
