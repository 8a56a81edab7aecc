package llm

import "errors"

var (
	// ErrRateLimited indicates the provider rejected the call for quota
	ErrRateLimited = errors.New("llm rate limited")

	// ErrUnavailable indicates the sidecar or provider is unreachable
	ErrUnavailable = errors.New("llm unavailable")

	// ErrTimeout indicates the call exceeded its deadline
	ErrTimeout = errors.New("llm call timed out")

	// ErrBusy indicates the local concurrency cap is exhausted
	ErrBusy = errors.New("llm gateway busy")

	// ErrEmptyResponse indicates the model returned no content
	ErrEmptyResponse = errors.New("llm returned empty response")

	// ErrParseFailed indicates model output could not be coerced into the
	// expected JSON shape, even after repair and a reinforcement retry
	ErrParseFailed = errors.New("llm output parse failed")
)

// IsRetryable reports whether a completion error is worth retrying.
// Parse failures have their own reinforcement loop and are not retried here.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrEmptyResponse)
}
