// internal/assistant/errors.go
package assistant

import (
	"errors"

	"github.com/sashabaranov/go-openai"
)

// Category is the user-facing failure bucket for backend errors.
type Category string

const (
	CategoryCredits     Category = "credits_exhausted"
	CategoryRateLimited Category = "rate_limited"
	CategoryServer      Category = "server_error"
	CategoryGeneric     Category = "request_failed"
)

// Categorize maps a backend error to its user-facing category by HTTP
// status: 402 means credits, 429 means rate limit, 5xx means server error,
// anything else is generic.
func Categorize(err error) Category {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == 402:
		return CategoryCredits
	case status == 429:
		return CategoryRateLimited
	case status >= 500:
		return CategoryServer
	}
	return CategoryGeneric
}

// UserMessage renders a category as display text.
func UserMessage(c Category) string {
	switch c {
	case CategoryCredits:
		return "The assistant is out of credits. Try again later."
	case CategoryRateLimited:
		return "Too many requests right now. Give it a moment."
	case CategoryServer:
		return "The assistant backend had a problem. Try again shortly."
	}
	return "Couldn't reach the assistant. Check your connection and try again."
}
