package utils

import "errors"

var (
	ErrMessageRequired  = errors.New("message is required")
	ErrQueryRequired    = errors.New("query is required")
	ErrLLMNotConfigured = errors.New("llm api key not configured")
)
