package usecase

import "time"

// Generation settings are fixed configuration constants, not per-call knobs.
const (
	generationTemperature = 0.7
	maxOutputTokens       = 500

	defaultLLMTimeout = 30 * time.Second
)
