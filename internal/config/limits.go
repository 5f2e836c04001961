package config

const (
	MaxPromptBodyBytes = 64 * 1024 // 64KB
)
