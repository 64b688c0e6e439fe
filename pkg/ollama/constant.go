package ollama

import "time"

const (
	// DefaultModel is the default local model
	DefaultModel = "mistral:latest"

	// DefaultBaseURL is the default Ollama server endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeout is generous: local generation can be slow on CPU
	DefaultTimeout = 120 * time.Second
)
