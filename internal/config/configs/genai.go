package configs

import "time"

// GenAI configures the text generation API used for campaign descriptions.
type GenAI struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-pro"`
	BaseURL string        `env:"GEMINI_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"30s"`
}
