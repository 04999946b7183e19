package pagesum

// Config holds runtime configuration, loaded from a TOML file with
// environment variable overrides. See the toml package.
type Config struct {
	Gemini    GeminiConfig    `toml:"gemini"    envPrefix:"GEMINI_"`
	Extract   ExtractConfig   `toml:"extract"   envPrefix:"EXTRACT_"`
	Summarize SummarizeConfig `toml:"summarize" envPrefix:"SUMMARIZE_"`
}

// GeminiConfig configures the Gemini API client.
type GeminiConfig struct {
	// APIKey authenticates against the Gemini API. Required for
	// summarization; there is no anonymous access.
	APIKey string `toml:"api_key" env:"API_KEY"`

	// Model is the Gemini model name used for generateContent calls.
	Model string `toml:"model" env:"MODEL"`
}

// ExtractConfig configures image collection.
type ExtractConfig struct {
	// DedupeImages drops repeated image URLs, keeping the first
	// occurrence. Off by default: a page that repeats an image reports
	// it once per occurrence.
	DedupeImages bool `toml:"dedupe_images" env:"DEDUPE_IMAGES"`

	// MaxImages caps the number of collected image URLs. Zero means no
	// cap.
	MaxImages int `toml:"max_images" env:"MAX_IMAGES"`
}

// SummarizeConfig configures prompt construction.
type SummarizeConfig struct {
	// MaxPromptLen caps the number of bytes of page text included in the
	// prompt. Zero means no limit; very large pages may then exceed the
	// model's input limits.
	MaxPromptLen int `toml:"max_prompt_len" env:"MAX_PROMPT_LEN"`
}

// DefaultConfig returns the configuration used before any file or
// environment values are applied.
func DefaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{Model: "gemini-2.0-flash"},
	}
}
