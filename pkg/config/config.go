package config

import "github.com/spf13/viper"

const (
	ServiceName    = "JetFriend API"
	ServiceVersion = "2.0.0"
)

type Config struct {
	App    AppConfig
	LLM    LLMConfig
	Places PlacesConfig
}

type AppConfig struct {
	Port      string
	StaticDir string
	LogLevel  string
}

type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
}

// Configured reports whether an API key is present for the selected provider.
func (l LLMConfig) Configured() bool {
	return l.APIKey != ""
}

type PlacesConfig struct {
	APIKey     string
	MaxResults int
}

func (p PlacesConfig) Configured() bool {
	return p.APIKey != ""
}

// Load reads configuration from environment variables. A missing API key never
// fails startup; the matching feature degrades to its fallback behavior.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("STATIC_DIR", "./static")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LLM_PROVIDER", "openrouter")
	v.SetDefault("LLM_MAX_TOKENS", 2000)
	v.SetDefault("LLM_TEMPERATURE", 0.7)
	v.SetDefault("PLACES_MAX_RESULTS", 6)

	llm := LLMConfig{
		Provider:    v.GetString("LLM_PROVIDER"),
		Model:       v.GetString("LLM_MODEL"),
		MaxTokens:   v.GetInt("LLM_MAX_TOKENS"),
		Temperature: float32(v.GetFloat64("LLM_TEMPERATURE")),
	}

	switch llm.Provider {
	case "openai":
		llm.APIKey = v.GetString("OPENAI_API_KEY")
		if llm.Model == "" {
			llm.Model = "gpt-3.5-turbo"
		}
	case "gemini":
		llm.APIKey = v.GetString("GEMINI_API_KEY")
		if llm.Model == "" {
			llm.Model = "gemini-2.0-flash"
		}
	default:
		llm.Provider = "openrouter"
		llm.APIKey = v.GetString("OPENROUTER_API_KEY")
		if llm.Model == "" {
			llm.Model = "microsoft/mai-ds-r1:free"
		}
	}

	return &Config{
		App: AppConfig{
			Port:      v.GetString("PORT"),
			StaticDir: v.GetString("STATIC_DIR"),
			LogLevel:  v.GetString("LOG_LEVEL"),
		},
		LLM: llm,
		Places: PlacesConfig{
			APIKey:     v.GetString("GOOGLE_PLACES_API_KEY"),
			MaxResults: v.GetInt("PLACES_MAX_RESULTS"),
		},
	}
}
