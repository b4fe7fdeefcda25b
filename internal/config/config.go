package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env              string        `mapstructure:"ENV"`
	Port             string        `mapstructure:"PORT"`
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	GeminiAPIKey     string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string        `mapstructure:"GEMINI_MODEL"`
	AssistantBaseURL string        `mapstructure:"ASSISTANT_BASE_URL"`
	AssistantModel   string        `mapstructure:"ASSISTANT_MODEL"`
	AssistantAPIKey  string        `mapstructure:"ASSISTANT_API_KEY"`
	ModelTemperature float64       `mapstructure:"MODEL_TEMPERATURE"`
	ModelTopP        float64       `mapstructure:"MODEL_TOP_P"`
	CORSAllowed      string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-exp")
	v.SetDefault("MODEL_TEMPERATURE", 0.7)
	v.SetDefault("MODEL_TOP_P", 0.9)
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
