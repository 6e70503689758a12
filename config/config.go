package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration for the application. Values come from
// a YAML file and from BRIEF_* environment variables; environment wins.
type Config struct {
	Providers struct {
		Gemini struct {
			APIKey string `mapstructure:"api_key"`
			Model  string `mapstructure:"model"`
		} `mapstructure:"gemini"`
		Groq struct {
			APIKey string `mapstructure:"api_key"`
			Model  string `mapstructure:"model"`
		} `mapstructure:"groq"`
	} `mapstructure:"providers"`
	Pipeline struct {
		MaxRetries   int           `mapstructure:"max_retries"`
		BaseWait     time.Duration `mapstructure:"base_wait"`
		StageTimeout time.Duration `mapstructure:"stage_timeout"`
		Language     string        `mapstructure:"language"`
	} `mapstructure:"pipeline"`
	RAG struct {
		Enabled        bool   `mapstructure:"enabled"`
		Path           string `mapstructure:"path"`
		EmbeddingModel string `mapstructure:"embedding_model"`
	} `mapstructure:"rag"`
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	Postgres struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"postgres"`
	Logs struct {
		Directory string `mapstructure:"directory"`
	} `mapstructure:"logs"`
}

// Load reads configuration from the given file path, or from a
// config.yaml found in the working directory when path is empty. A
// missing file is not an error; defaults and environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BRIEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Empty defaults register the keys so AutomaticEnv can fill them.
	v.SetDefault("providers.gemini.api_key", "")
	v.SetDefault("providers.groq.api_key", "")
	v.SetDefault("pipeline.language", "")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("providers.gemini.model", "gemini-2.0-flash")
	v.SetDefault("providers.groq.model", "llama-3.3-70b-versatile")
	v.SetDefault("pipeline.max_retries", 3)
	v.SetDefault("pipeline.base_wait", time.Second)
	v.SetDefault("pipeline.stage_timeout", 30*time.Second)
	v.SetDefault("rag.enabled", true)
	v.SetDefault("rag.path", "briefs.db")
	v.SetDefault("rag.embedding_model", "gemini-embedding-001")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("logs.directory", "logs")
}

// Validate checks the loaded configuration for usable provider
// credentials. At least one provider key is required to run.
func (c *Config) Validate() error {
	if c.Providers.Gemini.APIKey == "" && c.Providers.Groq.APIKey == "" {
		return fmt.Errorf("at least one provider api key is required (providers.gemini.api_key or providers.groq.api_key)")
	}
	return nil
}
