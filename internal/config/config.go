package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/zeroclick/ddg/internal/instantanswer"
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Query  QueryConfig  `mapstructure:"query"`
	Output OutputConfig `mapstructure:"output"`
}

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
}

type QueryConfig struct {
	SafeSearch bool `mapstructure:"safe_search"`
	AllowHTML  bool `mapstructure:"allow_html"`
	Meanings   bool `mapstructure:"meanings"`
}

type OutputConfig struct {
	ShowURLs bool     `mapstructure:"show_urls"`
	NoColor  bool     `mapstructure:"no_color"`
	Priority []string `mapstructure:"priority" validate:"dive,zcifield"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ddg")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("api.base_url", instantanswer.DefaultBaseURL)
	v.SetDefault("api.user_agent", instantanswer.DefaultUserAgent)
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("query.safe_search", true)
	v.SetDefault("query.allow_html", false)
	v.SetDefault("query.meanings", true)
	v.SetDefault("output.show_urls", true)
	v.SetDefault("output.no_color", false)
	v.SetDefault("output.priority", instantanswer.DefaultZCIPriority)

	// Endpoint overrides come from environment variables only (not from
	// the config file)
	if err := v.BindEnv("api.base_url", "DDG_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DDG_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("api.user_agent", "DDG_USER_AGENT"); err != nil {
		return nil, fmt.Errorf("failed to bind DDG_USER_AGENT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
