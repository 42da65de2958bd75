package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant specifics
	KnowledgeBase KnowledgeBaseConfig
	Matcher       MatcherConfig
	Assistant     AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type KnowledgeBaseConfig struct {
	Path string // .json, .yaml or .yml
}

type MatcherConfig struct {
	Threshold float64
}

type AssistantConfig struct {
	BrandName           string
	SocialLinks         []SocialLinkConfig
	SuggestedCategories []string
}

type SocialLinkConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// maxThreshold is the highest score a product match can reach.
const maxThreshold = 2.0

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port > 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Knowledge base & matcher
	cfg.KnowledgeBase.Path = viper.GetString("knowledge_base.path")
	cfg.Matcher.Threshold = viper.GetFloat64("matcher.threshold")

	// Assistant
	cfg.Assistant.BrandName = viper.GetString("assistant.brand_name")
	cfg.Assistant.SuggestedCategories = viper.GetStringSlice("assistant.suggested_categories")
	if viper.IsSet("assistant.social_links") {
		if linksList, ok := viper.Get("assistant.social_links").([]interface{}); ok {
			for _, l := range linksList {
				if linkMap, ok := l.(map[string]interface{}); ok {
					link := SocialLinkConfig{
						Name: getStringFromMap(linkMap, "name"),
						URL:  getStringFromMap(linkMap, "url"),
					}
					if link.Name != "" && link.URL != "" {
						cfg.Assistant.SocialLinks = append(cfg.Assistant.SocialLinks, link)
					}
				}
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", false)
	viper.SetDefault("knowledge_base.path", "data/knowledge_base.json")
	viper.SetDefault("matcher.threshold", 0.62)
	viper.SetDefault("assistant.brand_name", "Victory Furniture")
	viper.SetDefault("assistant.suggested_categories", []string{"Dining", "Bedroom", "Home Decor", "Outdoor", "Office"})
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}
	if cfg.KnowledgeBase.Path == "" {
		return fmt.Errorf("knowledge_base.path is required")
	}
	if cfg.Matcher.Threshold <= 0 || cfg.Matcher.Threshold > maxThreshold {
		return fmt.Errorf("matcher.threshold %.2f must be in (0, %.0f]", cfg.Matcher.Threshold, maxThreshold)
	}
	if cfg.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative")
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
