package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      Log      `yaml:"log"`
	Server   Server   `yaml:"server"`
	Neo4j    Neo4j    `yaml:"neo4j"`
	OpenAI   OpenAI   `yaml:"openai"`
	Sessions Sessions `yaml:"sessions"`
}

type OpenAI struct {
	Translator ModelConfig `yaml:"translator" validate:"required"`
	Summarizer ModelConfig `yaml:"summarizer" validate:"required"`
}

type ModelConfig struct {
	// OpenAI base url
	BaseURL string `yaml:"base_url" example:"https://openrouter.ai/api/v1" validate:"required"`
	// OpenAI token
	Token string `yaml:"token" example:"sk-or-v1-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX" validate:"required"`
	// OpenAI model
	Model string `yaml:"model" example:"x-ai/grok-4.1-fast" validate:"required"`
}

type Neo4j struct {
	// Bolt URI of the graph database
	URI string `yaml:"uri" example:"neo4j+s://a1b2c3d4.databases.neo4j.io" validate:"required"`
	// Database username
	User string `yaml:"user" example:"neo4j"`
	// Database password
	Pass string `yaml:"pass" validate:"required"`
	// Database name, empty means the server default
	Database string `yaml:"database"`
}

type Server struct {
	// Listen address of the HTTP server
	Addr string `yaml:"addr" example:":8080"`
}

type Sessions struct {
	// Path to the chat session store file
	File string `yaml:"file" example:"data/sessions.json"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	return LoadFile("config.yaml")
}

func LoadFile(path string) (*Config, error) {
	var result Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":8080"
	}
	if result.Sessions.File == "" {
		result.Sessions.File = "data/sessions.json"
	}
	if result.Neo4j.User == "" {
		result.Neo4j.User = "neo4j"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
