package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config aggregates all client configuration.
type Config struct {
	API    APIConfig
	Store  StoreConfig
	Chat   ChatConfig
	Server ServerConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	api, err := loadAPIConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		API:    api,
		Store:  loadStoreConfig(),
		Chat:   chat,
		Server: server,
	}, nil
}

// APIConfig locates the remote auth service.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// defaultBaseURL matches the local development setup where the auth
// service (or its stub) listens on the same machine.
const defaultBaseURL = "http://localhost:8080"

const defaultAPITimeout = 15 * time.Second

func loadAPIConfig() (APIConfig, error) {
	timeout := defaultAPITimeout
	if override, err := parseOptionalIntEnv("TALKTEMPLATE_API_TIMEOUT"); err != nil {
		return APIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return APIConfig{}, fmt.Errorf("TALKTEMPLATE_API_TIMEOUT must be at least 1 second")
		}
		timeout = time.Duration(*override) * time.Second
	}

	return APIConfig{
		BaseURL: getEnvOrDefault("TALKTEMPLATE_API_BASE_URL", defaultBaseURL),
		Timeout: timeout,
	}, nil
}

// StoreConfig locates the durable client-state database.
type StoreConfig struct {
	Path string
}

func loadStoreConfig() StoreConfig {
	if path := strings.TrimSpace(os.Getenv("TALKTEMPLATE_STORE_PATH")); path != "" {
		return StoreConfig{Path: path}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return StoreConfig{Path: filepath.Join(".talktemplate", "client.db")}
	}
	return StoreConfig{Path: filepath.Join(home, ".talktemplate", "client.db")}
}

// ChatConfig tunes the simulated assistant.
type ChatConfig struct {
	ResponseDelay time.Duration
}

func loadChatConfig() (ChatConfig, error) {
	delayMillis := 1000
	if override, err := parseOptionalIntEnv("TALKTEMPLATE_CHAT_DELAY_MS"); err != nil {
		return ChatConfig{}, err
	} else if override != nil {
		if *override < 0 {
			delayMillis = 0
		} else {
			delayMillis = *override
		}
	}
	return ChatConfig{ResponseDelay: time.Duration(delayMillis) * time.Millisecond}, nil
}

// ServerConfig describes the dev auth stub's listen address.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
