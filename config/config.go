package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sjsage522/courseadvisor/pkg/errors"
)

// DefaultSubjects is the fixed set of subject codes crawled when SUBJECTS is unset
var DefaultSubjects = []string{"LING", "BENG", "CSE", "DSC", "ECE", "PSYC", "BIOL", "MAE"}

// Config represents the application configuration
type Config struct {
	// Catalog extraction
	CatalogBaseURL string
	Subjects       []string
	OutputDir      string
	FetchTimeout   time.Duration
	ErrorLogFile   string

	// Memcache configuration
	MemcacheAddr string
	PageCacheTTL time.Duration

	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int
	PublishEnabled       bool

	// Recommendation datasets
	CoursesCSV string
	RatingsCSV string

	// Text-generation service
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	ChatHistoryLimit int
	ServerPort       string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "1000"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "30"))
	pageCacheTTL, _ := strconv.Atoi(getEnv("PAGE_CACHE_TTL_SECONDS", "0"))
	historyLimit, _ := strconv.Atoi(getEnv("CHAT_HISTORY_LIMIT", "5"))
	publishEnabled, _ := strconv.ParseBool(getEnv("PUBLISH_ENABLED", "false"))

	return &Config{
		CatalogBaseURL:       strings.TrimRight(getEnv("CATALOG_BASE_URL", "https://catalog.ucsd.edu"), "/"),
		Subjects:             parseList(getEnv("SUBJECTS", strings.Join(DefaultSubjects, ","))),
		OutputDir:            getEnv("OUTPUT_DIR", "."),
		FetchTimeout:         time.Duration(fetchTimeout) * time.Second,
		ErrorLogFile:         getEnv("ERROR_LOG_FILE", "error.log"),
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", ""),
		PageCacheTTL:         time.Duration(pageCacheTTL) * time.Second,
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "catalog"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLength,
		PublishEnabled:       publishEnabled,
		CoursesCSV:           getEnv("COURSES_CSV", "course_catalog.csv"),
		RatingsCSV:           getEnv("RATINGS_CSV", "capes.csv"),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:        strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		ChatHistoryLimit:     historyLimit,
		ServerPort:           getEnv("SERVER_PORT", "3000"),
		Environment:          getEnv("ADVISOR_ENVIRONMENT", "development"),
	}
}

// Validate checks the values needed by every command
func (c *Config) Validate() error {
	if c.CatalogBaseURL == "" {
		return errors.NewConfiguration("CATALOG_BASE_URL must not be empty", nil)
	}
	if len(c.Subjects) == 0 {
		return errors.NewConfiguration("SUBJECTS must name at least one subject code", nil)
	}
	for _, s := range c.Subjects {
		if !IsKnownSubject(s) {
			return errors.NewConfiguration(fmt.Sprintf("unknown subject code %q", s), nil)
		}
	}
	if c.OutputDir == "" {
		return errors.NewConfiguration("OUTPUT_DIR must not be empty", nil)
	}
	if c.FetchTimeout <= 0 {
		return errors.NewConfiguration("FETCH_TIMEOUT_SECONDS must be positive", nil)
	}
	if c.PageCacheTTL < 0 {
		return errors.NewConfiguration("PAGE_CACHE_TTL_SECONDS must not be negative", nil)
	}
	if c.PublishEnabled && c.RedisStreamCount <= 0 {
		return errors.NewConfiguration("REDIS_STREAM_COUNT must be positive", nil)
	}
	if c.ChatHistoryLimit <= 0 {
		return errors.NewConfiguration("CHAT_HISTORY_LIMIT must be positive", nil)
	}
	return nil
}

// IsKnownSubject reports whether code belongs to DefaultSubjects
func IsKnownSubject(code string) bool {
	for _, s := range DefaultSubjects {
		if s == code {
			return true
		}
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
