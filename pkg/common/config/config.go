package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	ServerPort   string
	ServerHost   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Database
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Kafka
	KafkaBrokers     []string
	KafkaGroupID     string
	VacancyTopic     string
	PlacementsTopic  string
	PipelineDLQTopic string

	// Catalogs (empty path means the built-in defaults)
	EndReasonCatalogPath string
	GapThresholdsPath    string
	CorrectionsPath      string

	// Pipeline
	IncludeAssumptions bool
	TableCacheTTL      time.Duration

	// Pathway analysis window
	PathwayWindowStart string
	PathwayWindowEnd   string

	// Auth
	AuthIssuer       string
	AuthClientID     string
	AuthClientSecret string
}

func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		ServerHost:   getEnv("SERVER_HOST", "0.0.0.0"),
		ReadTimeout:  getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getDuration("WRITE_TIMEOUT", 30*time.Second),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "pathways"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "pathways123"),
		PostgresDB:       getEnv("POSTGRES_DB", "pathways"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		KafkaBrokers:     getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaGroupID:     getEnv("KAFKA_GROUP_ID", "pathways-platform"),
		VacancyTopic:     getEnv("VACANCY_TOPIC", "vacancies.raw"),
		PlacementsTopic:  getEnv("PLACEMENTS_TOPIC", "placements.corrected"),
		PipelineDLQTopic: getEnv("PIPELINE_DLQ_TOPIC", ""),

		EndReasonCatalogPath: getEnv("END_REASON_CATALOG_PATH", ""),
		GapThresholdsPath:    getEnv("GAP_THRESHOLDS_PATH", ""),
		CorrectionsPath:      getEnv("CORRECTIONS_PATH", ""),

		IncludeAssumptions: getBoolEnv("INCLUDE_ASSUMPTIONS", true),
		TableCacheTTL:      getDuration("TABLE_CACHE_TTL", 3*time.Hour),

		PathwayWindowStart: getEnv("PATHWAY_WINDOW_START", "2017-10-28"),
		PathwayWindowEnd:   getEnv("PATHWAY_WINDOW_END", "2025-04-30"),

		AuthIssuer:       getEnv("AUTH_ISSUER", ""),
		AuthClientID:     getEnv("AUTH_CLIENT_ID", ""),
		AuthClientSecret: getEnv("AUTH_CLIENT_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
