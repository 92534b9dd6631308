package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	// Kafka Configuration
	KafkaBrokers       []string
	KafkaTopicInvoices string
	KafkaTopicStock    string
	KafkaClientID      string
	KafkaAcks          string
	KafkaRetries       int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		// Kafka Configuration
		KafkaBrokers:       kafkaBrokers,
		KafkaTopicInvoices: getEnv("KAFKA_TOPIC_INVOICES", "pos.invoices"),
		KafkaTopicStock:    getEnv("KAFKA_TOPIC_STOCK", "pos.stock"),
		KafkaClientID:      getEnv("KAFKA_CLIENT_ID", "pos-service"),
		KafkaAcks:          getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:       getEnvAsInt("KAFKA_RETRIES", 3),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
