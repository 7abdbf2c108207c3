package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers                 string
	KafkaOrderStatusTopic        string
	StaleCompletionSchedule      string
	StaleCompletionStalenessDays int
}

// DSN builds the postgres connection string from the database settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// Staleness converts the configured day count into a duration.
func (c Config) Staleness() time.Duration {
	return time.Duration(c.StaleCompletionStalenessDays) * 24 * time.Hour
}
