package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"fulfillment"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	KafkaHost               string `env:"KAFKA_HOST" envDefault:"localhost:9092"`
	KafkaNotificationsTopic string `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"fulfillment.notifications"`

	NotificationSendTimeout time.Duration `env:"NOTIFICATION_SEND_TIMEOUT" envDefault:"5s"`
	DriverPortalURL         string        `env:"DRIVER_PORTAL_URL" envDefault:"http://localhost:8080/driver"`
	StalledAssignmentCron   string        `env:"STALLED_ASSIGNMENT_CRON" envDefault:"0 * * * * *"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

// KafkaBrokers splits KAFKA_HOST into broker addresses.
func (c Config) KafkaBrokers() []string {
	parts := strings.Split(c.KafkaHost, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSslMode,
	)
}
