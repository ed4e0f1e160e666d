package cmd_test

import (
	"testing"
	"time"

	"fulfillment/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.NotificationSendTimeout)
	assert.Equal(t, "0 * * * * *", cfg.StalledAssignmentCron)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "orders")
	t.Setenv("KAFKA_HOST", "k1:9092, k2:9092,")
	t.Setenv("NOTIFICATION_SEND_TIMEOUT", "750ms")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
	assert.Equal(t, 750*time.Millisecond, cfg.NotificationSendTimeout)
	assert.Equal(t,
		"host=db port=5432 user=postgres password=postgres dbname=orders sslmode=disable",
		cfg.PostgresDSN())
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("NOTIFICATION_SEND_TIMEOUT", "soon")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
}
