package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Fatalf("failed to load .env: %s", err)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}

	logger := newLogger(configs.LogLevel)

	db, err := gorm.Open(gorm_postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("failed to connect database")
	}
	if err = postgres.Migrate(db); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}

	writer := kafka.NewNotificationWriter(configs.KafkaBrokers(), configs.KafkaNotificationsTopic)
	gateway := kafka.NewNotificationGateway(writer, logger)
	defer func() {
		if cerr := gateway.Close(); cerr != nil {
			logger.WithError(cerr).Error("notification gateway close")
		}
	}()

	app := cmd.NewCompositionRoot(configs, db, gateway, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.WithError(err).Fatal("failed to start jobs")
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, logger)
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithError(err).Warn("unknown LOG_LEVEL, using info")
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

// echoLevel maps the configured level onto echo's own logger.
func echoLevel(level logrus.Level) log.Lvl {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return log.DEBUG
	case logrus.InfoLevel:
		return log.INFO
	case logrus.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *logrus.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLevel(logger.GetLevel()))

	app.CreateHTTPServer().Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("http server shutdown")
	}
	logger.Info("http server stopped")
}
