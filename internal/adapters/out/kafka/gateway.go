// Package kafka publishes outbound chat notifications to a Kafka topic. A relay
// service consumes the topic and delivers each message to its destination.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/pkg/errors"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationMessage is the record value published for every send.
type NotificationMessage struct {
	Destination string    `json:"destination"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sent_at"`
}

// NotificationGateway implements ports.NotificationGateway on top of a Kafka writer.
// A send succeeds once every in-sync replica acknowledged the record.
type NotificationGateway struct {
	writer messageWriter
	now    func() time.Time
	log    *logrus.Entry
}

// NewNotificationWriter builds the writer used in production. Records are keyed by
// destination, so the hash balancer keeps one recipient's messages in order.
func NewNotificationWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchSize:    1,
	}
}

func NewNotificationGateway(writer messageWriter, logger *logrus.Logger) *NotificationGateway {
	return &NotificationGateway{
		writer: writer,
		now:    time.Now,
		log:    logger.WithField("component", "kafka_notification_gateway"),
	}
}

// Send publishes text for destination. It blocks until the broker acknowledged the
// record or ctx is done.
func (g *NotificationGateway) Send(ctx context.Context, destination, text string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	msg := NotificationMessage{
		Destination: destination,
		Text:        text,
		SentAt:      g.now().UTC(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode notification")
	}

	if err = g.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(destination),
		Value: payload,
		Time:  msg.SentAt,
	}); err != nil {
		return errors.Wrapf(err, "publish notification to %s", destination)
	}

	g.log.WithField("destination", destination).Debug("notification published")
	return nil
}

func (g *NotificationGateway) Close() error {
	return g.writer.Close()
}
