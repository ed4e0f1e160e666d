package notifier

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultSendTimeout bounds a single gateway send when no timeout is configured.
const DefaultSendTimeout = 5 * time.Second

// CommitFunc makes a status change durable. It runs between required and best-effort sends.
type CommitFunc func(ctx context.Context) error

// Orchestrator sends stakeholder messages through a NotificationGateway.
type Orchestrator struct {
	gateway     ports.NotificationGateway
	composer    services.MessageComposer
	sendTimeout time.Duration
	log         *logrus.Entry
}

// NewOrchestrator builds an Orchestrator. A non-positive sendTimeout falls back to DefaultSendTimeout.
func NewOrchestrator(
	gateway ports.NotificationGateway,
	composer services.MessageComposer,
	sendTimeout time.Duration,
	logger *logrus.Logger,
) *Orchestrator {
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}
	return &Orchestrator{
		gateway:     gateway,
		composer:    composer,
		sendTimeout: sendTimeout,
		log:         logger.WithField("component", "notifier"),
	}
}

// Dispatch notifies stakeholders that o entered status.
//
// Steps:
//  1. required sends run concurrently; if any fails, commit is not called and the error is returned
//  2. commit runs; its error is returned as is
//  3. best-effort sends run; failures are logged and recorded only
//
// The returned result is complete for whatever steps were reached.
func (n *Orchestrator) Dispatch(
	ctx context.Context,
	o *order.Order,
	status order.Status,
	commit CommitFunc,
) (DispatchResult, error) {
	result := DispatchResult{OrderID: o.ID(), Status: status}

	var required, bestEffort []services.NotificationRule
	for _, rule := range services.NotificationRules(status) {
		if rule.Required {
			required = append(required, rule)
		} else {
			bestEffort = append(bestEffort, rule)
		}
	}

	result.Outcomes = append(result.Outcomes, n.sendAll(ctx, o, status, required)...)
	if err := result.Err(); err != nil {
		n.log.WithFields(logrus.Fields{
			"order_id": o.ID(),
			"kind":     o.Kind().String(),
			"status":   status.String(),
		}).WithError(err).Error("required notification failed, status change not committed")
		return result, err
	}

	if commit != nil {
		if err := commit(ctx); err != nil {
			return result, err
		}
	}

	result.Outcomes = append(result.Outcomes, n.sendAll(ctx, o, status, bestEffort)...)
	return result, nil
}

// NotifyDriverAssignment tells d that it is now responsible for o.
// Any failure matches ErrDriverNotificationFailed.
func (n *Orchestrator) NotifyDriverAssignment(ctx context.Context, o *order.Order, d *driver.Driver) error {
	err := n.send(ctx, d.Contact().Address(), n.composer.DriverAssignment(o))
	if err != nil {
		n.log.WithFields(logrus.Fields{
			"order_id":  o.ID(),
			"kind":      o.Kind().String(),
			"driver_id": d.ID(),
		}).WithError(err).Error("driver assignment notification failed")
		return fmt.Errorf("%w: order %d driver %d: %w", ErrDriverNotificationFailed, o.ID(), d.ID(), err)
	}
	return nil
}

func (n *Orchestrator) sendAll(
	ctx context.Context,
	o *order.Order,
	status order.Status,
	rules []services.NotificationRule,
) []NotificationOutcome {
	outcomes := make([]NotificationOutcome, len(rules))

	var g errgroup.Group
	for i, rule := range rules {
		outcomes[i] = NotificationOutcome{Stakeholder: rule.Stakeholder, Required: rule.Required}

		contact := o.ContactOf(rule.Stakeholder)
		if !contact.IsPresent() {
			continue
		}
		outcomes[i].Attempted = true

		text := n.composer.StatusUpdate(o, status, rule.Stakeholder)
		g.Go(func() error {
			err := n.send(ctx, contact.Address(), text)
			outcomes[i].Succeeded = err == nil
			outcomes[i].Err = err
			return err
		})
	}
	_ = g.Wait()

	for _, outcome := range outcomes {
		if outcome.Required || !outcome.Failed() {
			continue
		}
		n.log.WithFields(logrus.Fields{
			"order_id":    o.ID(),
			"kind":        o.Kind().String(),
			"status":      status.String(),
			"stakeholder": outcome.Stakeholder.String(),
		}).WithError(outcome.Err).Warn("best-effort notification failed")
	}

	return outcomes
}

func (n *Orchestrator) send(ctx context.Context, destination, text string) error {
	sendCtx, cancel := context.WithTimeout(ctx, n.sendTimeout)
	defer cancel()

	return n.gateway.Send(sendCtx, destination, text)
}
