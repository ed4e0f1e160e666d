package services

import "fulfillment/internal/core/domain/model/order"

// NotificationRule says that Stakeholder must be told about a status, and
// whether a failed send must block that status (Required) or is tolerated.
type NotificationRule struct {
	Stakeholder order.Stakeholder
	Required    bool
}

// Required sends come first in every list so that the best-effort client send
// is only issued once the status is known to stand.
var notificationRules = map[order.Status][]NotificationRule{
	order.Pickup: {
		{Stakeholder: order.Vendor, Required: true},
		{Stakeholder: order.Client},
	},
	order.OnWay: {
		{Stakeholder: order.Client},
	},
	order.InProgress: {
		{Stakeholder: order.Client},
	},
	order.Completed: {
		{Stakeholder: order.Client},
	},
	order.Canceled: {
		{Stakeholder: order.Vendor, Required: true},
		{Stakeholder: order.Driver, Required: true},
		{Stakeholder: order.Client},
	},
}

// NotificationRules returns the ordered rules for entering status.
// The driver's assignment message is not listed here; it is sent by the
// assignment flow before PICKUP is requested.
func NotificationRules(status order.Status) []NotificationRule {
	rules := notificationRules[status]
	out := make([]NotificationRule, len(rules))
	copy(out, rules)
	return out
}
