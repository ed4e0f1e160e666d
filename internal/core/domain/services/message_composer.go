package services

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
)

// MessageComposer renders the English and Arabic texts sent to stakeholders.
// It reads only contacts captured on the order, never upstream records.
type MessageComposer struct {
	portalURL string
}

// NewMessageComposer builds a composer whose driver deep links start with portalURL.
func NewMessageComposer(portalURL string) MessageComposer {
	return MessageComposer{portalURL: strings.TrimRight(portalURL, "/")}
}

// DriverLink is the deep link a courier opens to view and update the order.
func (m MessageComposer) DriverLink(o *order.Order) string {
	return fmt.Sprintf("%s/%s/%s", m.portalURL, o.Kind(), o.AccessCode())
}

// DriverAssignment is the message that tells a driver they were put in charge of o.
func (m MessageComposer) DriverAssignment(o *order.Order) string {
	policy := o.Policy()
	pickup := placeOf(o, policy.PickupParty())
	dropoff := placeOf(o, policy.DropoffParty())

	var b strings.Builder
	fmt.Fprintf(&b, "New %s order #%d\n", o.Kind(), o.ID())
	fmt.Fprintf(&b, "Pick up: %s\n", pickup)
	fmt.Fprintf(&b, "Drop off: %s\n", dropoff)
	fmt.Fprintf(&b, "طلب جديد رقم %d\n", o.ID())
	fmt.Fprintf(&b, "الاستلام: %s\n", pickup)
	fmt.Fprintf(&b, "التسليم: %s\n", dropoff)
	b.WriteString(m.DriverLink(o))
	return b.String()
}

// StatusUpdate is the message telling stakeholder that o entered status.
func (m MessageComposer) StatusUpdate(o *order.Order, status order.Status, stakeholder order.Stakeholder) string {
	en, ar := statusPhrases(o, status, stakeholder)
	return fmt.Sprintf("Order #%d: %s\nالطلب رقم %d: %s", o.ID(), en, o.ID(), ar)
}

func statusPhrases(o *order.Order, status order.Status, stakeholder order.Stakeholder) (string, string) {
	switch {
	case status == order.Pickup && stakeholder == order.Vendor:
		return fmt.Sprintf("a driver is coming to collect it, please have it ready for %s",
				placeOf(o, o.Policy().DropoffParty())),
			"السائق في الطريق للاستلام، يرجى تجهيز الطلب"
	case status == order.Pickup:
		return "a driver has been assigned", "تم تعيين سائق لطلبك"
	case status == order.OnWay:
		return "your order is on the way", "طلبك في الطريق"
	case status == order.InProgress:
		return fmt.Sprintf("your item is with the %s", o.Policy().FulfillerTitle()), "طلبك قيد التنفيذ"
	case status == order.Completed:
		return "your order is complete", "تم إكمال طلبك"
	case status == order.Canceled:
		return "this order has been canceled, please stop any work on it", "تم إلغاء هذا الطلب"
	default:
		return "status changed to " + status.String(), "تم تحديث حالة الطلب"
	}
}

func placeOf(o *order.Order, s order.Stakeholder) string {
	c := o.ContactOf(s)
	if c.Location() != "" {
		return fmt.Sprintf("%s, %s", c.Name(), c.Location())
	}
	if c.IsPresent() {
		return c.Name()
	}
	return "-"
}
