package order

// Stakeholder is a party that may need to hear about an order's status change.
type Stakeholder int

const (
	Client Stakeholder = iota + 1
	Vendor
	Driver
)

func (s Stakeholder) String() string {
	switch s {
	case Client:
		return "client"
	case Vendor:
		return "vendor"
	case Driver:
		return "driver"
	default:
		return "unknown"
	}
}
