package order

// KindPolicy is everything that differs between delivery and service orders.
// Both implementations are immutable tables; callers select one with PolicyFor
// at the top of an operation and never branch on Kind afterwards.
type KindPolicy interface {
	// Kind is the order kind this policy governs.
	Kind() Kind

	// CanTransition reports whether from -> to is an edge of the state machine.
	// Self loops are never edges.
	CanTransition(from, to Status) bool

	// DriverMayRequest reports whether a courier using the access code channel
	// may ask for the target status. Whether the edge exists from the current
	// status is still decided by CanTransition.
	DriverMayRequest(to Status) bool

	// InTransit is the status between PICKUP and COMPLETED.
	InTransit() Status

	// PickupParty is the stakeholder whose location the driver collects from.
	PickupParty() Stakeholder

	// DropoffParty is the stakeholder whose location the driver delivers to.
	DropoffParty() Stakeholder

	// FulfillerTitle names the vendor role in human-facing text.
	FulfillerTitle() string
}

type kindPolicy struct {
	kind           Kind
	edges          map[Status][]Status
	driverTargets  map[Status]struct{}
	inTransit      Status
	pickupParty    Stakeholder
	dropoffParty   Stakeholder
	fulfillerTitle string
}

var (
	deliveryPolicy = kindPolicy{
		kind: Delivery,
		edges: map[Status][]Status{
			Pending: {Pickup, Canceled},
			Pickup:  {OnWay, Canceled},
			OnWay:   {Completed, Canceled},
		},
		driverTargets:  map[Status]struct{}{OnWay: {}, Completed: {}},
		inTransit:      OnWay,
		pickupParty:    Vendor,
		dropoffParty:   Client,
		fulfillerTitle: "store",
	}

	servicePolicy = kindPolicy{
		kind: Service,
		edges: map[Status][]Status{
			Pending:    {Pickup, Canceled},
			Pickup:     {InProgress, Canceled},
			InProgress: {Completed, Canceled},
		},
		driverTargets:  map[Status]struct{}{InProgress: {}, Completed: {}},
		inTransit:      InProgress,
		pickupParty:    Client,
		dropoffParty:   Vendor,
		fulfillerTitle: "service provider",
	}
)

// PolicyFor returns the policy of k.
func PolicyFor(k Kind) (KindPolicy, error) {
	switch k {
	case Delivery:
		return deliveryPolicy, nil
	case Service:
		return servicePolicy, nil
	default:
		return nil, k.Validate()
	}
}

func (p kindPolicy) Kind() Kind {
	return p.kind
}

func (p kindPolicy) CanTransition(from, to Status) bool {
	for _, target := range p.edges[from] {
		if target == to {
			return true
		}
	}
	return false
}

func (p kindPolicy) DriverMayRequest(to Status) bool {
	_, ok := p.driverTargets[to]
	return ok
}

func (p kindPolicy) InTransit() Status {
	return p.inTransit
}

func (p kindPolicy) PickupParty() Stakeholder {
	return p.pickupParty
}

func (p kindPolicy) DropoffParty() Stakeholder {
	return p.dropoffParty
}

func (p kindPolicy) FulfillerTitle() string {
	return p.fulfillerTitle
}
