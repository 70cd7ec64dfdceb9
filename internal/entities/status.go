package entities

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending            Status = "pending"
	StatusPaid               Status = "paid"
	StatusRegistering        Status = "registering"
	StatusRegistered         Status = "registered"
	StatusRegistrationFailed Status = "registration_failed"
	StatusExpired            Status = "expired"
	StatusPaymentFailed      Status = "payment_failed"
)

// transitions holds the only legal edges of the order state machine.
// Anything not listed here is rejected with ErrInvalidTransition.
var transitions = map[Status][]Status{
	StatusPending:     {StatusPaid, StatusPaymentFailed, StatusExpired},
	StatusPaid:        {StatusRegistering},
	StatusRegistering: {StatusRegistered, StatusRegistrationFailed},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusRegistering, StatusRegistered,
		StatusRegistrationFailed, StatusExpired, StatusPaymentFailed:
		return true
	}
	return false
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is legal from s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// AtLeastPaid reports whether the order has already seen a successful payment.
// Used to make duplicate payment confirmations a no-op.
func (s Status) AtLeastPaid() bool {
	switch s {
	case StatusPaid, StatusRegistering, StatusRegistered, StatusRegistrationFailed:
		return true
	}
	return false
}
