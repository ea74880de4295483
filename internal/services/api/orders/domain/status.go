package domain

// Status is the lifecycle state of an order
type Status string

// Order statuses
const (
	StatusWaitingPayment Status = "WAITING_PAYMENT"
	StatusPaid           Status = "PAID"
	StatusShipped        Status = "SHIPPED"
	StatusDelivered      Status = "DELIVERED"
	StatusCanceled       Status = "CANCELED"
)

var transitions = map[Status][]Status{
	StatusWaitingPayment: {StatusPaid, StatusCanceled},
	StatusPaid:           {StatusShipped},
	StatusShipped:        {StatusDelivered},
}

// CanTransition reports whether an order in from may move to to
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Final reports whether no transition leaves s
func (s Status) Final() bool { return len(transitions[s]) == 0 }
