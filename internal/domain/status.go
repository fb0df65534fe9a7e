package domain

// Order status values. The strings are the wire format, stored as-is.
const (
	StatusPending        = "Pending"
	StatusAccepted       = "Accepted"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

// statusEdges is the full transition graph. The happy path is a linear
// chain; cancellation is only possible before the food leaves the kitchen.
var statusEdges = map[string][]string{
	StatusPending:        {StatusAccepted, StatusCancelled},
	StatusAccepted:       {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

func ValidStatus(s string) bool {
	_, ok := statusEdges[s]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range statusEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

func TerminalStatus(s string) bool {
	return len(statusEdges[s]) == 0 && ValidStatus(s)
}
