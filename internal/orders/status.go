package orders

// Status is free text; any value is accepted by SetStatus. The constants are
// the values the storefront uses.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusConfirmed Status = "confirmed"
	StatusShipping  Status = "shipping"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var known = map[Status]bool{
	StatusPlaced:    true,
	StatusConfirmed: true,
	StatusShipping:  true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// Known reports whether s is one of the storefront's status values.
func (s Status) Known() bool { return known[s] }
