package orders

const (
	TopicOrderPlaced        = "shop.order.placed"
	TopicOrderStatusChanged = "shop.order.status_changed"
)

// Partition key = order id, so all events of one order stay in order.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
