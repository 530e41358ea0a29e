package model

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

// Order statuses. The ledger does not constrain transitions between them;
// the admin view may move an order to any status, including straight from
// Processing to Delivered.
const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// Customer is the checkout contact record attached to an order. It has no
// identity of its own.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// Order represents a completed purchase. Everything except Status is frozen
// at creation time: Items is an owned copy of the cart lines and Total is
// the amount charged, regardless of later catalogue price changes.
type Order struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	Customer Customer    `json:"customer"`
	Items    []CartLine  `json:"items"`
	Total    float64     `json:"total"`
	Status   OrderStatus `json:"status"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	c := o
	c.Items = CloneLines(o.Items)
	return c
}
