package entity

// PaymentMethod is how an order is paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// OrderItem is a product line frozen into an order.
type OrderItem struct {
	ID      string  `json:"_id"`
	Count   int     `json:"count"`
	Price   float64 `json:"price"`
	Product Product `json:"product"`
}

// Order is a placed order.
type Order struct {
	ID                string           `json:"_id"`
	Number            int              `json:"id"`
	User              any              `json:"user,omitempty"`
	CartItems         []OrderItem      `json:"cartItems"`
	ShippingAddress   *ShippingAddress `json:"shippingAddress,omitempty"`
	TaxPrice          float64          `json:"taxPrice"`
	ShippingPrice     float64          `json:"shippingPrice"`
	TotalOrderPrice   float64          `json:"totalOrderPrice"`
	PaymentMethodType PaymentMethod    `json:"paymentMethodType"`
	IsPaid            bool             `json:"isPaid"`
	IsDelivered       bool             `json:"isDelivered"`
	CreatedAt         string           `json:"createdAt"`
}

// CheckoutSession is a hosted payment page the shopper is redirected to.
type CheckoutSession struct {
	URL    string `json:"url"`
	QRCode []byte `json:"qrCode,omitempty"`
}
