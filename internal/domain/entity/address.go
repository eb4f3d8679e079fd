package entity

// Address is a saved shipping address.
type Address struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name" validate:"required"`
	Details string `json:"details" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// ShippingAddress is what an order is delivered to.
type ShippingAddress struct {
	Details string `json:"details" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// ShippingAddress converts a saved address for checkout.
func (a Address) ShippingAddress() ShippingAddress {
	return ShippingAddress{Details: a.Details, Phone: a.Phone, City: a.City}
}
