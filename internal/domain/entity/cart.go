package entity

// CartProduct is one line of the remote cart.
type CartProduct struct {
	ID      string  `json:"_id"`
	Count   int     `json:"count"`
	Price   float64 `json:"price"`
	Product Product `json:"product"`
}

// Cart is the remote cart. Line products may arrive as bare ids on some
// mutation responses, in which case Product carries only the id.
type Cart struct {
	ID             string        `json:"_id"`
	CartOwner      string        `json:"cartOwner"`
	Products       []CartProduct `json:"products"`
	TotalCartPrice float64       `json:"totalCartPrice"`
	CreatedAt      string        `json:"createdAt,omitempty"`
	UpdatedAt      string        `json:"updatedAt,omitempty"`
}

// CartView pairs the cart with the server-reported item count.
type CartView struct {
	ItemCount int   `json:"numOfCartItems"`
	Cart      *Cart `json:"data"`
}

// Empty reports whether there is nothing to check out.
func (v *CartView) Empty() bool {
	return v == nil || v.Cart == nil || v.Cart.ID == "" || len(v.Cart.Products) == 0
}
