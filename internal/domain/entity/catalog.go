package entity

// Category is a top-level product grouping.
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}

// SubCategory belongs to exactly one Category.
type SubCategory struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

// Brand is a product manufacturer.
type Brand struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}

// Product is a catalog item. The API sometimes duplicates the identifier
// under "id"; use ProductID to read it.
type Product struct {
	ID              string        `json:"_id"`
	AltID           string        `json:"id,omitempty"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Description     string        `json:"description,omitempty"`
	Quantity        int           `json:"quantity"`
	Sold            int           `json:"sold,omitempty"`
	Price           float64       `json:"price"`
	PriceAfterDisc  float64       `json:"priceAfterDiscount,omitempty"`
	ImageCover      string        `json:"imageCover"`
	Images          []string      `json:"images,omitempty"`
	Category        *Category     `json:"category,omitempty"`
	SubCategories   []SubCategory `json:"subcategory,omitempty"`
	Brand           *Brand        `json:"brand,omitempty"`
	RatingsAverage  float64       `json:"ratingsAverage"`
	RatingsQuantity int           `json:"ratingsQuantity"`
}

// ProductID returns the identifier to use for cart and wishlist calls.
func (p Product) ProductID() string {
	if p.AltID != "" {
		return p.AltID
	}

	return p.ID
}

// CategoryID returns the product's category id, or "" when it is absent.
func (p Product) CategoryID() string {
	if p.Category == nil {
		return ""
	}

	return p.Category.ID
}

// ProductFilter narrows a product listing. Zero values are omitted.
type ProductFilter struct {
	Category    string `query:"category" json:"category,omitempty"`
	SubCategory string `query:"subcategory" json:"subcategory,omitempty"`
	Brand       string `query:"brand" json:"brand,omitempty"`
	Limit       int    `query:"limit" json:"limit,omitempty"`
	Page        int    `query:"page" json:"page,omitempty"`
	Sort        string `query:"sort" json:"sort,omitempty"`
}
