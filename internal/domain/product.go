package domain

import "time"

// ProductImage is one catalog image of a product.
type ProductImage struct {
	URL          string `json:"url"`
	CloudinaryID string `json:"cloudinaryId"`
}

// SizeOption is a size of a variant with its own stock and price.
type SizeOption struct {
	ID    string  `json:"_id"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Variant is a color/style option of a product, carrying its size options.
type Variant struct {
	ID    string       `json:"_id"`
	Color string       `json:"color"`
	Sizes []SizeOption `json:"sizes"`
}

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Product struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Category  Category       `json:"category"`
	Images    []ProductImage `json:"images"`
	Variants  []Variant      `json:"variants"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ProductFilter narrows a catalog listing. Zero values mean "not filtered".
type ProductFilter struct {
	Category string
	SortBy   string
	Page     int
	Limit    int
	PriceMin *float64
	PriceMax *float64
	// The backend accepts a single size value; only the first entry is sent.
	Sizes  []string
	Search string
	Color  string
}

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
