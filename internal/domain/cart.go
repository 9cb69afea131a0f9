package domain

import "github.com/shopspring/decimal"

// CartItem is one purchasable unit in the cart. A line item is keyed by
// VariantID: repeated adds of the same variant aggregate into one line.
// Price is the unit price captured when the item was added; Name, ImageURL,
// Size and Color are denormalized display fields.
type CartItem struct {
	ProductID  string  `json:"productId"`
	VariantID  string  `json:"variantId"`
	SizeID     string  `json:"sizeId"`
	CategoryID string  `json:"categoryId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"imageUrl"`
	Size       string  `json:"size"`
	Color      string  `json:"color"`
}

// Cart mirrors the remote cart for one user session. The remote store is the
// system of record; a local Cart is always provisional and may be replaced
// wholesale by the next successful fetch.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Subtotal is the sum of unit price times quantity over all items.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Find returns the index of the line item for variantID, or -1.
func (c Cart) Find(variantID string) int {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			return i
		}
	}
	return -1
}

// Clone returns a copy whose items do not share backing storage with the
// receiver. Used to snapshot the cart before an optimistic mutation.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

// StockLine is one entry of a stock-decrement request.
type StockLine struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	SizeID    string `json:"sizeId"`
	Quantity  int    `json:"quantity"`
}

// StockLines derives the stock-decrement payload from cart items.
func StockLines(items []CartItem) []StockLine {
	lines := make([]StockLine, len(items))
	for i, item := range items {
		lines[i] = StockLine{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			SizeID:    item.SizeID,
			Quantity:  item.Quantity,
		}
	}
	return lines
}
