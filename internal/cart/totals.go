package cart

const (
	// FreeShippingThreshold is exclusive: a subtotal of exactly 300 still pays shipping.
	FreeShippingThreshold = 300.0
	ShippingFee           = 25.0
)

type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

func ComputeTotals(items []Item) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.Price * float64(it.Quantity)
		t.ItemCount += it.Quantity
	}
	t.Shipping = ShippingFor(t.Subtotal)
	t.Total = t.Subtotal + t.Shipping
	return t
}

func ShippingFor(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}
