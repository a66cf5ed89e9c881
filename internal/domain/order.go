package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Observed order statuses. Status is a free-form string on the wire.
var OrderStatuses = []string{"pending", "processing", "completed", "cancelled"}

// Order represents a customer order. GrandTotal is computed client-side as the
// sum of line totals before submission.
type Order struct {
	ID                *int64      `json:"id,omitempty" csv:"id"`
	UserID            int64       `json:"userId" csv:"user_id"`
	Status            string      `json:"status" csv:"status"`
	GrandTotal        float64     `json:"grandTotal" csv:"grand_total"`
	ShippingAddressID *int64      `json:"shippingAddressId" csv:"shipping_address_id"`
	Items             []OrderItem `json:"items" csv:"-"`
	CreatedAt         string      `json:"createdAt,omitempty" csv:"created_at"`
}

// OrderItem is a single order line. Items have no lifecycle outside their
// order. The backend has been observed accepting both ProductID and
// ProductVariantID for the product reference; both stay optional here and only
// the one that is set is serialized.
type OrderItem struct {
	ID               *int64  `json:"id,omitempty"`
	ProductID        *int64  `json:"productId,omitempty"`
	ProductVariantID *int64  `json:"productVariantId,omitempty"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unitPrice"`
	LineTotal        float64 `json:"lineTotal"`
}

// ComputeTotals recomputes every line total as quantity x unit price and sets
// GrandTotal to their sum.
func (o *Order) ComputeTotals() {
	var sum float64
	for i := range o.Items {
		o.Items[i].LineTotal = float64(o.Items[i].Quantity) * o.Items[i].UnitPrice
		sum += o.Items[i].LineTotal
	}
	o.GrandTotal = sum
}

// ParseOrderItems parses the console's line-per-item order entry format:
// "variantId,quantity,unitPrice" per line. Blank lines are skipped. At least
// one item is required.
func ParseOrderItems(text string) ([]OrderItem, error) {
	var items []OrderItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("item %q: want variantId,quantity,unitPrice", line)
		}
		variantID, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil || variantID < 1 {
			return nil, fmt.Errorf("item %q: invalid variant id", line)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("item %q: quantity must be a positive integer", line)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("item %q: unit price must be a non-negative number", line)
		}
		items = append(items, OrderItem{
			ProductVariantID: &variantID,
			Quantity:         qty,
			UnitPrice:        price,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("an order needs at least one item")
	}
	return items, nil
}

// FormatOrderItems renders items back into the line-per-item entry format.
func FormatOrderItems(items []OrderItem) string {
	var b strings.Builder
	for _, it := range items {
		ref := int64(0)
		if it.ProductVariantID != nil {
			ref = *it.ProductVariantID
		} else if it.ProductID != nil {
			ref = *it.ProductID
		}
		fmt.Fprintf(&b, "%d,%d,%g\n", ref, it.Quantity, it.UnitPrice)
	}
	return b.String()
}
