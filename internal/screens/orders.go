package screens

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/gymwear/storeadmin/internal/console"
	"github.com/gymwear/storeadmin/internal/domain"
)

// OrderFromForm shapes validated order form values into a payload. Items come
// from the line-per-item entry; line totals and the grand total are always
// recomputed from quantity and unit price before submission.
func OrderFromForm(fc console.FormContext) (domain.Order, error) {
	var in struct {
		UserID            int64  `mapstructure:"userId"`
		Status            string `mapstructure:"status"`
		ShippingAddressID int64  `mapstructure:"shippingAddressId"`
		Items             string `mapstructure:"items"`
	}
	if err := mapstructure.WeakDecode(fc.Values, &in); err != nil {
		return domain.Order{}, errors.Wrap(err, "decode order form")
	}

	items, err := domain.ParseOrderItems(in.Items)
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		ID:                fc.EditingID,
		UserID:            in.UserID,
		Status:            in.Status,
		ShippingAddressID: optID(in.ShippingAddressID),
		Items:             items,
	}
	order.ComputeTotals()
	return order, nil
}

func checkItems(v interface{}) string {
	text, _ := v.(string)
	if _, err := domain.ParseOrderItems(text); err != nil {
		return err.Error()
	}
	return ""
}

// Orders builds the order screen.
func Orders(client console.ResourceClient[domain.Order], notifier *console.Notifier) *console.Screen[domain.Order] {
	cfg := console.Config[domain.Order]{
		Name:     "orders",
		Singular: "order",
		PageSize: 10,
		Columns: []console.Column[domain.Order]{
			{Name: "id", Label: "ID", Value: func(o domain.Order) interface{} { return idOrZero(o.ID) }},
			{Name: "userId", Label: "User", Value: func(o domain.Order) interface{} { return o.UserID }},
			{Name: "status", Label: "Status", Value: func(o domain.Order) interface{} { return o.Status }},
			{Name: "grandTotal", Label: "Grand total", Value: func(o domain.Order) interface{} { return o.GrandTotal }},
			{Name: "createdAt", Label: "Created", Value: func(o domain.Order) interface{} { return domain.FormatTimestamp(o.CreatedAt) }},
		},
		Fields: []console.Field{
			{Name: "userId", Label: "User ID", Kind: console.Number, Rules: "min=1"},
			{Name: "status", Label: "Status", Kind: console.Select, Options: domain.OrderStatuses, Default: "pending", Rules: "required"},
			{Name: "shippingAddressId", Label: "Shipping address ID", Kind: console.Number, Rules: "gte=0"},
			{Name: "items", Label: "Items (variantId,quantity,unitPrice per line)", Kind: console.Lines, Rules: "required", Check: checkItems},
		},
		ID:    func(o domain.Order) *int64 { return o.ID },
		Build: OrderFromForm,
		Fill: func(o domain.Order) map[string]interface{} {
			return map[string]interface{}{
				"userId":            o.UserID,
				"status":            o.Status,
				"shippingAddressId": idOrZero(o.ShippingAddressID),
				"items":             domain.FormatOrderItems(o.Items),
			}
		},
	}
	return console.NewScreen(cfg, client, notifier)
}
