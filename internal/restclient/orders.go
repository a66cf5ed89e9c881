package restclient

import (
	"context"
	"fmt"

	"github.com/gymwear/storeadmin/internal/domain"
)

// Orders is the order resource client plus the two receipt operations the
// orders collection adds on top of plain CRUD.
type Orders struct {
	*Resource[domain.Order]
}

// NewOrders creates the order client.
func NewOrders(c *Client) *Orders {
	return &Orders{Resource: NewResource[domain.Order](c, "orders")}
}

// FetchReceipt downloads the rendered PDF receipt for an order.
func (o *Orders) FetchReceipt(ctx context.Context, id int64) ([]byte, error) {
	return o.c.GetRaw(ctx, fmt.Sprintf("/api/orders/%d/pdf", id))
}

// SendReceiptEmail asks the backend to email the receipt and returns the
// plain-text confirmation message.
func (o *Orders) SendReceiptEmail(ctx context.Context, id int64) (string, error) {
	return o.c.PostText(ctx, fmt.Sprintf("/api/orders/%d/email", id))
}
