package checkout

import (
	"time"

	"github.com/eshopweb/storefront/services/ordering"
)

// OrderNotification is the read-only projection of a created order that is
// sent to the delivery-order processor. Delivery is not guaranteed.
type OrderNotification struct {
	ID              string                  `json:"id"`
	OrderDate       time.Time               `json:"orderDate"`
	OrderItems      []OrderItemNotification `json:"orderItems"`
	OrderNumber     string                  `json:"orderNumber"`
	ShippingAddress ordering.Address        `json:"shippingAddress"`
	Total           int                     `json:"total"`
}

type OrderItemNotification struct {
	PictureURL  string `json:"pictureUrl"`
	ProductUID  string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   int    `json:"unitPrice"`
	Units       int    `json:"units"`
}

func newOrderNotification(order ordering.Order) OrderNotification {
	items := make([]OrderItemNotification, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, OrderItemNotification{
			PictureURL:  line.PictureURL,
			ProductUID:  line.ProductUID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Units:       line.Units,
		})
	}

	return OrderNotification{
		ID:              order.UID,
		OrderDate:       order.CreatedAt,
		OrderItems:      items,
		OrderNumber:     order.UID,
		ShippingAddress: order.ShipTo,
		Total:           order.Total(),
	}
}
