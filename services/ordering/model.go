package ordering

import (
	"fmt"
	"time"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// Order is immutable once created: line prices and units are frozen at
// creation time and never re-read from the catalog afterwards.
type Order struct {
	UID       string
	OwnerKey  string
	CreatedAt time.Time
	Lines     []Line
	ShipTo    Address
}

type Line struct {
	ProductUID  string
	ProductName string
	PictureURL  string
	UnitPrice   int
	Units       int
}

func (l Line) TotalPrice() int {
	return l.UnitPrice * l.Units
}

func (l Line) UnitPriceFormatted() string {
	return fmt.Sprintf("$%.2f", float64(l.UnitPrice)/100)
}

func (o Order) Total() int {
	total := 0
	for _, line := range o.Lines {
		total += line.TotalPrice()
	}
	return total
}

func (o Order) TotalFormatted() string {
	return fmt.Sprintf("$%.2f", float64(o.Total())/100)
}

func (o Order) Timestamp() string {
	return o.CreatedAt.Format("2006-01-02 15:04:05")
}
