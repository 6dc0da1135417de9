package basket

import (
	"fmt"
	"time"
)

type Basket struct {
	UID          string
	OwnerKey     string
	CreatedAt    time.Time
	LastModified *time.Time
	Items        []Line
}

// Line is one (product, quantity) pair. UnitPrice is in cents, captured from
// the catalog when the item was first added.
type Line struct {
	ProductUID string
	UnitPrice  int
	Quantity   int
}

func (l Line) TotalPrice() int {
	return l.UnitPrice * l.Quantity
}

func (l Line) UnitPriceFormatted() string {
	return fmt.Sprintf("$%.2f", float64(l.UnitPrice)/100)
}

func (b Basket) IsEmpty() bool {
	return len(b.Items) == 0
}

func (b Basket) Total() int {
	total := 0
	for _, line := range b.Items {
		total += line.TotalPrice()
	}
	return total
}

func (b Basket) TotalFormatted() string {
	return fmt.Sprintf("$%.2f", float64(b.Total())/100)
}

func (b Basket) Timestamp() string {
	return b.CreatedAt.Format("2006-01-02 15:04:05")
}
