package catalog

import "fmt"

// Product is a read-only catalog entry. Price is in cents.
type Product struct {
	UID        string
	Name       string
	Price      int
	PictureURL string
}

func (p Product) PriceFormatted() string {
	return fmt.Sprintf("$%.2f", float64(p.Price)/100)
}
