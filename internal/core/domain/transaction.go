package domain

import "time"

// Item is a single line item within a transaction. Cost is in minor currency
// units; PriceUnit is the per-unit display price.
type Item struct {
	Name      string  `json:"name"`
	Cost      int64   `json:"cost"`
	PriceUnit float64 `json:"price_unit"`
	Quantity  int     `json:"quantity"`
}

// Transaction is a completed charge as recorded in the datastore. Its ID is
// the gateway charge id. Items preserve their stored order.
type Transaction struct {
	ID      string    `json:"id"`
	Amount  int64     `json:"amount"`
	Taxes   int64     `json:"taxes"`
	Date    time.Time `json:"date"`
	StoreID string    `json:"store_id"`
	Items   []Item    `json:"items"`
}
