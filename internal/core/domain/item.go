package domain

import "errors"

var ErrItemInvalid = errors.New("item name and non-negative integer price are required")

// Item is a catalog entry. Price is an opaque non-negative integer in
// currency minor units; the API never does arithmetic on it.
type Item struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
