package model

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

// Order is an immutable order sheet. Line items are frozen snapshots of the
// products at composition time; later catalogue edits never propagate.
type Order struct {
	ID             string      `json:"id" bson:"_id"`
	UserID         string      `json:"userId" bson:"userId"`
	OrderName      string      `json:"orderName" bson:"orderName"`
	OrderDate      string      `json:"orderDate" bson:"orderDate"`
	TotalQty       int         `json:"totalQty" bson:"totalQty"`
	TotalPrice     int64       `json:"totalPrice" bson:"totalPrice"`
	DiscountAmount int64       `json:"discountAmount" bson:"discountAmount"`
	FinalTotal     int64       `json:"finalTotal" bson:"finalTotal"`
	Items          []OrderLine `json:"items" bson:"items"`
	CreatedAt      time.Time   `json:"createdAt" bson:"createdAt"`
}

// OrderLine is one frozen line item, including the denormalised display
// fields so the sheet survives deletion of the source product.
type OrderLine struct {
	ProductID   string `json:"productId" bson:"productId"`
	Name        string `json:"name" bson:"name"`
	Price       int64  `json:"price" bson:"price"`
	Qty         int    `json:"qty" bson:"qty"`
	Subtotal    int64  `json:"subtotal" bson:"subtotal"`
	ImageURL    string `json:"imageUrl" bson:"imageUrl"`
	ProductCode string `json:"productCode" bson:"productCode"`
	CategoryL1  string `json:"categoryL1" bson:"categoryL1"`
	CategoryL2  string `json:"categoryL2" bson:"categoryL2"`
	Link        string `json:"link" bson:"link"`
}

// OrderRequest is the payload for composing an order from saved products.
type OrderRequest struct {
	OrderName string             `json:"orderName"`
	OrderDate string             `json:"orderDate"`
	Discount  LooseInt           `json:"discountAmount"`
	Items     []OrderItemRequest `json:"items"`
}

// OrderItemRequest selects one product with a requested quantity.
type OrderItemRequest struct {
	ProductID string   `json:"productId"`
	Qty       LooseInt `json:"qty"`
}

// LooseInt accepts a JSON number or string and coerces it the way the order
// form did: non-digit characters are stripped and anything left unparseable
// becomes 0. It never fails to unmarshal.
type LooseInt int64

func (l *LooseInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		n = 0
	}
	*l = LooseInt(n)
	return nil
}

func (l LooseInt) Int64() int64 { return int64(l) }
