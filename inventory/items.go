package inventory

import "math"

// Item is an inventory record. The store-assigned identifier is normalized
// to a string at this boundary: the row store's integer key and the document
// store's object id both render as their canonical string form.
type Item struct {
	ID          string  `json:"id"`
	OwnerID     int     `json:"user_id"` // Account that created the record; never reassigned
	Name        string  `json:"item_name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ItemInput is the write payload for create and update. Quantity is decoded
// as a float so that a fractional value is a validation message rather than
// a decode failure.
type ItemInput struct {
	Name        string   `json:"item_name"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Price       *float64 `json:"price"`
}

// Validate collects every violated item rule.
func (in ItemInput) Validate() []string {
	var violations []string

	if in.Name == "" {
		violations = append(violations, "Item name is required.")
	}
	if in.Quantity == nil || *in.Quantity != math.Trunc(*in.Quantity) || *in.Quantity <= 0 {
		violations = append(violations, "Quantity must be a positive integer.")
	}
	if in.Price == nil || *in.Price <= 0 {
		violations = append(violations, "Price must be a positive number.")
	}

	return violations
}

// item builds the record to persist, stamping the owner from the acting
// account. Only valid inputs reach this point.
func (in ItemInput) item(ownerID int) Item {
	return Item{
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    int(*in.Quantity),
		Price:       *in.Price,
	}
}
