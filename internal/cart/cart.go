// Package cart holds the shopping cart: an ordered list of lines merged by
// menu item ID, and a Store that persists it as a single JSON snapshot.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
)

var ErrMalformedSnapshot = errors.New("malformed cart snapshot")

// MaxQuantity is the largest quantity a single line can hold
const MaxQuantity = 99

// Cart is an ordered collection of lines, at most one per item ID.
// The zero value is an empty cart.
type Cart struct {
	lines []models.CartLine
}

// New builds a cart by adding each line in order
func New(lines ...models.CartLine) Cart {
	var c Cart
	for _, l := range lines {
		c.Add(l.ID, l.Name, l.Price, l.Quantity)
	}
	return c
}

// Add merges quantity into the line for id, appending a new line when none
// exists. Non-positive quantities count as 1, line quantities saturate at
// MaxQuantity and negative prices count as 0. Ids below 1 are not menu
// items; Add ignores them and reports false.
func (c *Cart) Add(id int64, name string, price float64, quantity int) bool {
	if id < 1 {
		return false
	}
	quantity = clampQuantity(quantity)

	if i := c.index(id); i >= 0 {
		// both operands are within [1, MaxQuantity], so the sum cannot overflow
		c.lines[i].Quantity = clampQuantity(c.lines[i].Quantity + quantity)
		return true
	}

	c.lines = append(c.lines, models.CartLine{
		ID:       id,
		Name:     name,
		Price:    normalizePrice(price),
		Quantity: quantity,
	})
	return true
}

// Remove deletes the line for id; it is a no-op when absent
func (c *Cart) Remove(id int64) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
}

// SetQuantity replaces the quantity of the line for id, clamped to
// [1, MaxQuantity]. It reports whether the line exists.
func (c *Cart) SetQuantity(id int64, quantity int) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = clampQuantity(quantity)
	return true
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order
func (c Cart) Lines() []models.CartLine {
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len returns the number of distinct lines
func (c Cart) Len() int {
	return len(c.lines)
}

// Total returns the sum of price times quantity over all lines
func (c Cart) Total() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count returns the sum of all quantities
func (c Cart) Count() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Summary returns the lines with their derived count and total
func (c Cart) Summary() models.CartSummary {
	return models.CartSummary{
		Lines: c.Lines(),
		Count: c.Count(),
		Total: c.Total(),
	}
}

func (c Cart) index(id int64) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

func normalizePrice(price float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0
	}
	return price
}

// Encode serializes the cart as a JSON array of lines
func Encode(c Cart) ([]byte, error) {
	data, err := json.Marshal(c.Lines())
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot produced by Encode. Lines sharing an ID are
// merged and quantities above MaxQuantity are capped; a line with a
// non-positive id or quantity or a negative price makes the whole snapshot
// malformed.
func Decode(data []byte) (Cart, error) {
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return Cart{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	for i, l := range lines {
		if l.ID <= 0 || l.Quantity < 1 || l.Price < 0 {
			return Cart{}, fmt.Errorf("%w: invalid line %d", ErrMalformedSnapshot, i)
		}
	}

	return New(lines...), nil
}
