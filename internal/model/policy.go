package model

import (
	"errors"
	"fmt"
)

// PolicyParameters defines a continuous-review (R, Q) replenishment policy.
// Units:
// - R: units of stock (inventory position at or below which we reorder)
// - Q: units per purchase order (fixed size, every order)
// - LeadTimeDays: days between placing and receiving an order
// - HoldCostPerUnitDay: $/unit-day, charged on end-of-day on-hand stock
// - OrderCostPerOrder: $/order, charged when an order is placed
type PolicyParameters struct {
	R                  int
	Q                  int
	LeadTimeDays       int
	HoldCostPerUnitDay float64
	OrderCostPerOrder  float64
}

func (p PolicyParameters) Validate() error {
	if p.R < 0 {
		return fmt.Errorf("reorder point R must be >= 0, got %d", p.R)
	}
	if p.Q <= 0 {
		return fmt.Errorf("order quantity Q must be > 0, got %d", p.Q)
	}
	if p.LeadTimeDays < 1 {
		return fmt.Errorf("lead time must be >= 1 day, got %d", p.LeadTimeDays)
	}
	if p.HoldCostPerUnitDay < 0 {
		return errors.New("HoldCostPerUnitDay must be >= 0")
	}
	if p.OrderCostPerOrder < 0 {
		return errors.New("OrderCostPerOrder must be >= 0")
	}
	return nil
}

// WithRQ returns a copy with a different (R, Q), keeping the cost constants.
// Grid search uses this to sweep candidates around a baseline policy.
func (p PolicyParameters) WithRQ(r, q int) PolicyParameters {
	p.R = r
	p.Q = q
	return p
}

// Shipment is one in-transit purchase order.
// Created at reorder time, removed when DaysRemaining reaches zero.
type Shipment struct {
	DaysRemaining int
	Quantity      int
}
