package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID     string
	Status      Status
	Amount      decimal.Decimal
	Currency    string
	Network     string
	Description string

	// PaymentReference is the identifier assigned by the payment processor.
	// Set once at creation, immutable afterwards.
	PaymentReference string
	PaymentAddress   string

	CompanyPayload CompanyPayload
	CompanyResult  *CompanyResult

	CreatedAt time.Time
	UpdatedAt time.Time

	// Version increments on every mutation and guards conditional updates.
	Version int64
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderExists       = errors.New("order already exists")
	ErrVersionConflict   = errors.New("order version conflict")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidOrder      = errors.New("invalid order data")
	ErrInconsistentState = errors.New("order state inconsistent with payment processor")
)

// Transition moves the order to the given status if the state machine allows
// the edge. The version is bumped by the store, not here.
func (o *Order) Transition(to Status) error {
	if !o.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	o.Status = to
	return nil
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(CompanyPayload{})
	gob.Register(CompanyResult{})
}
