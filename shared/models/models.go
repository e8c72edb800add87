package models

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrCurrencyMismatch = errors.New("currency mismatch")

// ID is an opaque identifier. Booking IDs are UUIDs; user and event IDs
// come from other services and are kept as given.
type ID string

// GenerateUUID creates a new UUID-backed ID
func GenerateUUID() ID {
	return ID(uuid.New().String())
}

// NewID creates an ID from a UUID string
func NewID(id string) (ID, error) {
	_, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}
	return ID(id), nil
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsEmpty() bool {
	return id == ""
}

// Timestamps represents creation and update times
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimestamps creates timestamps set to now (UTC)
func NewTimestamps() Timestamps {
	now := time.Now().UTC()
	return Timestamps{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update returns a copy with UpdatedAt set to now
func (t Timestamps) Update() Timestamps {
	t.UpdatedAt = time.Now().UTC()
	return t
}

// Version is the optimistic locking counter stored with each row
type Version struct {
	Value int
}

func NewVersion() Version {
	return Version{Value: 1}
}

// Update increments version
func (v Version) Update() Version {
	v.Value++
	return v
}

// Previous is the version a row must still have for an update to apply
func (v Version) Previous() int {
	return v.Value - 1
}

// Money represents a monetary amount in minor units
type Money struct {
	Amount   int64  `json:"amount"`   // Amount in cents
	Currency string `json:"currency"` // Currency code (USD, EUR, etc.)
}

func NewMoney(amount int64, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// MoneyFromDecimal converts a major-unit amount (e.g. 49.99) to cents,
// rounding half away from zero.
func MoneyFromDecimal(amount float64, currency string) Money {
	return Money{
		Amount:   int64(math.Round(amount * 100)),
		Currency: currency,
	}
}

// Decimal returns the amount in major units
func (m Money) Decimal() float64 {
	return float64(m.Amount) / 100
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// Multiply returns the amount times a quantity
func (m Money) Multiply(quantity int) Money {
	return Money{
		Amount:   m.Amount * int64(quantity),
		Currency: m.Currency,
	}
}

// Add adds two money values (must have same currency)
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{
		Amount:   m.Amount + other.Amount,
		Currency: m.Currency,
	}, nil
}

// GreaterThan compares two money values (must have same currency)
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.Currency != other.Currency {
		return false, ErrCurrencyMismatch
	}
	return m.Amount > other.Amount, nil
}
