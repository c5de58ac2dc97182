package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bank identifies the card issuer or network shown on the dashboard.
type Bank string

const (
	BankVisa       Bank = "Visa"
	BankMastercard Bank = "Mastercard"
	BankAmex       Bank = "Amex"
	BankBBVA       Bank = "BBVA"
	BankSantander  Bank = "Santander"
	BankHSBC       Bank = "HSBC"
	BankCiti       Bank = "Citi"
	BankOther      Bank = "Other"
)

// Banks lists every supported Bank in display order.
var Banks = []Bank{
	BankVisa, BankMastercard, BankAmex, BankBBVA,
	BankSantander, BankHSBC, BankCiti, BankOther,
}

// Valid reports whether b is one of the supported banks.
func (b Bank) Valid() bool {
	for _, known := range Banks {
		if b == known {
			return true
		}
	}
	return false
}

// Card is a tracked credit card.
// Used may exceed CreditLimit after a transfer; it is never negative.
type Card struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Bank           Bank            `json:"bank"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	Used           decimal.Decimal `json:"used"`
	CutoffDay      int             `json:"cutoffDay"`  // statement closes
	BillingDay     int             `json:"billingDay"` // payment due
	CommissionRate decimal.Decimal `json:"commissionRate"`
}

// Available returns the unused credit, floored at zero.
func (c *Card) Available() decimal.Decimal {
	return FloorZero(c.CreditLimit.Sub(c.Used))
}

// UtilizationPercent returns Used as a whole percentage of CreditLimit,
// capped at 100. A card without a limit reports 0.
func (c *Card) UtilizationPercent() int64 {
	if !c.CreditLimit.IsPositive() {
		return 0
	}
	pct := c.Used.Div(c.CreditLimit).Mul(decimal.NewFromInt(100)).Round(0)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.IntPart()
}

// NewCard holds the caller-entered fields of a card before an id is assigned.
type NewCard struct {
	Name           string
	Bank           Bank
	CreditLimit    decimal.Decimal
	Used           decimal.Decimal
	CutoffDay      int
	BillingDay     int
	CommissionRate decimal.Decimal
}

// WithID builds the Card for the given identifier.
func (n NewCard) WithID(id uuid.UUID) Card {
	return Card{
		ID:             id,
		Name:           n.Name,
		Bank:           n.Bank,
		CreditLimit:    n.CreditLimit,
		Used:           n.Used,
		CutoffDay:      n.CutoffDay,
		BillingDay:     n.BillingDay,
		CommissionRate: n.CommissionRate,
	}
}

// CardPatch is a partial update; nil fields are left unchanged.
type CardPatch struct {
	Name           *string
	Bank           *Bank
	CreditLimit    *decimal.Decimal
	Used           *decimal.Decimal
	CutoffDay      *int
	BillingDay     *int
	CommissionRate *decimal.Decimal
}

// Apply merges the set fields of p into c.
func (p CardPatch) Apply(c *Card) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Bank != nil {
		c.Bank = *p.Bank
	}
	if p.CreditLimit != nil {
		c.CreditLimit = *p.CreditLimit
	}
	if p.Used != nil {
		c.Used = *p.Used
	}
	if p.CutoffDay != nil {
		c.CutoffDay = *p.CutoffDay
	}
	if p.BillingDay != nil {
		c.BillingDay = *p.BillingDay
	}
	if p.CommissionRate != nil {
		c.CommissionRate = *p.CommissionRate
	}
}

// IsEmpty reports whether the patch sets no field.
func (p CardPatch) IsEmpty() bool {
	return p.Name == nil && p.Bank == nil && p.CreditLimit == nil &&
		p.Used == nil && p.CutoffDay == nil && p.BillingDay == nil &&
		p.CommissionRate == nil
}
