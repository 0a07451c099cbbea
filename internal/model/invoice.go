// Package model defines the canonical invoice record rendered to PDF.
//
// An Invoice is constructed once by the validator, consumed once by the
// renderer, and never mutated in between. Monetary values are decimals;
// optional text fields use the empty string for "not present".
package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultInvoiceNumber is applied when the input carries no invoice number.
const DefaultInvoiceNumber = "INV-0001"

// Invoice is the root record describing a billable transaction.
type Invoice struct {
	Number    string          `json:"invoiceNumber"`
	IssueDate time.Time       `json:"date"`
	DueDate   time.Time       `json:"dueDate"`
	Business  Business        `json:"business"`
	Customer  Customer        `json:"customer"`
	Items     []Item          `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	// VATRate is a ratio in [0,1]. Nil means the input carried no rate at
	// all; the totals region renders a Tax row only when it is present.
	VATRate   *decimal.Decimal `json:"vatRate,omitempty"`
	VATAmount decimal.Decimal  `json:"vatAmount"`
	Total     decimal.Decimal  `json:"total"`
	Currency  Currency         `json:"currency"`
	Notes     string           `json:"notes,omitempty"`
	Terms     string           `json:"terms,omitempty"`
}

// Business is the issuing party, including optional bank details and logo.
type Business struct {
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"` // newline-separated lines
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	SortCode      string `json:"sortCode,omitempty"`
	Logo          string `json:"logo,omitempty"` // URL, data URI, or file path
}

// Customer is the billed party.
type Customer struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"` // newline-separated lines
	VATNumber string `json:"vatNumber,omitempty"`
}

// Item is a single line of the items table. Total is taken from the input
// as-is; it is not derived from Quantity and UnitPrice.
type Item struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// HasPaymentDetails reports whether any bank detail is present.
func (b Business) HasPaymentDetails() bool {
	return b.AccountName != "" || b.AccountNumber != "" || b.SortCode != ""
}

// AddressLines splits a newline-separated address into its visual lines.
// An absent or empty address yields no lines.
func AddressLines(address string) []string {
	if address == "" {
		return nil
	}
	lines := strings.Split(address, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
