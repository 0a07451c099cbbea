// Package schema declares the input contract advertised to external
// callers that construct invoice requests (for example an agent's
// tool-invocation layer).
//
// The declaration is deliberately explicit rather than derived from the
// validator's types by reflection, so the two can be tested for
// consistency independently.
package schema

// Property is a node of the JSON-schema style declaration.
type Property struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Default     interface{}          `json:"default,omitempty"`
	Enum        []string             `json:"enum,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Required    []string             `json:"required,omitempty"`
}

// Definition returns the full input schema: an object with the invoice
// record and an optional output path.
func Definition() *Property {
	return &Property{
		Type: "object",
		Properties: map[string]*Property{
			"invoice": Invoice(),
			"outputPath": {
				Type:        "string",
				Description: "Custom output file path (defaults to Desktop/invoice-{invoiceNumber}.pdf)",
			},
		},
		Required: []string{"invoice"},
	}
}

// Invoice returns the schema of the invoice data object.
func Invoice() *Property {
	return &Property{
		Type:        "object",
		Description: "Invoice data object with business, customer, and item information",
		Properties: map[string]*Property{
			"invoiceNumber": {
				Type:        "string",
				Description: "Unique invoice identifier",
				Default:     "INV-0001",
			},
			"date": {
				Type:        "string",
				Description: "Invoice date in YYYY-MM-DD format",
			},
			"dueDate": {
				Type:        "string",
				Description: "Payment due date in YYYY-MM-DD format",
			},
			"business": {
				Type:        "object",
				Description: "Business information",
				Properties: map[string]*Property{
					"name":          {Type: "string", Description: "Business name"},
					"email":         {Type: "string", Description: "Business email"},
					"phone":         {Type: "string", Description: "Business phone"},
					"address":       {Type: "string", Description: "Business address (supports newlines for multiline addresses)"},
					"accountName":   {Type: "string", Description: "Bank account name"},
					"accountNumber": {Type: "string", Description: "Bank account number"},
					"sortCode":      {Type: "string", Description: "Bank Swift/BIC code"},
					"logo":          {Type: "string", Description: "Business logo URL"},
				},
				Required: []string{"name"},
			},
			"customer": {
				Type:        "object",
				Description: "Customer information",
				Properties: map[string]*Property{
					"name":      {Type: "string", Description: "Customer name"},
					"email":     {Type: "string", Description: "Customer email"},
					"address":   {Type: "string", Description: "Customer address (supports newlines for multiline addresses)"},
					"vatNumber": {Type: "string", Description: "Customer VAT number (for EU reverse charge)"},
				},
				Required: []string{"name"},
			},
			"items": {
				Type:        "array",
				Description: "Array of invoice line items",
				Items: &Property{
					Type: "object",
					Properties: map[string]*Property{
						"description": {Type: "string", Description: "Item description"},
						"quantity":    {Type: "number", Description: "Item quantity"},
						"unitPrice":   {Type: "number", Description: "Price per unit"},
						"total":       {Type: "number", Description: "Total price for this item"},
					},
					Required: []string{"description", "quantity", "unitPrice", "total"},
				},
			},
			"subtotal":  {Type: "number", Description: "Subtotal before VAT"},
			"vatRate":   {Type: "number", Description: "VAT rate as decimal (0.20 for 20%)"},
			"vatAmount": {Type: "number", Description: "VAT amount"},
			"total":     {Type: "number", Description: "Total amount including VAT"},
			"currency": {
				Type:        "string",
				Description: "Currency code. Use GBP for British Pounds/UK, USD for US Dollars/American, CAD for Canadian Dollars, EUR for Euros/European",
				Enum:        []string{"GBP", "USD", "CAD", "EUR"},
				Default:     "GBP",
			},
			"notes": {Type: "string", Description: "Additional notes"},
			"terms": {Type: "string", Description: "Payment terms"},
		},
		Required: []string{
			"invoiceNumber",
			"date",
			"dueDate",
			"business",
			"customer",
			"items",
			"subtotal",
			"total",
		},
	}
}
