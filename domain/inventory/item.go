// Package inventory defines the inventory item entity persisted in DynamoDB.
package inventory

// CreatedAtLayout is the date stamp layout for Item.CreatedAt (MM-DD-YYYY).
const CreatedAtLayout = "01-02-2006"

// Item is one inventory record. ID and CreatedAt are assigned once at
// creation and never modified afterwards.
type Item struct {
	ID        string  `json:"id" dynamodbav:"id"`
	Name      string  `json:"name" dynamodbav:"name"`
	Quantity  float64 `json:"quantity" dynamodbav:"quantity"`
	UnitPrice float64 `json:"unitPrice" dynamodbav:"unitPrice"`
	CreatedAt string  `json:"createdAt" dynamodbav:"createdAt"`
}

// ItemSearch is a query descriptor carrying an optional ID and/or Name.
// It is only ever used as a parameter object, never persisted.
type ItemSearch struct {
	ID   string
	Name string
}
