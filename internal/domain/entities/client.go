package entities

import "time"

// Client is a borrower of the mutual, identified by CUIT.
//
// Storage model (DynamoDB):
//   - PK: cuit
//
// Imports merge into the stored item: fields present in a later import
// overwrite, fields absent from it are preserved.

type Client struct {
	CUIT      string     `json:"cuit"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Age       *int       `json:"age,omitempty"`
	Gender    string     `json:"gender"`
	UpdatedAt time.Time  `json:"updated_at"`
}
