// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressType classifies an address in the owner's address book.
type AddressType string

const (
	// AddressTypeHome is a residential address.
	AddressTypeHome AddressType = "home"
	// AddressTypeWork is a workplace address.
	AddressTypeWork AddressType = "work"
	// AddressTypeOther is any other address.
	AddressTypeOther AddressType = "other"
)

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	default:
		return false
	}
}

// Address is a shipping address in a user's address book.
// The owning user is the single source of truth for membership: listing a
// user's addresses is a query on OwnerID, never a duplicated id list.
type Address struct {
	ID          uuid.UUID   // The Global Unique Identifier (GUID) for the address.
	OwnerID     uuid.UUID   // The user that owns this address.
	Type        AddressType // home, work or other.
	ContactName string      // Name of the person receiving deliveries.
	Phone       string      // Contact phone number.
	Street      string      // Street line.
	City        string      // City.
	State       string      // State or province.
	PostalCode  string      // Postal or ZIP code.
	Country     string      // Country.
	IsDefault   bool        // Indicates the owner's default shipping address.
	CreatedAt   time.Time   // Timestamp of when this address was created.
	UpdatedAt   time.Time   // Timestamp of the last modification.
}
