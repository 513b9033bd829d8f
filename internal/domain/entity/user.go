// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// Addresses and orders belonging to a user are not stored on the entity itself;
// they are looked up through their own repositories by owner/buyer reference, so
// there is no duplicated id list to keep consistent.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name      string    // The user's display name or real name.
	Username  string    // Unique handle shown on listings and reviews.
	Email     string    // The user's primary contact email, used as the login identifier.
	Role      Role      // The user's role in the marketplace ("user" by default).
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
