// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can sign in and keep a favorites list.
type User struct {
	ID           uint      // Database-assigned identifier.
	Email        string    // Unique login identifier, compared case-sensitively as stored.
	PasswordHash string    // Opaque password digest. Never the plaintext.
	DisplayName  string    // Name shown in the client.
	CreatedAt    time.Time // Timestamp of registration.
}
