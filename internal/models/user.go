// Package models holds the domain entities shared by the client and server
// layers. Both sides treat these as transient snapshots of backend rows.
package models

import "time"

// User is the application profile row keyed by identity id. It is distinct
// from the identity (email + credential) the auth layer manages.
type User struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
	CreatedAt   time.Time
	LastLogin   *time.Time
}
