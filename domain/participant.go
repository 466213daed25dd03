// Package domain contains core concepts of the chat client.
// This file defines the identity of the logged-in participant.
// No network or terminal logic should be added here.
package domain

type UserID int

// UserIdentity is created on a successful login and replaced as a whole by the
// next one.
type UserIdentity struct {
	ID   UserID
	Name string
}
