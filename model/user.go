package model

import (
	"github.com/gofrs/uuid/v5"
)

// User is an application user owning accounts.
type User struct {
	ID         *uuid.UUID  `json:"id,omitempty"`
	FirstName  *string     `json:"firstName,omitempty"`
	LastName   *string     `json:"lastName,omitempty"`
	Email      *string     `json:"email,omitempty"`
	Phone      *string     `json:"phone,omitempty"`
	Activated  bool        `json:"activated"`
	Credential *Credential `json:"credential,omitempty"`
}

// Credential is a username/password pair.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}
