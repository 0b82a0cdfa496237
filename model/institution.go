package model

import (
	"github.com/gofrs/uuid/v5"
)

// InstitutionType is the kind of financial institution an account lives at.
type InstitutionType string

const (
	InstitutionTypeBank       InstitutionType = "BANK"
	InstitutionTypeCreditCard InstitutionType = "CREDIT_CARD"
	InstitutionTypeInvestment InstitutionType = "INVESTMENT"
	InstitutionTypeLoan       InstitutionType = "LOAN"
)

// Institution is a bank or other provider holding one of the user's accounts.
type Institution struct {
	ID      *uuid.UUID       `json:"id,omitempty"`
	Name    *string          `json:"name,omitempty"`
	Active  bool             `json:"active"`
	Type    *InstitutionType `json:"type,omitempty"`
	Balance *Amount          `json:"balance,omitempty"`
}
