// internal/models/user.go
package models

type AccountType string

const (
	AccountTypeBuyer  AccountType = "buyer"
	AccountTypeSeller AccountType = "seller"
)

// UserAccount is the single "current" user record. Logout clears it from
// the store; seller inventories persist independently under their
// email-qualified keys.
type UserAccount struct {
	Email         string      `json:"email"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	AccountType   AccountType `json:"account_type"`
	BusinessName  string      `json:"business_name,omitempty"`
	BusinessPhone string      `json:"business_phone,omitempty"`
	CreatedAt     int64       `json:"created_at"` // unix milliseconds
}

func (u *UserAccount) IsSeller() bool {
	return u.AccountType == AccountTypeSeller
}

// RegistrationDraft carries the registration form fields.
type RegistrationDraft struct {
	Email         string      `json:"email" validate:"required,email"`
	FirstName     string      `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string      `json:"last_name" validate:"required,min=1,max=100"`
	AccountType   AccountType `json:"account_type" validate:"required,oneof=buyer seller"`
	BusinessName  string      `json:"business_name" validate:"required_if=AccountType seller"`
	BusinessPhone string      `json:"business_phone"`
}
