package constants

import "fmt"

// AccountType is the role carried in users.account_type and in the token.
type AccountType string

const (
	AccountAdministrator AccountType = "Administrator"
	AccountAccountant    AccountType = "Accountant"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "Only administrators can access %s."
	ErrUnknownAccountType  = "unknown account type %q"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var AllAccountTypes = []AccountType{
	AccountAdministrator,
	AccountAccountant,
}

func (a AccountType) Valid() bool {
	switch a {
	case AccountAdministrator, AccountAccountant:
		return true
	}
	return false
}

func (a AccountType) IsAdministrator() bool {
	switch a {
	case AccountAdministrator:
		return true
	case AccountAccountant:
		return false
	}
	return false
}

func (a AccountType) String() string { return string(a) }

// ParseAccountType rejects anything outside the closed set.
func ParseAccountType(s string) (AccountType, error) {
	a := AccountType(s)
	if !a.Valid() {
		return "", fmt.Errorf(ErrUnknownAccountType, s)
	}
	return a, nil
}
