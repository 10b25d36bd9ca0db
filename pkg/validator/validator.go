package validator

import (
	"net/mail"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(email, password, fullName string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	} else if len(password) > 72 {
		// bcrypt rejects inputs over 72 bytes.
		errs.Add("password", "Password must be at most 72 characters")
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		errs.Add("full_name", "Full name is required")
	} else if len(fullName) > 200 {
		errs.Add("full_name", "Full name is too long")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

// ValidatePurchase checks shape only. Amounts are not priced against an
// oracle and wallet addresses are not checksummed.
func ValidatePurchase(cryptoType, walletAddress string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(cryptoType) == "" {
		errs.Add("crypto_type", "Crypto type is required")
	}
	if strings.TrimSpace(walletAddress) == "" {
		errs.Add("wallet_address", "Wallet address is required")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}
