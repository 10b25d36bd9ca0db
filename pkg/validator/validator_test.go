package validator

import (
	"strings"
	"testing"
)

func TestValidateRegister(t *testing.T) {
	errs := ValidateRegister("alice@example.com", "secret123", "Alice")
	if errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs = ValidateRegister("not-an-email", "secret123", "Alice")
	if _, ok := errs["email"]; !ok {
		t.Fatalf("expected email error, got %v", errs)
	}

	errs = ValidateRegister("alice@example.com", "", "")
	if _, ok := errs["password"]; !ok {
		t.Fatalf("expected password error, got %v", errs)
	}
	if _, ok := errs["full_name"]; !ok {
		t.Fatalf("expected full_name error, got %v", errs)
	}
}

func TestValidateRegisterPasswordLength(t *testing.T) {
	long := strings.Repeat("x", 80)
	errs := ValidateRegister("alice@example.com", long, "Alice")
	if _, ok := errs["password"]; !ok {
		t.Fatalf("expected password error for %d byte password, got %v", len(long), errs)
	}

	// 72 bytes is the longest input bcrypt accepts.
	errs = ValidateRegister("alice@example.com", strings.Repeat("x", 72), "Alice")
	if errs.HasErrors() {
		t.Fatalf("expected 72 byte password to pass, got %v", errs)
	}
}

func TestValidatePurchase(t *testing.T) {
	if errs := ValidatePurchase("ETH", "0xabc"); errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if errs := ValidatePurchase("", ""); len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
}
