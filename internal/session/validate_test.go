package session

import (
	"errors"
	"testing"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
		wantMsg  string
	}{
		{"ok", "longenough1", "longenough1", nil, ""},
		{"mismatch", "longenough1", "longenough2", ErrPasswordMismatch, "Passwords do not match"},
		{"too short", "short", "short", ErrPasswordTooShort, "Password must be at least 8 characters"},
		{"exactly eight", "12345678", "12345678", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.password, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateRegistration() error = %v, want %v", err, tt.wantErr)
			}
			if got := Message(err); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}
