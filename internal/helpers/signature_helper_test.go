package helpers

import (
	"testing"

	"github.com/farellandr/eventhub/internal/models"
)

func TestTicketPayloadRoundTrip(t *testing.T) {
	secret := []byte("secret")
	reg := models.EventRegistration{ID: "reg-1", EventID: "event-1", UserID: "user-3"}

	payload := TicketPayload(reg, secret)
	id, sig, err := ParseTicketPayload(payload)
	if err != nil {
		t.Fatalf("ParseTicketPayload() error = %v", err)
	}
	if id != "reg-1" {
		t.Errorf("id = %q, want reg-1", id)
	}
	if !VerifyTicketSignature(reg, sig, secret) {
		t.Error("signature did not verify")
	}

	tampered := reg
	tampered.UserID = "user-9"
	if VerifyTicketSignature(tampered, sig, secret) {
		t.Error("signature verified for a different holder")
	}
	if VerifyTicketSignature(reg, sig, []byte("other")) {
		t.Error("signature verified with a different secret")
	}
}

func TestParseTicketPayloadInvalid(t *testing.T) {
	for _, payload := range []string{
		"",
		"registration:reg-1",
		"purchase:reg-1;event:e;signature:abc",
		"registration:;event:e;signature:abc",
		"registration:reg-1;event:e;signature:",
	} {
		if _, _, err := ParseTicketPayload(payload); err == nil {
			t.Errorf("ParseTicketPayload(%q) expected error", payload)
		}
	}
}
