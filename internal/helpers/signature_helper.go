package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/farellandr/eventhub/internal/models"
)

func ticketSignature(reg models.EventRegistration, secret []byte) string {
	data := fmt.Sprintf("%s:%s:%s", reg.ID, reg.EventID, reg.UserID)
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// TicketPayload is the text encoded into a registration's QR ticket.
func TicketPayload(reg models.EventRegistration, secret []byte) string {
	return fmt.Sprintf("registration:%s;event:%s;signature:%s",
		reg.ID,
		reg.EventID,
		ticketSignature(reg, secret),
	)
}

// ParseTicketPayload extracts the registration id and signature from a
// scanned ticket.
func ParseTicketPayload(payload string) (registrationID, signature string, err error) {
	parts := strings.Split(payload, ";")
	if len(parts) != 3 ||
		!strings.HasPrefix(parts[0], "registration:") ||
		!strings.HasPrefix(parts[1], "event:") ||
		!strings.HasPrefix(parts[2], "signature:") {
		return "", "", fmt.Errorf("invalid ticket payload")
	}
	registrationID = strings.TrimPrefix(parts[0], "registration:")
	signature = strings.TrimPrefix(parts[2], "signature:")
	if registrationID == "" || signature == "" {
		return "", "", fmt.Errorf("invalid ticket payload")
	}
	return registrationID, signature, nil
}

func VerifyTicketSignature(reg models.EventRegistration, signature string, secret []byte) bool {
	return hmac.Equal([]byte(ticketSignature(reg, secret)), []byte(signature))
}
