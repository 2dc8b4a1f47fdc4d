package data

import (
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/securedrop/apierror"
)

const (
	armorBegin = "-----BEGIN PGP MESSAGE-----"
	armorEnd   = "-----END PGP MESSAGE-----"
)

// Reply is a pre-encrypted message to a source. The payload is opaque to the
// client; encryption happens before it gets here.
type Reply struct {
	message string
}

// NewReply wraps an armored payload. The payload must start and end with the
// PGP armor markers; only the framing is checked, not the ciphertext. A
// payload without the markers is rejected with an *apierror.ClientError
// before any network call.
func NewReply(message string) (Reply, error) {
	if !strings.HasPrefix(message, armorBegin) || !strings.HasSuffix(message, armorEnd) {
		return Reply{}, &apierror.ClientError{Message: "message is not PGP encrypted"}
	}
	return Reply{message: message}, nil
}

// Message returns the armored payload.
func (r Reply) Message() string {
	return r.message
}

// MarshalJSON renders the wire shape {"reply": <armored text>}.
func (r Reply) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Reply string `json:"reply"`
	}{Reply: r.message})
}
