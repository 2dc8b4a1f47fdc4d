// Package data defines the wire types exchanged with the SecureDrop
// journalist API. They mirror the server's JSON schema and carry no
// behavior beyond decoding, with one exception: Reply checks its PGP armor
// framing at construction time.
package data

import (
	"time"

	"github.com/google/uuid"
)

// Response is the generic message envelope returned by mutating endpoints
// (star, delete, reply) and by 4xx error bodies.
type Response struct {
	Message string `json:"message"`
}

// Sources is the response of the source-listing endpoint.
type Sources struct {
	Sources []Source `json:"sources"`
}

// Source is an anonymous submitter tracked by the platform.
type Source struct {
	// UUID uniquely identifies the source. Treat it as opaque.
	UUID uuid.UUID `json:"uuid"`
	// IsFlagged reports whether the source has been flagged.
	IsFlagged bool `json:"flagged"`
	// LastUpdated is the timestamp of the last source activity.
	LastUpdated time.Time `json:"last_updated"`
	// InteractionCount is the total of messages and files submitted by the
	// source plus replies sent to it.
	InteractionCount int `json:"interaction_count"`
	// JournalistDesignation is the adjective-noun handle journalists use to
	// refer to the source.
	JournalistDesignation string `json:"journalist_designation"`
	NumberOfDocuments     int    `json:"number_of_documents"`
	NumberOfMessages      int    `json:"number_of_messages"`
	// PublicKey is the source's armored public key, used to encrypt replies.
	PublicKey string `json:"public_key"`
}

// Submissions is the response of the submission-listing endpoint.
type Submissions struct {
	Submissions []Submission `json:"submissions"`
}

// Submission is one file or message uploaded by a source.
type Submission struct {
	// UUID uniquely identifies the submission. Treat it as opaque.
	UUID uuid.UUID `json:"uuid"`
	// Filename is the server-side name, e.g. "1-dappled_potato-msg.gpg".
	Filename string `json:"filename"`
	IsRead   bool   `json:"is_read"`
	// Size is the payload size in bytes.
	Size int64 `json:"size"`
}

// User wraps the account details of the currently logged-in journalist.
type User struct {
	Profile Profile `json:"user"`
}

// Profile holds the journalist account details.
type Profile struct {
	IsAdmin   bool      `json:"is_admin"`
	LastLogin time.Time `json:"last_login"`
	Username  string    `json:"username"`
}
