package auth

import "time"

// Token is the short-lived bearer credential issued by the token endpoint.
// The client engine owns it exclusively; it leaves the engine only inside
// the Authorization header of outgoing requests.
type Token struct {
	Value   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
