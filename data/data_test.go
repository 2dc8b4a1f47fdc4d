package data

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securedrop/apierror"
)

func TestSource_Decode(t *testing.T) {
	raw := `{
		"uuid": "0f6a9276-9db1-46e1-9feb-7429d40ea0a6",
		"flagged": true,
		"last_updated": "2026-08-01T12:30:45Z",
		"interaction_count": 7,
		"journalist_designation": "dappled potato",
		"number_of_documents": 2,
		"number_of_messages": 5,
		"public_key": "-----BEGIN PGP PUBLIC KEY BLOCK-----\n..."
	}`

	var source Source
	require.NoError(t, json.Unmarshal([]byte(raw), &source))
	require.Equal(t, uuid.MustParse("0f6a9276-9db1-46e1-9feb-7429d40ea0a6"), source.UUID)
	require.True(t, source.IsFlagged)
	require.Equal(t, time.Date(2026, 8, 1, 12, 30, 45, 0, time.UTC), source.LastUpdated.UTC())
	require.Equal(t, 7, source.InteractionCount)
	require.Equal(t, "dappled potato", source.JournalistDesignation)
	require.Equal(t, 2, source.NumberOfDocuments)
	require.Equal(t, 5, source.NumberOfMessages)
}

func TestUser_Decode(t *testing.T) {
	raw := `{"user": {"is_admin": false, "last_login": "2026-08-27T09:00:00Z", "username": "journalist"}}`

	var user User
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	require.False(t, user.Profile.IsAdmin)
	require.Equal(t, "journalist", user.Profile.Username)
	require.Equal(t, 2026, user.Profile.LastLogin.Year())
}

func TestNewReply_AcceptsArmoredPayload(t *testing.T) {
	reply, err := NewReply("-----BEGIN PGP MESSAGE-----\nX\n-----END PGP MESSAGE-----")
	require.NoError(t, err)
	require.Contains(t, reply.Message(), "BEGIN PGP MESSAGE")
}

func TestNewReply_RejectsPlaintext(t *testing.T) {
	_, err := NewReply("plain text")
	require.Error(t, err)

	var clientErr *apierror.ClientError
	require.True(t, errors.As(err, &clientErr))
	require.NotEmpty(t, clientErr.Message)
}

func TestNewReply_RejectsMissingEndMarker(t *testing.T) {
	_, err := NewReply("-----BEGIN PGP MESSAGE-----\ntruncated")
	var clientErr *apierror.ClientError
	require.True(t, errors.As(err, &clientErr))
}

func TestReply_MarshalShape(t *testing.T) {
	reply, err := NewReply("-----BEGIN PGP MESSAGE-----\nX\n-----END PGP MESSAGE-----")
	require.NoError(t, err)

	body, err := json.Marshal(reply)
	require.NoError(t, err)

	var record map[string]string
	require.NoError(t, json.Unmarshal(body, &record))
	require.Len(t, record, 1)
	require.Equal(t, reply.Message(), record["reply"])
}
