package securedrop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/securedrop/apierror"
	"github.com/dmitrijs2005/securedrop/auth"
	"github.com/dmitrijs2005/securedrop/data"
)

// Client talks to one SecureDrop journalist API server. It holds the base
// URL, the HTTP transport, and the current authorization state: either the
// credentials it was built with or the session token they were exchanged for.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      auth.Credentials
	token      *auth.Token

	// now is the clock used when serializing regenerated one-time codes.
	now func() time.Time
}

// Options tunes client construction. The zero value is usable.
type Options struct {
	// HTTPClient is the transport for all requests. Timeout and proxy
	// policy (e.g., routing over Tor) belong here. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

// NewClient builds a client for the server at baseURL (e.g.
// "http://localhost:8081" or "https://someonionservice.onion/some/path") and
// immediately exchanges creds for a session token. If the exchange fails the
// error wraps apierror.ErrAuth and no client is returned.
func NewClient(ctx context.Context, baseURL string, creds auth.Credentials, opts *Options) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("securedrop: baseURL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("securedrop: invalid baseURL %q: %w", baseURL, err)
	}
	if creds == nil {
		return nil, errors.New("securedrop: credentials are required")
	}

	httpClient := http.DefaultClient
	if opts != nil && opts.HTTPClient != nil {
		httpClient = opts.HTTPClient
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		creds:      creds,
		now:        time.Now,
	}
	if err := c.authorize(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reauthorize discards the current session token and performs a fresh
// exchange with creds. On failure the client holds no token and every
// resource operation fails with apierror.ErrAuth until a later Reauthorize
// succeeds; the old token is never served again.
func (c *Client) Reauthorize(ctx context.Context, creds auth.Credentials) error {
	if creds == nil {
		return errors.New("securedrop: credentials are required")
	}
	c.creds = creds
	c.token = nil
	return c.authorize(ctx)
}

// authorize serializes the held credentials and POSTs them to the token
// endpoint, replacing the authorization state with the issued token.
// Serialization happens here, immediately before transmission, because
// regenerated one-time codes are time-dependent.
func (c *Client) authorize(ctx context.Context) error {
	body, err := auth.Serialize(c.creds, c.now())
	if err != nil {
		return fmt.Errorf("%w: %w", apierror.ErrAuth, err)
	}

	var token auth.Token
	if err := c.dispatch(ctx, http.MethodPost, "token", body, &token); err != nil {
		c.token = nil
		return fmt.Errorf("%w: %w", apierror.ErrAuth, err)
	}
	c.token = &token
	return nil
}

// TokenExpiry reports when the current session token expires. The zero time
// means the client holds no valid token.
func (c *Client) TokenExpiry() time.Time {
	if c.token == nil {
		return time.Time{}
	}
	return c.token.Expires
}

// Sources retrieves all sources the logged-in journalist may view.
//
// Corresponds to GET /api/v1/sources.
func (c *Client) Sources(ctx context.Context) ([]data.Source, error) {
	var sources data.Sources
	if err := c.request(ctx, http.MethodGet, "sources", nil, &sources); err != nil {
		return nil, err
	}
	return sources.Sources, nil
}

// Source retrieves one source.
//
// Corresponds to GET /api/v1/sources/<uuid>.
func (c *Client) Source(ctx context.Context, sourceID uuid.UUID) (*data.Source, error) {
	var source data.Source
	if err := c.request(ctx, http.MethodGet, "sources/"+sourceID.String(), nil, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// Submissions retrieves all submissions of the given source.
//
// Corresponds to GET /api/v1/sources/<uuid>/submissions.
func (c *Client) Submissions(ctx context.Context, sourceID uuid.UUID) ([]data.Submission, error) {
	var submissions data.Submissions
	path := fmt.Sprintf("sources/%s/submissions", sourceID)
	if err := c.request(ctx, http.MethodGet, path, nil, &submissions); err != nil {
		return nil, err
	}
	return submissions.Submissions, nil
}

// Submission retrieves one submission of the given source.
//
// Corresponds to GET /api/v1/sources/<uuid>/submissions/<uuid>.
func (c *Client) Submission(ctx context.Context, sourceID, submissionID uuid.UUID) (*data.Submission, error) {
	var submission data.Submission
	path := fmt.Sprintf("sources/%s/submissions/%s", sourceID, submissionID)
	if err := c.request(ctx, http.MethodGet, path, nil, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// DeleteSubmission deletes one submission and returns the deleted record.
//
// Corresponds to DELETE /api/v1/sources/<uuid>/submissions/<uuid>.
func (c *Client) DeleteSubmission(ctx context.Context, sourceID, submissionID uuid.UUID) (*data.Submission, error) {
	var submission data.Submission
	path := fmt.Sprintf("sources/%s/submissions/%s", sourceID, submissionID)
	if err := c.request(ctx, http.MethodDelete, path, nil, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// DeleteSubmissions deletes all submissions of the given source.
//
// Corresponds to DELETE /api/v1/sources/<uuid>/submissions.
func (c *Client) DeleteSubmissions(ctx context.Context, sourceID uuid.UUID) (*data.Response, error) {
	var resp data.Response
	path := fmt.Sprintf("sources/%s/submissions", sourceID)
	if err := c.request(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadSubmission streams the encrypted payload of one submission into w
// as it arrives, bounding memory to the transfer buffer rather than the
// whole payload. The bytes are written verbatim; decryption is the caller's
// concern. A failure while writing to w is reported via apierror.ErrIO.
//
// Corresponds to GET /api/v1/sources/<uuid>/submissions/<uuid>/download.
func (c *Client) DownloadSubmission(ctx context.Context, sourceID, submissionID uuid.UUID, w io.Writer) error {
	if err := c.requireToken(); err != nil {
		return err
	}

	path := fmt.Sprintf("sources/%s/submissions/%s/download", sourceID, submissionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return &apierror.ProgrammingError{Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/pgp-encrypted")
	c.setAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := classify(resp); err != nil {
		return err
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrIO, err)
	}
	return nil
}

// ReplyToSource sends a pre-encrypted reply to the given source.
//
// Corresponds to POST /api/v1/sources/<uuid>/reply.
func (c *Client) ReplyToSource(ctx context.Context, sourceID uuid.UUID, reply data.Reply) (*data.Response, error) {
	body, err := reply.MarshalJSON()
	if err != nil {
		return nil, &apierror.ProgrammingError{Detail: err.Error()}
	}

	var resp data.Response
	path := fmt.Sprintf("sources/%s/reply", sourceID)
	if err := c.request(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StarSource adds a star to a source.
//
// Corresponds to POST /api/v1/sources/<uuid>/star.
func (c *Client) StarSource(ctx context.Context, sourceID uuid.UUID) (*data.Response, error) {
	return c.star(ctx, http.MethodPost, sourceID)
}

// UnstarSource removes the star from a source.
//
// Corresponds to DELETE /api/v1/sources/<uuid>/star.
func (c *Client) UnstarSource(ctx context.Context, sourceID uuid.UUID) (*data.Response, error) {
	return c.star(ctx, http.MethodDelete, sourceID)
}

func (c *Client) star(ctx context.Context, method string, sourceID uuid.UUID) (*data.Response, error) {
	var resp data.Response
	path := fmt.Sprintf("sources/%s/star", sourceID)
	if err := c.request(ctx, method, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// User retrieves the logged-in journalist's account details.
//
// Corresponds to GET /api/v1/user.
func (c *Client) User(ctx context.Context) (*data.User, error) {
	var user data.User
	if err := c.request(ctx, http.MethodGet, "user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
