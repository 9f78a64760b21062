package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Tupsu-jy/star-retriever/internal/config"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Scope is the fixed scope string requested from GitHub. It is sent verbatim.
const Scope = "read:user,user:email"

// ErrListingNotArray is returned when a successful starred listing response
// does not carry a JSON array.
var ErrListingNotArray = errors.New("starred listing body is not a JSON array")

// Client handles GitHub OAuth and API interactions.
// It is safe for concurrent use.
type Client struct {
	oauth       *oauth2.Config
	httpClient  *http.Client
	tokenClient *http.Client
	baseURL     *url.URL
}

// NewClient creates a new GitHub client from the OAuth application settings
func NewClient(cfg *config.GitHubConfig) (*Client, error) {
	baseURL, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API base URL: %w", err)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{Scope},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthorizeURL,
				TokenURL: cfg.TokenURL,
				// Credentials go in the form body; this also disables the
				// library's auth style probing, which would retry the exchange.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
		tokenClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: acceptJSON{base: http.DefaultTransport},
		},
		baseURL: baseURL,
	}, nil
}

// AuthCodeURL returns the authorization endpoint URL carrying client_id,
// redirect_uri and scope.
func (c *Client) AuthCodeURL() string {
	return c.oauth.AuthCodeURL("")
}

// ExchangeCode exchanges an authorization code for an access token
func (c *Client) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.tokenClient)

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return token, nil
}

// GetStarredRepositories fetches the first page of repositories starred by the
// owner of accessToken.
func (c *Client) GetStarredRepositories(ctx context.Context, accessToken string) ([]*gh.Repository, error) {
	// A client per call keeps go-github's rate limit bookkeeping scoped to
	// one user's token.
	api := gh.NewClient(c.httpClient)
	api.BaseURL = c.baseURL

	req, err := api.NewRequest(http.MethodGet, "user/starred", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "token "+accessToken)

	resp, err := api.BareDo(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read starred listing: %w", err)
	}

	// Do would accept an empty body, null and trailing data as success.
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		return nil, ErrListingNotArray
	}
	var repos []*gh.Repository
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, err
	}

	return repos, nil
}

// acceptJSON asks the token endpoint for a JSON body instead of GitHub's
// default form encoding. oauth2 picks its parser from the response
// Content-Type, so a JSON body labelled text/plain would fail to parse.
type acceptJSON struct {
	base http.RoundTripper
}

func (t acceptJSON) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(req)
}
