// Package githubapi implements the contributor-listing and profile-lookup
// collaborators on top of the GitHub REST API.
package githubapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/go-github/v67/github"
	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// maxPerPage is the largest page size the contributors endpoint accepts.
	maxPerPage = 100

	httpClientTimeout = 30 * time.Second

	// EnvToken holds the API token.
	EnvToken = "GITHUB_TOKEN"
	// EnvTokenFallback is consulted when EnvToken is unset.
	EnvTokenFallback = "GH_TOKEN"
	// EnvAPIURL overrides the API base URL.
	EnvAPIURL = "GITHUB_API_URL"
)

// Client implements ports.ContributorLister and ports.LocationFetcher.
type Client struct {
	client *github.Client
}

type config struct {
	httpClient *http.Client
	token      string
	baseURL    string
}

// Option configures a Client.
type Option func(*config)

// WithToken authenticates every request with token. An empty token means anonymous access.
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithBaseURL points the client at another API root, such as GitHub Enterprise or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// NewClient creates a Client.
func NewClient(opts ...Option) (*Client, error) {
	cfg := &config{
		httpClient: &http.Client{Timeout: httpClientTimeout},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	gh := github.NewClient(cfg.httpClient)
	if cfg.token != "" {
		gh = gh.WithAuthToken(cfg.token)
	}

	if cfg.baseURL != "" {
		base := cfg.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid GitHub API URL"), "url", cfg.baseURL)
		}
		gh.BaseURL = u
	}

	return &Client{client: gh}, nil
}

// NewClientFromEnv creates a Client configured from GITHUB_TOKEN (or GH_TOKEN)
// and GITHUB_API_URL.
func NewClientFromEnv() (*Client, error) {
	token := os.Getenv(EnvToken)
	if token == "" {
		token = os.Getenv(EnvTokenFallback)
	}
	return NewClient(WithToken(token), WithBaseURL(os.Getenv(EnvAPIURL)))
}

// ListContributors returns up to limit contributor logins of ref in the order
// GitHub ranks them, following pagination until the limit is reached.
func (c *Client) ListContributors(
	ctx context.Context,
	ref domain.RepositoryRef,
	limit int,
) ([]domain.ContributorRef, error) {
	if limit <= 0 {
		return nil, nil
	}

	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: min(limit, maxPerPage)},
	}

	out := make([]domain.ContributorRef, 0, min(limit, maxPerPage))
	for {
		page, resp, err := c.client.Repositories.ListContributors(ctx, ref.Owner, ref.Name, opts)
		if err != nil {
			return nil, zerr.With(wrapError(err, resp, "failed to list contributors"), "repository", ref.String())
		}

		for _, contributor := range page {
			login := contributor.GetLogin()
			if login == "" {
				continue
			}
			out = append(out, domain.ContributorRef(login))
			if len(out) == limit {
				return out, nil
			}
		}

		if resp == nil || resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

// FetchLocation returns the location declared on the contributor's profile.
func (c *Client) FetchLocation(ctx context.Context, contributor domain.ContributorRef) (domain.Location, error) {
	user, resp, err := c.client.Users.Get(ctx, contributor.String())
	if err != nil {
		return domain.NoLocation, zerr.With(wrapError(err, resp, "failed to get user profile"), "contributor", contributor.String())
	}

	return domain.DeclaredLocation(user.GetLocation()), nil
}

// wrapError classifies a go-github error. The result always matches
// domain.ErrFetchFailed, plus domain.ErrRateLimited or domain.ErrNotFound
// where that applies.
func wrapError(err error, resp *github.Response, message string) error {
	statusCode := 0
	if resp != nil && resp.Response != nil {
		statusCode = resp.StatusCode
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		statusCode = ghErr.Response.StatusCode
	}

	wrapped := zerr.Wrap(err, message)
	if statusCode != 0 {
		wrapped = zerr.With(wrapped, "status_code", statusCode)
	}

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return errors.Join(domain.ErrFetchFailed, domain.ErrRateLimited, wrapped)
	case statusCode == http.StatusNotFound:
		return errors.Join(domain.ErrFetchFailed, domain.ErrNotFound, wrapped)
	default:
		return errors.Join(domain.ErrFetchFailed, wrapped)
	}
}
