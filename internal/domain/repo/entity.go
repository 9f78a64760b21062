package repo

import (
	"errors"
	"fmt"
)

var errMissingField = errors.New("missing required field")

// Repository is a domain entity representing a starred GitHub repository
// in the normalized shape returned to clients.
type Repository struct {
	name        Name
	description *string
	url         URL
	license     *string
	topics      []string
}

// NewRepository creates a new Repository entity
func NewRepository(name, url string, description, license *string, topics []string) (*Repository, error) {
	repoName, err := NewName(name)
	if err != nil {
		return nil, fmt.Errorf("invalid repository name: %w", err)
	}

	repoURL, err := NewURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid repository URL: %w", err)
	}

	t := make([]string, len(topics))
	copy(t, topics)

	return &Repository{
		name:        repoName,
		description: description,
		url:         repoURL,
		license:     license,
		topics:      t,
	}, nil
}

// FromGitHub normalizes one upstream repository. index is the element's
// position in the upstream listing and is only used in error messages.
func FromGitHub(index int, gh *GitHubRepository) (*Repository, error) {
	field := func(name string) string {
		return fmt.Sprintf("[%d].%s", index, name)
	}

	if gh == nil {
		return nil, ErrResponseSchema(fmt.Sprintf("[%d]", index), errors.New("repository entry is null"))
	}
	if gh.Name == nil {
		return nil, ErrResponseSchema(field("name"), errMissingField)
	}
	if gh.HTMLURL == nil {
		return nil, ErrResponseSchema(field("html_url"), errMissingField)
	}

	// A license object without a name counts as no license.
	var license *string
	if gh.License != nil {
		license = gh.License.Name
	}

	repoName, err := NewName(*gh.Name)
	if err != nil {
		return nil, ErrResponseSchema(field("name"), err)
	}
	repoURL, err := NewURL(*gh.HTMLURL)
	if err != nil {
		return nil, ErrResponseSchema(field("html_url"), err)
	}

	topics := make([]string, len(gh.Topics))
	copy(topics, gh.Topics)

	return &Repository{
		name:        repoName,
		description: gh.Description,
		url:         repoURL,
		license:     license,
		topics:      topics,
	}, nil
}

// Getters

func (r *Repository) Name() Name {
	return r.name
}

func (r *Repository) Description() *string {
	return r.description
}

func (r *Repository) URL() URL {
	return r.url
}

func (r *Repository) License() *string {
	return r.license
}

// Topics never returns nil.
func (r *Repository) Topics() []string {
	return r.topics
}

// String returns string representation (for debugging)
func (r *Repository) String() string {
	return fmt.Sprintf("Repository{name: %s, url: %s}", r.name.String(), r.url.String())
}

// StarredRepositories is the ordered set of repositories a user has starred.
type StarredRepositories struct {
	repositories []*Repository
}

// NormalizeStarred converts an upstream listing into StarredRepositories,
// preserving order. Any invalid entry fails the whole listing.
func NormalizeStarred(listing []*GitHubRepository) (*StarredRepositories, error) {
	repos := make([]*Repository, 0, len(listing))
	for i, gh := range listing {
		r, err := FromGitHub(i, gh)
		if err != nil {
			return nil, err
		}
		repos = append(repos, r)
	}
	return &StarredRepositories{repositories: repos}, nil
}

func (s *StarredRepositories) Repositories() []*Repository {
	return s.repositories
}

func (s *StarredRepositories) Count() int {
	return len(s.repositories)
}
