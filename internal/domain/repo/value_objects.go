package repo

import (
	"fmt"
	"net/url"
	"strings"
)

// Name is a value object representing a repository name
type Name struct {
	value string
}

// NewName creates a new Name with validation
func NewName(name string) (Name, error) {
	if strings.TrimSpace(name) == "" {
		return Name{}, fmt.Errorf("repository name cannot be empty")
	}

	return Name{value: name}, nil
}

func (n Name) String() string {
	return n.value
}

func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

// URL is a value object representing a repository's web URL
type URL struct {
	value string
}

// NewURL creates a new URL with validation
func NewURL(raw string) (URL, error) {
	if raw == "" {
		return URL{}, fmt.Errorf("repository URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return URL{}, fmt.Errorf("repository URL is malformed: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return URL{}, fmt.Errorf("repository URL must be a valid HTTP(S) URL")
	}
	if u.Host == "" {
		return URL{}, fmt.Errorf("repository URL must have a host")
	}

	return URL{value: raw}, nil
}

func (u URL) String() string {
	return u.value
}

func (u URL) Equals(other URL) bool {
	return u.value == other.value
}
