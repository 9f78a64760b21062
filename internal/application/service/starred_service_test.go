package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Tupsu-jy/star-retriever/internal/application/service"
	"github.com/Tupsu-jy/star-retriever/internal/domain/events"
	"github.com/Tupsu-jy/star-retriever/internal/domain/repo"
)

// Mock implementations
type mockGitHubService struct {
	token      string
	repos      []*repo.GitHubRepository
	tokenErr   error
	listingErr error

	exchangeCalls int
	listingCalls  int
	gotCode       string
	gotToken      string
}

func (m *mockGitHubService) AuthorizationURL() string {
	return "https://github.com/login/oauth/authorize?client_id=12345"
}

func (m *mockGitHubService) ExchangeCode(ctx context.Context, code string) (string, error) {
	m.exchangeCalls++
	m.gotCode = code
	if m.tokenErr != nil {
		return "", m.tokenErr
	}
	return m.token, nil
}

func (m *mockGitHubService) FetchStarredRepositories(ctx context.Context, accessToken string) ([]*repo.GitHubRepository, error) {
	m.listingCalls++
	m.gotToken = accessToken
	if m.listingErr != nil {
		return nil, m.listingErr
	}
	return m.repos, nil
}

func str(s string) *string { return &s }

func twoRepos() []*repo.GitHubRepository {
	return []*repo.GitHubRepository{
		{
			Name:        str("delivery-fee-calculator"),
			Description: str("Calculates delivery fee in 3 different programming languages"),
			HTMLURL:     str("https://github.com/Tupsu-jy/delivery-fee-calculator"),
			Topics:      []string{"almost-finished", "repetive"},
		},
		{
			Name:    str("kanban-exercise"),
			HTMLURL: str("https://github.com/Tupsu-jy/kanban-exercise"),
			License: &repo.GitHubLicense{Name: str("The Unlicense")},
		},
	}
}

func TestStarredService_HandleCallback(t *testing.T) {
	githubSvc := &mockGitHubService{token: "T", repos: twoRepos()}
	svc := service.NewStarredService(githubSvc, nil)

	resp, err := svc.HandleCallback(context.Background(), "req-1", "X")
	if err != nil {
		t.Fatalf("HandleCallback() error = %v", err)
	}

	if githubSvc.gotCode != "X" {
		t.Errorf("exchanged code = %v, want X", githubSvc.gotCode)
	}
	if githubSvc.gotToken != "T" {
		t.Errorf("listing token = %v, want T", githubSvc.gotToken)
	}
	if resp.Count != 2 || len(resp.Repositories) != 2 {
		t.Fatalf("Count = %v, len = %v, want 2", resp.Count, len(resp.Repositories))
	}
	if resp.Repositories[0].Name != "delivery-fee-calculator" {
		t.Errorf("Repositories[0].Name = %v", resp.Repositories[0].Name)
	}
	if resp.Repositories[1].License == nil || *resp.Repositories[1].License != "The Unlicense" {
		t.Errorf("Repositories[1].License = %v", resp.Repositories[1].License)
	}
	if resp.Repositories[1].Topics == nil {
		t.Error("Topics should be an empty slice, not nil")
	}
}

func TestStarredService_TokenFailureSkipsListing(t *testing.T) {
	githubSvc := &mockGitHubService{tokenErr: repo.ErrUpstreamToken(errors.New("connection refused"))}
	svc := service.NewStarredService(githubSvc, nil)

	_, err := svc.HandleCallback(context.Background(), "req-1", "X")

	var domainErr *repo.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != repo.CodeUpstreamToken {
		t.Fatalf("HandleCallback() error = %v, want %s", err, repo.CodeUpstreamToken)
	}
	if githubSvc.listingCalls != 0 {
		t.Errorf("listing calls = %v, want 0", githubSvc.listingCalls)
	}
}

func TestStarredService_ListingFailure(t *testing.T) {
	githubSvc := &mockGitHubService{token: "T", listingErr: repo.ErrUpstreamListing(errors.New("502"))}
	svc := service.NewStarredService(githubSvc, nil)

	_, err := svc.HandleCallback(context.Background(), "req-1", "X")

	var domainErr *repo.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != repo.CodeUpstreamListing {
		t.Fatalf("HandleCallback() error = %v, want %s", err, repo.CodeUpstreamListing)
	}
	if githubSvc.exchangeCalls != 1 || githubSvc.listingCalls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", githubSvc.exchangeCalls, githubSvc.listingCalls)
	}
}

func TestStarredService_SchemaFailure(t *testing.T) {
	repos := twoRepos()
	repos[1].HTMLURL = nil
	githubSvc := &mockGitHubService{token: "T", repos: repos}
	svc := service.NewStarredService(githubSvc, nil)

	resp, err := svc.HandleCallback(context.Background(), "req-1", "X")

	var domainErr *repo.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != repo.CodeResponseSchema {
		t.Fatalf("HandleCallback() error = %v, want %s", err, repo.CodeResponseSchema)
	}
	if resp != nil {
		t.Error("no partial response should be returned")
	}
}

func TestStarredService_EmptyCode(t *testing.T) {
	githubSvc := &mockGitHubService{token: "T"}
	svc := service.NewStarredService(githubSvc, nil)

	_, err := svc.HandleCallback(context.Background(), "req-1", "  ")

	var domainErr *repo.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != repo.CodeValidation {
		t.Fatalf("HandleCallback() error = %v, want %s", err, repo.CodeValidation)
	}
	if githubSvc.exchangeCalls != 0 {
		t.Errorf("exchange calls = %v, want 0", githubSvc.exchangeCalls)
	}
}

func TestStarredService_DispatchesFetchedEvent(t *testing.T) {
	dispatcher := events.NewDispatcher()

	var (
		mu  sync.Mutex
		got *repo.StarredRepositoriesFetchedEvent
	)
	dispatcher.Register(repo.EventTypeStarredRepositoriesFetched, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		got, _ = e.(*repo.StarredRepositoriesFetchedEvent)
		return errors.New("observer failure must not fail the request")
	})

	githubSvc := &mockGitHubService{token: "T", repos: twoRepos()}
	svc := service.NewStarredService(githubSvc, dispatcher)

	if _, err := svc.HandleCallback(context.Background(), "req-42", "X"); err != nil {
		t.Fatalf("HandleCallback() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if got == nil {
		t.Fatal("StarredRepositoriesFetchedEvent was not dispatched")
	}
	if got.RepositoryCount != 2 {
		t.Errorf("RepositoryCount = %v, want 2", got.RepositoryCount)
	}
	if got.CorrelationID() != "req-42" {
		t.Errorf("CorrelationID = %v, want req-42", got.CorrelationID())
	}
}

func TestStarredService_AuthorizationURL(t *testing.T) {
	svc := service.NewStarredService(&mockGitHubService{}, nil)

	if svc.AuthorizationURL() != "https://github.com/login/oauth/authorize?client_id=12345" {
		t.Errorf("AuthorizationURL() = %v", svc.AuthorizationURL())
	}
}
