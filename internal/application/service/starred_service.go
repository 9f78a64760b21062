package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Tupsu-jy/star-retriever/internal/application/dto"
	"github.com/Tupsu-jy/star-retriever/internal/domain/events"
	"github.com/Tupsu-jy/star-retriever/internal/domain/repo"
)

// Callback stages, logged as the request moves through the OAuth flow
const (
	stageTokenRequested   = "token_requested"
	stageTokenObtained    = "token_obtained"
	stageListingRequested = "listing_requested"
	stageListingObtained  = "listing_obtained"
	stageNormalized       = "normalized"
)

// StarredService handles the OAuth flow for listing starred repositories
type StarredService struct {
	githubService repo.GitHubService
	dispatcher    *events.Dispatcher
}

// NewStarredService creates a new starred repositories service.
// dispatcher may be nil.
func NewStarredService(githubService repo.GitHubService, dispatcher *events.Dispatcher) *StarredService {
	return &StarredService{
		githubService: githubService,
		dispatcher:    dispatcher,
	}
}

// AuthorizationURL returns where the user must be redirected to grant access
func (s *StarredService) AuthorizationURL() string {
	return s.githubService.AuthorizationURL()
}

// HandleCallback exchanges code for an access token, fetches the token owner's
// starred repositories and normalizes them. Nothing is retried; the first
// failure ends the flow with a *repo.DomainError.
func (s *StarredService) HandleCallback(ctx context.Context, requestID, code string) (*dto.StarredRepositoriesResponse, error) {
	log := zerolog.Ctx(ctx)

	if strings.TrimSpace(code) == "" {
		return nil, repo.ErrValidation("code", nil)
	}

	log.Debug().Str("stage", stageTokenRequested).Msg("exchanging authorization code")
	token, err := s.githubService.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("stage", stageTokenObtained).Msg("access token obtained")

	log.Debug().Str("stage", stageListingRequested).Msg("fetching starred repositories")
	listing, err := s.githubService.FetchStarredRepositories(ctx, token)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("stage", stageListingObtained).Int("entries", len(listing)).Msg("starred repositories fetched")

	starred, err := repo.NormalizeStarred(listing)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("stage", stageNormalized).Int("count", starred.Count()).Msg("starred repositories normalized")

	if s.dispatcher != nil {
		event := repo.NewStarredRepositoriesFetchedEvent(requestID, starred.Count())
		// Event handlers are observers only.
		_ = s.dispatcher.Dispatch(ctx, event)
	}

	return dto.NewStarredRepositoriesResponse(starred), nil
}
