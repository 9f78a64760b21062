package dto

import "github.com/Tupsu-jy/star-retriever/internal/domain/repo"

// CallbackRequest is the query string GitHub sends back after authorization
type CallbackRequest struct {
	Code string `form:"code" binding:"required,max=512"`
}

// RepositoryResponse represents a starred repository in API responses
type RepositoryResponse struct {
	Name        string   `json:"name" example:"kanban-exercise"`
	Description *string  `json:"description" example:"Calculates delivery fee"`
	URL         string   `json:"url" example:"https://github.com/Tupsu-jy/kanban-exercise"`
	License     *string  `json:"license" example:"The Unlicense"`
	Topics      []string `json:"topics"`
}

// StarredRepositoriesResponse represents the list of a user's starred repositories
type StarredRepositoriesResponse struct {
	Count        int                   `json:"count" example:"2"`
	Repositories []*RepositoryResponse `json:"repositories"`
}

// NewStarredRepositoriesResponse converts the domain listing to its API shape.
// Count always equals len(Repositories).
func NewStarredRepositoriesResponse(starred *repo.StarredRepositories) *StarredRepositoriesResponse {
	repos := make([]*RepositoryResponse, 0, starred.Count())
	for _, r := range starred.Repositories() {
		repos = append(repos, toRepositoryResponse(r))
	}

	return &StarredRepositoriesResponse{
		Count:        len(repos),
		Repositories: repos,
	}
}

func toRepositoryResponse(r *repo.Repository) *RepositoryResponse {
	topics := r.Topics()
	if topics == nil {
		topics = []string{}
	}
	return &RepositoryResponse{
		Name:        r.Name().String(),
		Description: r.Description(),
		URL:         r.URL().String(),
		License:     r.License(),
		Topics:      topics,
	}
}
