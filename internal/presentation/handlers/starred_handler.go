package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Tupsu-jy/star-retriever/internal/application/dto"
	"github.com/Tupsu-jy/star-retriever/internal/application/service"
	"github.com/Tupsu-jy/star-retriever/internal/domain/repo"
	"github.com/Tupsu-jy/star-retriever/internal/middleware"
)

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StarredHandler handles the GitHub OAuth flow endpoints
type StarredHandler struct {
	starredService *service.StarredService
}

// NewStarredHandler creates a new starred repositories handler
func NewStarredHandler(starredService *service.StarredService) *StarredHandler {
	return &StarredHandler{starredService: starredService}
}

// GetStarredRepos handles GET /api/getStarredRepos
// @Summary Start OAuth Flow
// @Description Redirects the user to GitHub for OAuth authorization. After authorization GitHub redirects back to /callback with an authorization code.
// @Tags Starred Repos
// @Success 307 "Redirect to GitHub"
// @Failure 429 {object} ErrorResponse
// @Router /api/getStarredRepos [get]
func (h *StarredHandler) GetStarredRepos(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, h.starredService.AuthorizationURL())
}

// Callback handles GET /api/callback
// @Summary GitHub OAuth callback
// @Description Exchanges the authorization code for a token and returns the user's starred repositories.
// @Tags Starred Repos
// @Produce json
// @Param code query string true "Authorization code for GitHub api"
// @Success 200 {object} dto.StarredRepositoriesResponse
// @Failure 400 {object} ErrorResponse "Bad Request - issues with the request parameters."
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to connect to GitHub for access token or to fetch starred repositories."
// @Failure 502 {object} ErrorResponse "Error parsing GitHub response."
// @Router /api/callback [get]
func (h *StarredHandler) Callback(c *gin.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.respondError(c, repo.ErrValidation("code", err))
		return
	}

	response, err := h.starredService.HandleCallback(c.Request.Context(), middleware.GetRequestID(c), req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// respondError maps domain errors to HTTP responses. Upstream causes are
// logged but only schema and validation problems are described to the client.
func (h *StarredHandler) respondError(c *gin.Context, err error) {
	log := zerolog.Ctx(c.Request.Context())

	var domainErr *repo.DomainError
	if !errors.As(err, &domainErr) {
		log.Error().Err(err).Msg("callback failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An unexpected error occurred.",
		})
		return
	}

	switch domainErr.Code {
	case repo.CodeValidation:
		log.Warn().Err(err).Msg("invalid callback request")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request parameters.",
			Details: domainErr.Message,
		})
	case repo.CodeUpstreamToken:
		log.Error().Err(err).Msg("Failed to get access token from GitHub")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "upstream_token_error",
			Message: "Failed to connect to GitHub for access token.",
		})
	case repo.CodeUpstreamListing:
		log.Error().Err(err).Msg("Failed to fetch starred repositories from GitHub")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "upstream_listing_error",
			Message: "Failed to fetch starred repositories from GitHub.",
		})
	case repo.CodeResponseSchema:
		log.Error().Err(err).Msg("Error parsing GitHub response")
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "response_schema_error",
			Message: "Error parsing GitHub response.",
			Details: domainErr.Message,
		})
	default:
		log.Error().Err(err).Msg("callback failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An unexpected error occurred.",
		})
	}
}
