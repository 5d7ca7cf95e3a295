package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"surveywallet/internal/auth"
	"surveywallet/internal/errors"
	"surveywallet/internal/model"
	"surveywallet/internal/repository"
	"surveywallet/internal/service"
)

// SurveyHandler handles survey endpoints.
type SurveyHandler struct {
	surveyService service.SurveyService
	userService   service.UserService
}

// NewSurveyHandler creates a new survey handler.
func NewSurveyHandler(surveyService service.SurveyService, userService service.UserService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService, userService: userService}
}

// CreateSurveyRequest represents a survey creation request.
type CreateSurveyRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Question    string   `json:"question" validate:"required"`
	Options     []string `json:"options" validate:"required,min=2,dive,required"`
}

// UpdateSurveyRequest represents an owner's content patch.
type UpdateSurveyRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Question    *string  `json:"question"`
	Options     []string `json:"options"`
}

// ParticipateRequest represents one participation entry.
type ParticipateRequest struct {
	Choice string `json:"choice" validate:"required"`
}

// ReactRequest carries exactly one of the two reaction indicators. A payload
// with the liked indicator appends to the liked set; one without it appends
// to the disliked set.
type ReactRequest struct {
	Like    bool `json:"like"`
	Dislike bool `json:"dislike"`
}

// CommentRequest represents a comment creation request.
type CommentRequest struct {
	Body string `json:"body" validate:"required"`
}

// FeaturedRequest patches the featured flag.
type FeaturedRequest struct {
	Featured bool `json:"featured"`
}

// StatusRequest patches the lifecycle status.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func surveyIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid survey id",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// callerIsAdmin resolves the caller's role from the user directory. Unknown
// callers are plain members.
func (h *SurveyHandler) callerIsAdmin(c echo.Context, email string) bool {
	user, err := h.userService.Get(c.Request().Context(), email)
	if err != nil {
		return false
	}
	return user.IsAdmin()
}

// ListSurveys godoc
// @Summary List surveys
// @Tags surveys
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by lifecycle status"
// @Param featured query bool false "Only featured surveys"
// @Param sort query string false "Set to 'votes' to order by vote count"
// @Param limit query int false "Maximum results"
// @Success 200 {array} model.Survey
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys [get]
func (h *SurveyHandler) ListSurveys(c echo.Context) error {
	filter := repository.SurveyFilter{
		Category:    c.QueryParam("category"),
		Status:      model.SurveyStatus(c.QueryParam("status")),
		SortByVotes: c.QueryParam("sort") == "votes",
	}
	if featured, err := strconv.ParseBool(c.QueryParam("featured")); err == nil {
		filter.FeaturedOnly = featured
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	surveys, err := h.surveyService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, surveys)
}

// ListFeatured godoc
// @Summary List featured active surveys
// @Tags surveys
// @Produce json
// @Param limit query int false "Maximum results"
// @Success 200 {array} model.Survey
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys/featured [get]
func (h *SurveyHandler) ListFeatured(c echo.Context) error {
	filter := repository.SurveyFilter{
		Status:       model.SurveyStatusActive,
		FeaturedOnly: true,
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	surveys, err := h.surveyService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, surveys)
}

// ListLatest godoc
// @Summary List the most recent active surveys
// @Tags surveys
// @Produce json
// @Param limit query int false "Maximum results (default 6)"
// @Success 200 {array} model.Survey
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys/latest [get]
func (h *SurveyHandler) ListLatest(c echo.Context) error {
	filter := repository.SurveyFilter{
		Status: model.SurveyStatusActive,
		Limit:  6,
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	surveys, err := h.surveyService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, surveys)
}

// GetSurvey godoc
// @Summary Get a survey with its votes and comments
// @Tags surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} model.Survey
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetSurvey(c echo.Context) error {
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	survey, err := h.surveyService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, survey)
}

// CreateSurvey godoc
// @Summary Create a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CreateSurveyRequest true "Survey payload"
// @Success 201 {object} model.Survey
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /surveys [post]
func (h *SurveyHandler) CreateSurvey(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}

	var req CreateSurveyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	survey, err := h.surveyService.Create(c.Request().Context(), claims.Email, service.CreateSurveyInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Question:    req.Question,
		Options:     req.Options,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, survey)
}

// UpdateSurvey godoc
// @Summary Update a survey's content (owner or admin)
// @Tags surveys
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Param request body UpdateSurveyRequest true "Fields to patch"
// @Success 200 {object} model.Survey
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /surveys/{id} [put]
func (h *SurveyHandler) UpdateSurvey(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateSurveyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	survey, err := h.surveyService.Update(c.Request().Context(), id, claims.Email,
		h.callerIsAdmin(c, claims.Email), service.UpdateSurveyInput{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Question:    req.Question,
			Options:     req.Options,
		})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, survey)
}

// DeleteSurvey godoc
// @Summary Delete a survey and its votes, reactions, and comments
// @Tags surveys
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /surveys/{id} [delete]
func (h *SurveyHandler) DeleteSurvey(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	err = h.surveyService.Delete(c.Request().Context(), id, claims.Email, h.callerIsAdmin(c, claims.Email))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// Participate godoc
// @Summary Record the caller's vote in a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Param request body ParticipateRequest true "Chosen option"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /surveys/{id}/participate [patch]
func (h *SurveyHandler) Participate(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	var req ParticipateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.surveyService.Participate(c.Request().Context(), id, claims.Email, req.Choice); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"participate": true})
}

// GetParticipation godoc
// @Summary Check whether a subject has voted in a survey
// @Tags surveys
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Param email query string false "Subject email (defaults to caller)"
// @Success 200 {object} service.ParticipationResult
// @Failure 404 {object} errors.ErrorResponse
// @Router /surveys/{id}/participation [get]
func (h *SurveyHandler) GetParticipation(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	email := c.QueryParam("email")
	if email == "" {
		email = claims.Email
	}

	result, err := h.surveyService.Participation(c.Request().Context(), id, email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// React godoc
// @Summary Like or dislike a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Param request body ReactRequest true "Reaction indicator"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /surveys/{id}/react [patch]
func (h *SurveyHandler) React(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	var req ReactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	// The liked indicator wins; anything else is a dislike.
	kind := model.ReactionDislike
	if req.Like {
		kind = model.ReactionLike
	}

	if err := h.surveyService.React(c.Request().Context(), id, claims.Email, kind); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"reaction": string(kind)})
}

// GetReaction godoc
// @Summary Check whether a subject has liked or disliked a survey
// @Tags surveys
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Param email query string false "Subject email (defaults to caller)"
// @Success 200 {object} service.ReactionResult
// @Failure 404 {object} errors.ErrorResponse
// @Router /surveys/{id}/reaction [get]
func (h *SurveyHandler) GetReaction(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	email := c.QueryParam("email")
	if email == "" {
		email = claims.Email
	}

	result, err := h.surveyService.Reaction(c.Request().Context(), id, email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// AddComment godoc
// @Summary Comment on a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Param request body CommentRequest true "Comment body"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /surveys/{id}/comments [post]
func (h *SurveyHandler) AddComment(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	comment, err := h.surveyService.AddComment(c.Request().Context(), id, claims.Email, req.Body)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, comment)
}

// SetFeatured godoc
// @Summary Set a survey's featured flag (admin)
// @Tags surveys
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Param request body FeaturedRequest true "Featured flag"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /surveys/{id}/featured [patch]
func (h *SurveyHandler) SetFeatured(c echo.Context) error {
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	var req FeaturedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.surveyService.SetFeatured(c.Request().Context(), id, req.Featured); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"featured": req.Featured})
}

// SetStatus godoc
// @Summary Set a survey's lifecycle status (admin)
// @Tags surveys
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Survey ID"
// @Param request body StatusRequest true "Lifecycle status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /surveys/{id}/status [patch]
func (h *SurveyHandler) SetStatus(c echo.Context) error {
	id, err := surveyIDParam(c)
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.surveyService.SetStatus(c.Request().Context(), id, model.SurveyStatus(req.Status)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
}
