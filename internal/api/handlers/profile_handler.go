package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/devprofiles/internal/models"
	"github.com/yoockh/devprofiles/internal/services"
	"github.com/yoockh/devprofiles/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type CreateProfileRequest struct {
	ID         int      `json:"id" binding:"omitempty,gte=1"` // assigned when omitted
	Name       string   `json:"name" binding:"required"`
	Title      string   `json:"title" binding:"required"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience" binding:"gte=0"`
	Location   string   `json:"location"`
	Avatar     string   `json:"avatar" binding:"omitempty,url"`
	GitHub     string   `json:"github" binding:"omitempty,url"`
	Available  bool     `json:"available"`
}

func (r CreateProfileRequest) toModel() *models.Profile {
	return &models.Profile{
		ID:         r.ID,
		Name:       r.Name,
		Title:      r.Title,
		Bio:        r.Bio,
		Skills:     r.Skills,
		Experience: r.Experience,
		Location:   r.Location,
		Avatar:     r.Avatar,
		GitHub:     r.GitHub,
		Available:  r.Available,
	}
}

// UpdateProfileRequest is a partial update; an id in the body is ignored.
// An empty avatar or github clears the field.
type UpdateProfileRequest struct {
	Name       *string   `json:"name,omitempty" binding:"omitempty,min=1"`
	Title      *string   `json:"title,omitempty" binding:"omitempty,min=1"`
	Bio        *string   `json:"bio,omitempty"`
	Skills     *[]string `json:"skills,omitempty"`
	Experience *int      `json:"experience,omitempty" binding:"omitempty,gte=0"`
	Location   *string   `json:"location,omitempty"`
	Avatar     *string   `json:"avatar,omitempty" binding:"omitempty,url|eq="`
	GitHub     *string   `json:"github,omitempty" binding:"omitempty,url|eq="`
	Available  *bool     `json:"available,omitempty"`
}

func (r UpdateProfileRequest) toPatch() models.ProfilePatch {
	return models.ProfilePatch{
		Name:       r.Name,
		Title:      r.Title,
		Bio:        r.Bio,
		Skills:     r.Skills,
		Experience: r.Experience,
		Location:   r.Location,
		Avatar:     r.Avatar,
		GitHub:     r.GitHub,
		Available:  r.Available,
	}
}

func (h *ProfileHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "ProfileHandler.Get")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Create", "invalid request body", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "ProfileHandler.Update")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "ProfileHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
