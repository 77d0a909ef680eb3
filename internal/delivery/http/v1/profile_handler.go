package v1

import (
	"net/http"
	"strconv"

	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/me", handler.GetMe)
		profiles.PUT("/me", handler.UpdateMe)
		profiles.GET("/suggested", handler.Suggested)
		profiles.GET("/:id", handler.GetByID)
	}
}

type UpdateProfileRequest struct {
	FullName       string   `json:"full_name" binding:"required"`
	Headline       string   `json:"headline"`
	Bio            string   `json:"bio"`
	Location       string   `json:"location"`
	AvatarURL      string   `json:"avatar_url"`
	BannerURL      string   `json:"banner_url"`
	Website        string   `json:"website"`
	Phone          string   `json:"phone"`
	Specialization []string `json:"specialization"`
	ProfileType    string   `json:"profile_type" binding:"omitempty,oneof=individual student institution"`
}

// GetMe godoc
// @Summary      Get own profile
// @Description  Get the authenticated user's profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// GetByID godoc
// @Summary      Get a profile
// @Description  Get a profile by ID and record the view
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Router       /profiles/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetByID(c *gin.Context) {
	profileID := c.Param("id")
	viewerID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}

	// View logging is best effort and never blocks the read
	_ = h.profileUC.RecordProfileView(c.Request.Context(), viewerID, profileID)

	response.Success(c, http.StatusOK, "Profile", profile)
}

// UpdateMe godoc
// @Summary      Update own profile
// @Description  Update the authenticated user's profile fields
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profiles/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	profile := &domain.Profile{
		ID:             userID,
		FullName:       req.FullName,
		Headline:       toPtr(req.Headline),
		Bio:            toPtr(req.Bio),
		Location:       toPtr(req.Location),
		AvatarURL:      toPtr(req.AvatarURL),
		BannerURL:      toPtr(req.BannerURL),
		Website:        toPtr(req.Website),
		Phone:          toPtr(req.Phone),
		Specialization: req.Specialization,
		ProfileType:    req.ProfileType,
	}

	if err := h.profileUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// Suggested godoc
// @Summary      Suggested connections
// @Description  Get profiles the user may want to connect with
// @Tags         profiles
// @Produce      json
// @Param        limit  query     int  false  "Max results"
// @Success      200    {object}  response.Response
// @Router       /profiles/suggested [get]
// @Security     BearerAuth
func (h *ProfileHandler) Suggested(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	profiles, err := h.profileUC.GetSuggestedConnections(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Suggested connections", profiles)
}
