package v1

import (
	"net/http"
	"strconv"

	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followUC domain.FollowUsecase
}

func NewFollowHandler(public *gin.RouterGroup, protected *gin.RouterGroup, followUC domain.FollowUsecase) {
	handler := &FollowHandler{followUC: followUC}

	follows := protected.Group("/follows")
	{
		follows.POST("", handler.Follow)
		follows.DELETE("/:targetId", handler.Unfollow)
		follows.GET("/status/:targetId", handler.Status)
	}

	users := protected.Group("/users")
	{
		users.GET("/:id/followers/count", handler.FollowerCount)
	}

	institutions := protected.Group("/institutions")
	{
		institutions.GET("/suggested", handler.SuggestedInstitutions)
	}
}

type FollowRequest struct {
	FollowingID   string `json:"following_id" binding:"required,uuid"`
	FollowerType  string `json:"follower_type" binding:"omitempty,oneof=individual student institution"`
	FollowingType string `json:"following_type" binding:"omitempty,oneof=individual student institution"`
}

// Follow godoc
// @Summary      Follow a profile
// @Tags         follows
// @Accept       json
// @Produce      json
// @Param        follow  body      FollowRequest  true  "Follow JSON"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /follows [post]
// @Security     BearerAuth
func (h *FollowHandler) Follow(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	err := h.followUC.FollowUser(c.Request.Context(), userID, req.FollowingID, req.FollowerType, req.FollowingType)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Now following", nil)
}

// Unfollow godoc
// @Summary      Unfollow a profile
// @Tags         follows
// @Produce      json
// @Param        targetId  path      string  true  "Profile ID"
// @Success      200       {object}  response.Response
// @Router       /follows/{targetId} [delete]
// @Security     BearerAuth
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	targetID := c.Param("targetId")

	if err := h.followUC.UnfollowUser(c.Request.Context(), userID, targetID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Unfollowed", nil)
}

// Status godoc
// @Summary      Follow status
// @Description  Whether the authenticated user follows the target profile
// @Tags         follows
// @Produce      json
// @Param        targetId  path      string  true  "Profile ID"
// @Success      200       {object}  response.Response
// @Router       /follows/status/{targetId} [get]
// @Security     BearerAuth
func (h *FollowHandler) Status(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	targetID := c.Param("targetId")

	following, err := h.followUC.IsFollowing(c.Request.Context(), userID, targetID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Follow status", gin.H{"following": following})
}

// FollowerCount godoc
// @Summary      Follower count
// @Tags         follows
// @Produce      json
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/followers/count [get]
// @Security     BearerAuth
func (h *FollowHandler) FollowerCount(c *gin.Context) {
	profileID := c.Param("id")

	count, err := h.followUC.GetFollowerCount(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Follower count", gin.H{"count": count})
}

// SuggestedInstitutions godoc
// @Summary      Suggested institutions
// @Description  Get institution profiles the user does not follow yet
// @Tags         follows
// @Produce      json
// @Param        limit  query     int  false  "Max results"
// @Success      200    {object}  response.Response
// @Router       /institutions/suggested [get]
// @Security     BearerAuth
func (h *FollowHandler) SuggestedInstitutions(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	profiles, err := h.followUC.GetSuggestedInstitutions(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Suggested institutions", profiles)
}
