package v1

import (
	"net/http"
	"strconv"

	"go-medlink-backend/internal/delivery/http/middleware"
	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC domain.PostUsecase
}

func NewPostHandler(public *gin.RouterGroup, protected *gin.RouterGroup, postUC domain.PostUsecase) {
	handler := &PostHandler{postUC: postUC}

	posts := protected.Group("/posts")
	{
		posts.GET("", handler.Feed)
		posts.POST("", middleware.WriteRateLimitMiddleware(), handler.Create)
		posts.DELETE("/:id", handler.Delete)
		posts.POST("/:id/like", handler.Like)
		posts.DELETE("/:id/like", handler.Unlike)
		posts.GET("/:id/like", handler.LikeStatus)
		posts.GET("/:id/comments", handler.ListComments)
		posts.POST("/:id/comments", middleware.WriteRateLimitMiddleware(), handler.AddComment)
	}

	users := protected.Group("/users")
	{
		users.GET("/:id/posts", handler.ListByAuthor)
	}
}

type CreatePostRequest struct {
	Content    string   `json:"content"`
	Visibility string   `json:"visibility" binding:"omitempty,oneof=public connections private"`
	ImageURL   string   `json:"image_url"`
	Images     []string `json:"images"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// Create godoc
// @Summary      Create a post
// @Description  Publish a new feed post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post  body      CreatePostRequest  true  "Post JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /posts [post]
// @Security     BearerAuth
func (h *PostHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post := &domain.Post{
		AuthorID:   userID,
		Content:    req.Content,
		Visibility: req.Visibility,
		Images:     req.Images,
	}
	if req.ImageURL != "" {
		post.ImageURL = &req.ImageURL
	}

	created, err := h.postUC.CreatePost(c.Request.Context(), post)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created", created)
}

// Feed godoc
// @Summary      Get feed posts
// @Description  Get paginated feed posts with author summaries
// @Tags         posts
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response
// @Router       /posts [get]
// @Security     BearerAuth
func (h *PostHandler) Feed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	posts, total, err := h.postUC.GetPosts(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Paginated(c, http.StatusOK, "Feed", posts, response.Meta{
		Page:     page,
		PageSize: limit,
		Total:    total,
	})
}

// ListByAuthor godoc
// @Summary      Get a user's posts
// @Description  Get all posts authored by a user, newest first
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/posts [get]
// @Security     BearerAuth
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	authorID := c.Param("id")

	posts, err := h.postUC.GetPostsByAuthor(c.Request.Context(), authorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User posts", posts)
}

// Delete godoc
// @Summary      Delete a post
// @Description  Delete one of the user's own posts
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [delete]
// @Security     BearerAuth
func (h *PostHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	postID := c.Param("id")

	if err := h.postUC.DeletePost(c.Request.Context(), postID, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post deleted", nil)
}

// Like godoc
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Router       /posts/{id}/like [post]
// @Security     BearerAuth
func (h *PostHandler) Like(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	postID := c.Param("id")

	if err := h.postUC.LikePost(c.Request.Context(), postID, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post liked", nil)
}

// Unlike godoc
// @Summary      Unlike a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Router       /posts/{id}/like [delete]
// @Security     BearerAuth
func (h *PostHandler) Unlike(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	postID := c.Param("id")

	if err := h.postUC.UnlikePost(c.Request.Context(), postID, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post unliked", nil)
}

// LikeStatus godoc
// @Summary      Check like status
// @Description  Whether the authenticated user has liked the post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Router       /posts/{id}/like [get]
// @Security     BearerAuth
func (h *PostHandler) LikeStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	postID := c.Param("id")

	liked, err := h.postUC.HasLikedPost(c.Request.Context(), postID, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Like status", gin.H{"liked": liked})
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Post ID"
// @Param        comment  body      AddCommentRequest  true  "Comment JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /posts/{id}/comments [post]
// @Security     BearerAuth
func (h *PostHandler) AddComment(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	postID := c.Param("id")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	comment, err := h.postUC.AddComment(c.Request.Context(), postID, userID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment added", comment)
}

// ListComments godoc
// @Summary      Get post comments
// @Description  Get comments for a post, oldest first, with author summaries
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Router       /posts/{id}/comments [get]
// @Security     BearerAuth
func (h *PostHandler) ListComments(c *gin.Context) {
	postID := c.Param("id")

	comments, err := h.postUC.GetComments(c.Request.Context(), postID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comments", comments)
}
