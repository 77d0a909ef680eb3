package v1

import (
	"net/http"

	"go-medlink-backend/internal/delivery/http/middleware"
	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	connectionUC domain.ConnectionUsecase
}

func NewConnectionHandler(public *gin.RouterGroup, protected *gin.RouterGroup, connectionUC domain.ConnectionUsecase) {
	handler := &ConnectionHandler{connectionUC: connectionUC}

	connections := protected.Group("/connections")
	{
		connections.POST("", middleware.WriteRateLimitMiddleware(), handler.SendRequest)
		connections.GET("", handler.List)
		connections.GET("/pending", handler.ListPending)
		connections.PUT("/:id/accept", handler.Accept)
		connections.PUT("/:id/reject", handler.Reject)
		connections.DELETE("/:id", handler.Remove)
		connections.GET("/status/:targetId", handler.Status)
	}
}

type SendConnectionRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
}

// SendRequest godoc
// @Summary      Send connection request
// @Description  Request a connection with another user
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        request  body      SendConnectionRequest  true  "Request JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /connections [post]
// @Security     BearerAuth
func (h *ConnectionHandler) SendRequest(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req SendConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	conn, err := h.connectionUC.SendConnectionRequest(c.Request.Context(), userID, req.RecipientID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Connection request sent", conn)
}

// List godoc
// @Summary      List connections
// @Description  Get the user's accepted connections with peer profiles
// @Tags         connections
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /connections [get]
// @Security     BearerAuth
func (h *ConnectionHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	conns, err := h.connectionUC.GetConnections(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Connections", conns)
}

// ListPending godoc
// @Summary      List pending requests
// @Description  Get incoming connection requests awaiting a decision
// @Tags         connections
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /connections/pending [get]
// @Security     BearerAuth
func (h *ConnectionHandler) ListPending(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	conns, err := h.connectionUC.GetPendingRequests(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Pending requests", conns)
}

// Accept godoc
// @Summary      Accept a request
// @Tags         connections
// @Produce      json
// @Param        id   path      string  true  "Connection ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /connections/{id}/accept [put]
// @Security     BearerAuth
func (h *ConnectionHandler) Accept(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	connectionID := c.Param("id")

	if err := h.connectionUC.AcceptConnectionRequest(c.Request.Context(), userID, connectionID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Connection accepted", nil)
}

// Reject godoc
// @Summary      Reject a request
// @Tags         connections
// @Produce      json
// @Param        id   path      string  true  "Connection ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /connections/{id}/reject [put]
// @Security     BearerAuth
func (h *ConnectionHandler) Reject(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	connectionID := c.Param("id")

	if err := h.connectionUC.RejectConnectionRequest(c.Request.Context(), userID, connectionID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Connection rejected", nil)
}

// Remove godoc
// @Summary      Remove a connection
// @Description  Remove the connection with another user in either direction
// @Tags         connections
// @Produce      json
// @Param        id   path      string  true  "Other user ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /connections/{id} [delete]
// @Security     BearerAuth
func (h *ConnectionHandler) Remove(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	targetID := c.Param("id")

	if err := h.connectionUC.RemoveConnection(c.Request.Context(), userID, targetID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Connection removed", nil)
}

// Status godoc
// @Summary      Connection status
// @Description  Get the simplified status between the user and a target (none, pending, connected)
// @Tags         connections
// @Produce      json
// @Param        targetId  path      string  true  "Other user ID"
// @Success      200       {object}  response.Response
// @Router       /connections/status/{targetId} [get]
// @Security     BearerAuth
func (h *ConnectionHandler) Status(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	targetID := c.Param("targetId")

	status, err := h.connectionUC.GetConnectionStatus(c.Request.Context(), userID, targetID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Connection status", gin.H{"status": status})
}
