package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventUC domain.EventUsecase
}

func NewEventHandler(public *gin.RouterGroup, protected *gin.RouterGroup, eventUC domain.EventUsecase) {
	handler := &EventHandler{eventUC: eventUC}

	publicEvents := public.Group("/events")
	{
		publicEvents.GET("", handler.ListUpcoming)
		publicEvents.GET("/:id", handler.GetDetails)
	}

	events := protected.Group("/events")
	{
		events.POST("", handler.Create)
		events.POST("/:id/register", handler.Register)
		events.GET("/:id/registration", handler.RegistrationStatus)
	}
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	EventType   string `json:"event_type" binding:"omitempty,oneof=conference webinar workshop seminar"`
	Location    string `json:"location"`
	EventDate   string `json:"event_date" binding:"required"`
}

// Create godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body      CreateEventRequest  true  "Event JSON"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid event_date format, expected RFC3339"))
		return
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	event := &domain.Event{
		Title:       req.Title,
		Description: toPtr(req.Description),
		EventType:   toPtr(req.EventType),
		Location:    toPtr(req.Location),
		EventDate:   eventDate,
	}

	if err := h.eventUC.CreateEvent(c.Request.Context(), userID, event); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Event created", event)
}

// ListUpcoming godoc
// @Summary      List upcoming events
// @Description  Get future events ordered by date, soonest first
// @Tags         events
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /events [get]
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	events, total, err := h.eventUC.ListUpcomingEvents(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Paginated(c, http.StatusOK, "Upcoming events", events, response.Meta{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// GetDetails godoc
// @Summary      Get event details
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /events/{id} [get]
func (h *EventHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	event, err := h.eventUC.GetEventDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if event == nil {
		c.Error(apperror.NotFound("Event not found"))
		return
	}

	response.Success(c, http.StatusOK, "Event details", event)
}

// Register godoc
// @Summary      Register for an event
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /events/{id}/register [post]
// @Security     BearerAuth
func (h *EventHandler) Register(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.eventUC.RegisterForEvent(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Registered for event", nil)
}

// RegistrationStatus godoc
// @Summary      Check event registration
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.Response
// @Router       /events/{id}/registration [get]
// @Security     BearerAuth
func (h *EventHandler) RegistrationStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	registered, err := h.eventUC.IsRegistered(c.Request.Context(), id, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Registration status", gin.H{"registered": registered})
}
