package v1

import (
	"net/http"
	"time"

	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CareerHandler struct {
	careerUC domain.CareerUsecase
}

func NewCareerHandler(public *gin.RouterGroup, protected *gin.RouterGroup, careerUC domain.CareerUsecase) {
	handler := &CareerHandler{careerUC: careerUC}

	experiences := protected.Group("/experiences")
	{
		experiences.POST("", handler.AddExperience)
		experiences.PUT("/:id", handler.UpdateExperience)
		experiences.DELETE("/:id", handler.DeleteExperience)
	}

	education := protected.Group("/education")
	{
		education.POST("", handler.AddEducation)
		education.PUT("/:id", handler.UpdateEducation)
		education.DELETE("/:id", handler.DeleteEducation)
	}

	users := protected.Group("/users")
	{
		users.GET("/:id/experiences", handler.ListExperiences)
		users.GET("/:id/education", handler.ListEducation)
	}
}

type ExperienceRequest struct {
	Title          string `json:"title" binding:"required,max=150"`
	Company        string `json:"company" binding:"required,max=150"`
	Location       string `json:"location"`
	StartDate      string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Current        bool   `json:"current"`
	Description    string `json:"description"`
	Specialization string `json:"specialization"`
}

type EducationRequest struct {
	Degree    string `json:"degree" binding:"required,max=150"`
	School    string `json:"school" binding:"required,max=150"`
	Field     string `json:"field"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Current   bool   `json:"current"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ExperienceRequest) toDomain(userID string) (*domain.Experience, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, apperror.BadRequest("Invalid start_date format, expected YYYY-MM-DD")
	}
	end, err := parseDatePtr(r.EndDate)
	if err != nil {
		return nil, apperror.BadRequest("Invalid end_date format, expected YYYY-MM-DD")
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	return &domain.Experience{
		ProfileID:      userID,
		Title:          r.Title,
		Company:        r.Company,
		Location:       toPtr(r.Location),
		StartDate:      start,
		EndDate:        end,
		Current:        r.Current,
		Description:    toPtr(r.Description),
		Specialization: toPtr(r.Specialization),
	}, nil
}

func (r *EducationRequest) toDomain(userID string) (*domain.Education, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, apperror.BadRequest("Invalid start_date format, expected YYYY-MM-DD")
	}
	end, err := parseDatePtr(r.EndDate)
	if err != nil {
		return nil, apperror.BadRequest("Invalid end_date format, expected YYYY-MM-DD")
	}

	edu := &domain.Education{
		ProfileID: userID,
		Degree:    r.Degree,
		School:    r.School,
		StartDate: start,
		EndDate:   end,
		Current:   r.Current,
	}
	if r.Field != "" {
		edu.Field = &r.Field
	}
	return edu, nil
}

// AddExperience godoc
// @Summary      Add work experience
// @Tags         career
// @Accept       json
// @Produce      json
// @Param        experience  body      ExperienceRequest  true  "Experience JSON"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /experiences [post]
// @Security     BearerAuth
func (h *CareerHandler) AddExperience(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	exp, err := req.toDomain(userID)
	if err != nil {
		c.Error(err)
		return
	}

	created, err := h.careerUC.AddExperience(c.Request.Context(), exp)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience added", created)
}

// ListExperiences godoc
// @Summary      List work experience
// @Tags         career
// @Produce      json
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/experiences [get]
// @Security     BearerAuth
func (h *CareerHandler) ListExperiences(c *gin.Context) {
	profileID := c.Param("id")

	experiences, err := h.careerUC.GetExperiences(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experiences", experiences)
}

// UpdateExperience godoc
// @Summary      Update work experience
// @Tags         career
// @Accept       json
// @Produce      json
// @Param        id          path      string             true  "Experience ID"
// @Param        experience  body      ExperienceRequest  true  "Experience JSON"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /experiences/{id} [put]
// @Security     BearerAuth
func (h *CareerHandler) UpdateExperience(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	exp, err := req.toDomain(userID)
	if err != nil {
		c.Error(err)
		return
	}
	exp.ID = c.Param("id")

	if err := h.careerUC.UpdateExperience(c.Request.Context(), exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", exp)
}

// DeleteExperience godoc
// @Summary      Delete work experience
// @Tags         career
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [delete]
// @Security     BearerAuth
func (h *CareerHandler) DeleteExperience(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("id")

	if err := h.careerUC.DeleteExperience(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", nil)
}

// AddEducation godoc
// @Summary      Add education
// @Tags         career
// @Accept       json
// @Produce      json
// @Param        education  body      EducationRequest  true  "Education JSON"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /education [post]
// @Security     BearerAuth
func (h *CareerHandler) AddEducation(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	edu, err := req.toDomain(userID)
	if err != nil {
		c.Error(err)
		return
	}

	created, err := h.careerUC.AddEducation(c.Request.Context(), edu)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education added", created)
}

// ListEducation godoc
// @Summary      List education
// @Tags         career
// @Produce      json
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/education [get]
// @Security     BearerAuth
func (h *CareerHandler) ListEducation(c *gin.Context) {
	profileID := c.Param("id")

	education, err := h.careerUC.GetEducation(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education", education)
}

// UpdateEducation godoc
// @Summary      Update education
// @Tags         career
// @Accept       json
// @Produce      json
// @Param        id         path      string            true  "Education ID"
// @Param        education  body      EducationRequest  true  "Education JSON"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /education/{id} [put]
// @Security     BearerAuth
func (h *CareerHandler) UpdateEducation(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	edu, err := req.toDomain(userID)
	if err != nil {
		c.Error(err)
		return
	}
	edu.ID = c.Param("id")

	if err := h.careerUC.UpdateEducation(c.Request.Context(), edu); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", edu)
}

// DeleteEducation godoc
// @Summary      Delete education
// @Tags         career
// @Produce      json
// @Param        id   path      string  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [delete]
// @Security     BearerAuth
func (h *CareerHandler) DeleteEducation(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("id")

	if err := h.careerUC.DeleteEducation(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education deleted", nil)
}
