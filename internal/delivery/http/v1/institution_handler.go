package v1

import (
	"net/http"
	"strconv"

	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InstitutionHandler struct {
	institutionUC domain.InstitutionUsecase
}

func NewInstitutionHandler(public *gin.RouterGroup, protected *gin.RouterGroup, institutionUC domain.InstitutionUsecase) {
	handler := &InstitutionHandler{institutionUC: institutionUC}

	publicInstitutions := public.Group("/institutions")
	{
		publicInstitutions.GET("", handler.List)
		publicInstitutions.GET("/:id", handler.GetByID)
	}

	institutions := protected.Group("/institutions")
	{
		institutions.GET("/me", handler.GetMine)
		institutions.PUT("/me", handler.UpsertMine)
	}
}

type UpsertInstitutionRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	Type          string `json:"type" binding:"omitempty,oneof=hospital clinic university research_center other"`
	Location      string `json:"location"`
	Website       string `json:"website" binding:"omitempty,url"`
	Description   string `json:"description"`
	LogoURL       string `json:"logo_url"`
	EmployeeCount string `json:"employee_count"`
}

// List godoc
// @Summary      List institutions
// @Tags         institutions
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /institutions [get]
func (h *InstitutionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	institutions, err := h.institutionUC.ListInstitutions(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Institutions", institutions)
}

// GetByID godoc
// @Summary      Get an institution
// @Tags         institutions
// @Produce      json
// @Param        id   path      string  true  "Institution ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /institutions/{id} [get]
func (h *InstitutionHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	inst, err := h.institutionUC.GetInstitution(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if inst == nil {
		c.Error(apperror.NotFound("Institution not found"))
		return
	}

	response.Success(c, http.StatusOK, "Institution", inst)
}

// GetMine godoc
// @Summary      Get own institution record
// @Tags         institutions
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /institutions/me [get]
// @Security     BearerAuth
func (h *InstitutionHandler) GetMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	inst, err := h.institutionUC.GetInstitutionByProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if inst == nil {
		c.Error(apperror.NotFound("Institution record not found"))
		return
	}

	response.Success(c, http.StatusOK, "Institution", inst)
}

// UpsertMine godoc
// @Summary      Create or update own institution record
// @Tags         institutions
// @Accept       json
// @Produce      json
// @Param        institution  body      UpsertInstitutionRequest  true  "Institution JSON"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Router       /institutions/me [put]
// @Security     BearerAuth
func (h *InstitutionHandler) UpsertMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req UpsertInstitutionRequest
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

	inst := &domain.Institution{
		ProfileID:     userID,
		Name:          req.Name,
		Type:          toPtr(req.Type),
		Location:      toPtr(req.Location),
		Website:       toPtr(req.Website),
		Description:   toPtr(req.Description),
		LogoURL:       toPtr(req.LogoURL),
		EmployeeCount: toPtr(req.EmployeeCount),
	}

	if err := h.institutionUC.UpsertInstitution(c.Request.Context(), inst); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Institution saved", inst)
}
