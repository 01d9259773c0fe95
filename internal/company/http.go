package company

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/apperr"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

// RegisterRoutes mounts company endpoints. Reads are public; submissions
// require any authenticated user, moderation requires ADMIN.
func RegisterRoutes(router *gin.RouterGroup, service *Service, guard *auth.Guard) {
	handler := &httpHandler{service: service}
	router.POST("/companies", guard.RequireRoles(auth.RoleAny), handler.create)
	router.GET("/companies", handler.list)
	router.GET("/companies/:companyID", handler.get)
	router.PATCH("/companies/:companyID", guard.RequireRoles(auth.RoleAdmin), handler.update)
	router.DELETE("/companies/:companyID", guard.RequireRoles(auth.RoleAdmin), handler.delete)
}

type httpHandler struct {
	service *Service
}

type createRequest struct {
	Name                string  `json:"name" binding:"required,max=100"`
	Description         string  `json:"description" binding:"required,min=10,max=1000"`
	Country             string  `json:"country" binding:"required,len=2,alpha"`
	Website             string  `json:"website" binding:"required,url"`
	Linkedin            *string `json:"linkedin" binding:"omitempty,url"`
	SupportsSponsorship string  `json:"supportsSponsorshipProgram" binding:"required,oneof=YES NO UNKNOWN"`
}

type updateRequest struct {
	Name                *string `json:"name" binding:"omitempty,max=100"`
	Description         *string `json:"description" binding:"omitempty,min=10,max=1000"`
	Country             *string `json:"country" binding:"omitempty,len=2,alpha"`
	Website             *string `json:"website" binding:"omitempty,url"`
	Linkedin            *string `json:"linkedin" binding:"omitempty,url"`
	SupportsSponsorship *string `json:"supportsSponsorshipProgram" binding:"omitempty,oneof=YES NO UNKNOWN"`
}

func (h *httpHandler) create(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		c.Error(auth.ErrInvalidToken)
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest(err.Error()))
		return
	}

	_, err := h.service.Create(c.Request.Context(), CreateInput{
		Name:                req.Name,
		Description:         req.Description,
		Country:             req.Country,
		Website:             req.Website,
		Linkedin:            req.Linkedin,
		SupportsSponsorship: SponsorshipSupport(req.SupportsSponsorship),
	}, principal)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *httpHandler) list(c *gin.Context) {
	companies, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "companies": companies})
}

func (h *httpHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("companyID"))
	if err != nil {
		c.Error(ErrCompanyNotFound)
		return
	}

	company, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

func (h *httpHandler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("companyID"))
	if err != nil {
		c.Error(ErrCompanyNotFound)
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest(err.Error()))
		return
	}

	err = h.service.Update(c.Request.Context(), id, UpdateInput{
		Name:                req.Name,
		Description:         req.Description,
		Country:             req.Country,
		Website:             req.Website,
		Linkedin:            req.Linkedin,
		SupportsSponsorship: (*SponsorshipSupport)(req.SupportsSponsorship),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("companyID"))
	if err != nil {
		c.Error(ErrCompanyNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
