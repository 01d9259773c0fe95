package comment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/apperr"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

// RegisterRoutes mounts comment endpoints. Listing is public; posting and
// editing require an authenticated user, deleting requires ADMIN.
func RegisterRoutes(router *gin.RouterGroup, service *Service, guard *auth.Guard) {
	handler := &httpHandler{service: service}
	router.POST("/comments", guard.RequireRoles(auth.RoleAny), handler.create)
	router.GET("/companies/:companyID/comments", handler.listByCompany)
	router.PATCH("/comments/:commentID", guard.RequireRoles(auth.RoleAny), handler.update)
	router.DELETE("/comments/:commentID", guard.RequireRoles(auth.RoleAdmin), handler.delete)
}

type httpHandler struct {
	service *Service
}

type createRequest struct {
	CompanyID uuid.UUID  `json:"companyId" binding:"required"`
	Message   string     `json:"message" binding:"required,max=1000"`
	ParentID  *uuid.UUID `json:"parentId"`
}

type updateRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
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
		CompanyID: req.CompanyID,
		Message:   req.Message,
		ParentID:  req.ParentID,
	}, principal)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *httpHandler) listByCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("companyID"))
	if err != nil {
		c.Error(ErrCompanyNotFound)
		return
	}

	comments, err := h.service.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comments": comments})
}

func (h *httpHandler) update(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		c.Error(auth.ErrInvalidToken)
		return
	}

	id, err := uuid.Parse(c.Param("commentID"))
	if err != nil {
		c.Error(ErrCommentNotFound)
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest(err.Error()))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.Message, principal); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("commentID"))
	if err != nil {
		c.Error(ErrCommentNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
