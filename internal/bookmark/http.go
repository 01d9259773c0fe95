package bookmark

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/apperr"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

// RegisterRoutes mounts bookmark endpoints; all of them require authentication.
func RegisterRoutes(router *gin.RouterGroup, service *Service, guard *auth.Guard) {
	handler := &httpHandler{service: service}
	router.POST("/bookmarks", guard.RequireRoles(auth.RoleAny), handler.create)
	router.GET("/bookmarks", guard.RequireRoles(auth.RoleAny), handler.list)
	router.DELETE("/bookmarks/:bookmarkID", guard.RequireRoles(auth.RoleAny), handler.delete)
}

type httpHandler struct {
	service *Service
}

type createRequest struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
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

	if err := h.service.Create(c.Request.Context(), req.CompanyID, principal); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *httpHandler) list(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		c.Error(auth.ErrInvalidToken)
		return
	}

	bookmarks, err := h.service.List(c.Request.Context(), principal)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookmarks": bookmarks})
}

func (h *httpHandler) delete(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		c.Error(auth.ErrInvalidToken)
		return
	}

	id, err := uuid.Parse(c.Param("bookmarkID"))
	if err != nil {
		c.Error(ErrBookmarkNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, principal); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
