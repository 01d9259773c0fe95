package vote

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/apperr"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

// RegisterRoutes mounts vote endpoints; all of them require authentication.
func RegisterRoutes(router *gin.RouterGroup, service *Service, guard *auth.Guard) {
	handler := &httpHandler{service: service}
	router.POST("/votes", guard.RequireRoles(auth.RoleAny), handler.cast)
	router.DELETE("/votes/:commentID", guard.RequireRoles(auth.RoleAny), handler.remove)
}

type httpHandler struct {
	service *Service
}

type castRequest struct {
	CommentID uuid.UUID `json:"commentId" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=UP DOWN"`
}

func (h *httpHandler) cast(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		c.Error(auth.ErrInvalidToken)
		return
	}

	var req castRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest(err.Error()))
		return
	}

	if err := h.service.Cast(c.Request.Context(), req.CommentID, Status(req.Status), principal); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *httpHandler) remove(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		c.Error(auth.ErrInvalidToken)
		return
	}

	commentID, err := uuid.Parse(c.Param("commentID"))
	if err != nil {
		c.Error(ErrVoteNotFound)
		return
	}

	if err := h.service.Remove(c.Request.Context(), commentID, principal); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
