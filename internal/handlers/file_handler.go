package handlers

import (
	"io"
	"net/http"
	"strings"

	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/storage"
	"jobapply_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored files over HTTP. Mainly useful with local
// storage; S3 and R2 hand out direct URLs instead.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, st storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     st,
	}
}

func (h *FileHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/files/*path", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	ctx := c.Request.Context()

	reader, err := h.storage.Get(ctx, path)
	if err != nil {
		apperrors.HandleError(c, apperrors.NotFoundError(err))
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.CtxWithError(ctx, "failed to stream file", err, "path", path)
	}
}
