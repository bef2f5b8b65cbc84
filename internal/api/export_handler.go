package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FyliaCare/Cv-Builder-App/internal/api/middleware"
	"github.com/FyliaCare/Cv-Builder-App/internal/render"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

// ExportHandler serves the preview and the downloadable export artifacts.
// Every response is a fresh, complete render of the current record snapshot.
type ExportHandler struct {
	session *resume.Session
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(session *resume.Session) *ExportHandler {
	return &ExportHandler{session: session}
}

// GetPreview returns the live preview HTML for the record's selected style.
func (h *ExportHandler) GetPreview(c *gin.Context) {
	html, warnings, err := render.RenderPreview(h.session.Snapshot())
	if err != nil {
		middleware.LoggerFromContext(c).Error("render preview", slog.Any("error", err))
		Internal(c, "failed to render preview")
		return
	}
	logRenderWarnings(c, warnings)

	c.Data(http.StatusOK, render.HTMLContentType, []byte(html))
}

// DownloadHTML serves the standalone HTML export as a file download.
func (h *ExportHandler) DownloadHTML(c *gin.Context) {
	rec := h.session.Snapshot()

	data, warnings, err := render.RenderExportHTML(rec)
	if err != nil {
		middleware.LoggerFromContext(c).Error("render export html", slog.Any("error", err))
		Internal(c, "failed to render html export")
		return
	}
	logRenderWarnings(c, warnings)

	serveDownload(c, render.ExportFileName(rec.Profile.Name, "html"), render.HTMLContentType, data)
}

// DownloadDocx serves the editable word-processor export as a file download.
func (h *ExportHandler) DownloadDocx(c *gin.Context) {
	rec := h.session.Snapshot()

	data, warnings, err := render.BuildDocx(rec)
	if err != nil {
		middleware.LoggerFromContext(c).Error("render docx export", slog.Any("error", err))
		Internal(c, "failed to render document export")
		return
	}
	logRenderWarnings(c, warnings)

	serveDownload(c, render.ExportFileName(rec.Profile.Name, "docx"), render.DocxContentType, data)
}

func serveDownload(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func logRenderWarnings(c *gin.Context, warnings []render.Warning) {
	log := middleware.LoggerFromContext(c)
	for _, w := range warnings {
		log.Warn("render degraded",
			slog.Int("code", w.Code),
			slog.String("message", w.Message),
		)
	}
}
