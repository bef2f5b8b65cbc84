package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"

	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

var errScanRejected = errors.New("scanner flagged the file")

// PhotoHandler manages the single profile photo of the session.
type PhotoHandler struct {
	Session       *resume.Session
	Logger        *slog.Logger
	ClamdAddr     string
	MaxBytes      int64
	MIMEWhitelist []string
}

// NewPhotoHandler returns a PhotoHandler.
func NewPhotoHandler(session *resume.Session, logger *slog.Logger, clamdAddr string, maxBytes int64, mimeWhitelist []string) *PhotoHandler {
	return &PhotoHandler{
		Session:       session,
		Logger:        logger,
		ClamdAddr:     clamdAddr,
		MaxBytes:      maxBytes,
		MIMEWhitelist: mimeWhitelist,
	}
}

// UploadPhoto replaces the profile photo wholesale. The upload is size-capped,
// MIME-checked by content sniffing, and scanned when a clamd address is
// configured. Decodability is not verified here; an image that later fails to
// decode is simply omitted from renders.
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}

	if h.MaxBytes > 0 && file.Size > h.MaxBytes {
		BadRequest(c, "file too large")
		return
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	data, err := io.ReadAll(fileReader)
	fileReader.Close()
	if err != nil {
		Internal(c, "failed to read file")
		return
	}

	contentType := http.DetectContentType(data)
	if !h.mimeAllowed(contentType) {
		BadRequest(c, "unsupported image type")
		return
	}

	if h.ClamdAddr != "" {
		if err := h.scan(data); err != nil {
			h.Logger.Warn("photo upload rejected by scanner", slog.String("error", err.Error()))
			BadRequest(c, "malicious file detected")
			return
		}
	}

	h.Session.SetPhoto(data, contentType)
	c.JSON(http.StatusCreated, gin.H{
		"content_type": contentType,
		"size_bytes":   len(data),
	})
}

// DeletePhoto removes the profile photo.
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	h.Session.ClearPhoto()
	c.Status(http.StatusNoContent)
}

func (h *PhotoHandler) mimeAllowed(contentType string) bool {
	for _, allowed := range h.MIMEWhitelist {
		if contentType == allowed {
			return true
		}
	}
	return false
}

func (h *PhotoHandler) scan(data []byte) error {
	clamdClient := clamd.NewClamd(h.ClamdAddr)

	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := clamdClient.ScanStream(bytes.NewReader(data), abortChan)
	if err != nil {
		return err
	}
	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return errScanRejected
		}
	}
	return nil
}
