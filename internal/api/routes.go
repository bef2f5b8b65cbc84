package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/FyliaCare/Cv-Builder-App/internal/config"
	"github.com/FyliaCare/Cv-Builder-App/internal/generate"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

// RegisterRoutes wires every handler under /v1.
func RegisterRoutes(
	router *gin.Engine,
	session *resume.Session,
	generator *generate.Generator,
	cfg *config.Config,
	logger *slog.Logger,
) {
	resumeHandler := NewResumeHandler(session, generator, cfg.Editor.DefaultBulletCount, cfg.Editor.MaxBulletCount)
	photoHandler := NewPhotoHandler(session, logger, cfg.Photo.ClamdAddr, cfg.Photo.MaxBytes, cfg.Photo.MIMEWhitelistList())
	exportHandler := NewExportHandler(session)
	wsHandler := NewWsHandler(session, logger, cfg.API.AllowedOriginList())

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		resumeGroup := v1.Group("/resume")
		{
			resumeGroup.GET("", resumeHandler.GetRecord)
			resumeGroup.POST("/sample", resumeHandler.LoadSample)
			resumeGroup.PUT("/profile", resumeHandler.UpdateProfile)
			resumeGroup.PUT("/design", resumeHandler.UpdateDesign)

			resumeGroup.POST("/experience", resumeHandler.AddExperience)
			resumeGroup.DELETE("/experience", resumeHandler.ClearExperience)
			resumeGroup.PUT("/experience/:id", resumeHandler.UpdateExperience)
			resumeGroup.DELETE("/experience/:id", resumeHandler.RemoveExperience)
			resumeGroup.POST("/experience/:id/bullets/regenerate", resumeHandler.RegenerateBullets)

			resumeGroup.POST("/education", resumeHandler.AddEducation)
			resumeGroup.DELETE("/education/:id", resumeHandler.RemoveEducation)

			resumeGroup.POST("/skills", resumeHandler.AddSkill)
			resumeGroup.DELETE("/skills/:index", resumeHandler.RemoveSkill)

			resumeGroup.POST("/photo", photoHandler.UploadPhoto)
			resumeGroup.DELETE("/photo", photoHandler.DeletePhoto)

			resumeGroup.GET("/preview", exportHandler.GetPreview)
			resumeGroup.GET("/export/html", exportHandler.DownloadHTML)
			resumeGroup.GET("/export/docx", exportHandler.DownloadDocx)
		}
	}
}
