package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FyliaCare/Cv-Builder-App/internal/generate"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

// ResumeHandler serves every mutation of the in-memory résumé record.
type ResumeHandler struct {
	session      *resume.Session
	generator    *generate.Generator
	defaultCount int
	maxCount     int
}

// NewResumeHandler constructs a ResumeHandler.
func NewResumeHandler(session *resume.Session, generator *generate.Generator, defaultCount, maxCount int) *ResumeHandler {
	return &ResumeHandler{
		session:      session,
		generator:    generator,
		defaultCount: defaultCount,
		maxCount:     maxCount,
	}
}

type photoMeta struct {
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
}

type recordResponse struct {
	Profile    resume.Profile           `json:"profile"`
	Experience []resume.ExperienceEntry `json:"experience"`
	Education  []resume.EducationEntry  `json:"education"`
	Skills     []string                 `json:"skills"`
	Design     resume.DesignSettings    `json:"design"`
	Photo      *photoMeta               `json:"photo,omitempty"`
}

func newRecordResponse(rec resume.Record) recordResponse {
	resp := recordResponse{
		Profile:    rec.Profile,
		Experience: rec.Experience,
		Education:  rec.Education,
		Skills:     rec.Skills,
		Design:     rec.Design,
	}
	if resp.Experience == nil {
		resp.Experience = []resume.ExperienceEntry{}
	}
	if resp.Education == nil {
		resp.Education = []resume.EducationEntry{}
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if rec.Photo != nil {
		resp.Photo = &photoMeta{
			ContentType: rec.Photo.ContentType,
			SizeBytes:   len(rec.Photo.Data),
		}
	}
	return resp
}

// GetRecord returns the full record snapshot (photo as metadata, not bytes).
func (h *ResumeHandler) GetRecord(c *gin.Context) {
	c.JSON(http.StatusOK, newRecordResponse(h.session.Snapshot()))
}

// UpdateProfile overwrites the profile block.
func (h *ResumeHandler) UpdateProfile(c *gin.Context) {
	var req resume.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	h.session.UpdateProfile(req)
	c.JSON(http.StatusOK, gin.H{"profile": req})
}

type designRequest struct {
	Style        string `json:"style" binding:"required"`
	AccentColor  string `json:"accent_color"`
	IncludePhoto bool   `json:"include_photo"`
}

// UpdateDesign applies new design settings.
func (h *ResumeHandler) UpdateDesign(c *gin.Context) {
	var req designRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	design := resume.DesignSettings{
		Style:        req.Style,
		AccentColor:  req.AccentColor,
		IncludePhoto: req.IncludePhoto,
	}
	if err := h.session.SetDesign(design); err != nil {
		switch {
		case errors.Is(err, resume.ErrInvalidStyle):
			BadRequest(c, "unknown style")
		case errors.Is(err, resume.ErrInvalidAccentColor):
			BadRequest(c, "accent color must be a hex color")
		default:
			Internal(c, "failed to update design")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"design": design})
}

// LoadSample replaces the record with the demo data set.
func (h *ResumeHandler) LoadSample(c *gin.Context) {
	bullets := h.generator.Generate(
		resume.SampleDescription,
		"Sales Representative",
		"Intertek",
		h.defaultCount,
	)
	h.session.Replace(resume.SampleRecord(bullets))
	c.JSON(http.StatusOK, newRecordResponse(h.session.Snapshot()))
}

const (
	bulletModeGenerate = "generate"
	bulletModeRaw      = "raw"
)

type experienceRequest struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Mode        string `json:"mode"`
	Count       int    `json:"count"`
}

// AddExperience creates a new entry at the front of the list. Mode "generate"
// (default) expands the description into bullets; mode "raw" turns each
// non-blank description line into one bullet verbatim.
func (h *ResumeHandler) AddExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	var bullets []string
	switch req.Mode {
	case "", bulletModeGenerate:
		bullets = h.generator.Generate(
			fallback(req.Description, req.Role),
			req.Role,
			req.Company,
			h.clampCount(req.Count),
		)
	case bulletModeRaw:
		bullets = generate.PunctuateLines(req.Description)
	default:
		BadRequest(c, "mode must be 'generate' or 'raw'")
		return
	}

	entry := h.session.AddExperience(
		fallback(req.Role, "Role"),
		req.Company,
		req.Period,
		req.Description,
		bullets,
	)
	c.JSON(http.StatusCreated, entry)
}

type experienceUpdateRequest struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// UpdateExperience overwrites one entry, including its bullet list.
func (h *ResumeHandler) UpdateExperience(c *gin.Context) {
	var req experienceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	entry, err := h.session.UpdateExperience(
		c.Param("id"),
		req.Role, req.Company, req.Period, req.Description, req.Bullets,
	)
	if err != nil {
		NotFound(c, "experience entry not found")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RemoveExperience deletes one entry by ID.
func (h *ResumeHandler) RemoveExperience(c *gin.Context) {
	if err := h.session.RemoveExperience(c.Param("id")); err != nil {
		NotFound(c, "experience entry not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearExperience removes every experience entry.
func (h *ResumeHandler) ClearExperience(c *gin.Context) {
	h.session.ClearExperience()
	c.Status(http.StatusNoContent)
}

type regenerateRequest struct {
	Count int `json:"count"`
}

// RegenerateBullets replaces the stored bullets of one entry with freshly
// generated ones, derived from the entry's saved description and role.
func (h *ResumeHandler) RegenerateBullets(c *gin.Context) {
	var req regenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			BadRequest(c, err.Error())
			return
		}
	}

	entry, err := h.session.ExperienceEntry(c.Param("id"))
	if err != nil {
		NotFound(c, "experience entry not found")
		return
	}

	bullets := h.generator.Generate(
		fallback(entry.Description, entry.Role),
		entry.Role,
		entry.Company,
		h.clampCount(req.Count),
	)

	entry, err = h.session.SetExperienceBullets(entry.ID, bullets)
	if err != nil {
		NotFound(c, "experience entry not found")
		return
	}
	c.JSON(http.StatusOK, entry)
}

type educationRequest struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// AddEducation creates a new entry at the front of the list.
func (h *ResumeHandler) AddEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	entry := h.session.AddEducation(fallback(req.Degree, "Degree"), req.School, req.Year)
	c.JSON(http.StatusCreated, entry)
}

// RemoveEducation deletes one entry by ID.
func (h *ResumeHandler) RemoveEducation(c *gin.Context) {
	if err := h.session.RemoveEducation(c.Param("id")); err != nil {
		NotFound(c, "education entry not found")
		return
	}
	c.Status(http.StatusNoContent)
}

type skillRequest struct {
	Skill string `json:"skill" binding:"required"`
}

// AddSkill inserts one skill at the front of the list.
func (h *ResumeHandler) AddSkill(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if !h.session.AddSkill(req.Skill) {
		BadRequest(c, "skill must not be blank")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"skills": h.session.Snapshot().Skills})
}

// RemoveSkill deletes the skill at the given position. Positions shift after a
// removal, so clients must refresh the list before issuing another one.
func (h *ResumeHandler) RemoveSkill(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		BadRequest(c, "invalid skill index")
		return
	}

	if err := h.session.RemoveSkill(index); err != nil {
		NotFound(c, "skill index out of range")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) clampCount(count int) int {
	if count <= 0 {
		return h.defaultCount
	}
	if count > h.maxCount {
		return h.maxCount
	}
	return count
}

func fallback(value, alt string) string {
	if value == "" {
		return alt
	}
	return value
}
