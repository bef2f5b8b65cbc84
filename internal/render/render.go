// Package render turns a résumé record into presentation artifacts: the live
// preview HTML, the standalone export HTML and the editable word-processor
// document. All outputs consume the same record snapshot; a record rendered
// twice with the same style yields identical markup output.
package render

import (
	"strings"

	"github.com/FyliaCare/Cv-Builder-App/internal/errcode"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

// Media types and file suffixes of the export artifacts.
const (
	DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	HTMLContentType = "text/html; charset=utf-8"
)

// Warning describes a recoverable degradation during a render, e.g. a photo
// that could not be decoded and was skipped. Warnings never fail the render.
type Warning struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func photoSkippedWarning(reason string) Warning {
	return Warning{
		Code:    errcode.ResourceMissing,
		Message: "profile photo skipped: " + reason,
	}
}

// ExportFileName derives the download name from the profile name: spaces
// become underscores and a fixed _CV suffix is appended.
func ExportFileName(profileName, ext string) string {
	base := strings.TrimSpace(profileName)
	if base == "" {
		base = "candidate"
	}
	return strings.ReplaceAll(base, " ", "_") + "_CV." + ext
}

// contactParts collects the present contact fields in display order.
func contactParts(p resume.Profile) []string {
	parts := make([]string, 0, 5)
	for _, v := range []string{p.Email, p.Phone, p.Location, p.LinkedIn, p.Portfolio} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

// joinNonEmpty joins the non-blank values with sep, leaving no dangling separator.
func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func summaryLines(summary string) []string {
	if strings.TrimSpace(summary) == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(summary, "\r\n", "\n"), "\n")
}
