package render

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

// defaultAccent is applied when the record carries no usable accent color.
const defaultAccent = "#0b6efd"

var accentPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type experienceView struct {
	RoleLine string
	Period   string
	Bullets  []string
}

type educationView struct {
	DegreeLine string
	Year       string
}

// htmlData is the context shared by the preview and export templates. All user
// text flows through html/template, so escaping can never be skipped on a new
// field; only Accent and PhotoURI are pre-sanitized trusted values.
type htmlData struct {
	Name         string
	Title        string
	SummaryLines []string
	MetaLine     string
	ContactLine  string
	Experience   []experienceView
	Education    []educationView
	Skills       []string
	SkillsJoined string
	Accent       template.CSS
	PhotoURI     template.URL
}

func buildHTMLData(rec resume.Record) (htmlData, []Warning) {
	var warnings []Warning

	data := htmlData{
		Name:         rec.Profile.Name,
		Title:        rec.Profile.Title,
		SummaryLines: summaryLines(rec.Profile.Summary),
		MetaLine:     joinNonEmpty(" · ", rec.Profile.Email, rec.Profile.Phone),
		ContactLine:  strings.Join(contactParts(rec.Profile), " | "),
		Skills:       rec.Skills,
		SkillsJoined: strings.Join(rec.Skills, ", "),
		Accent:       template.CSS(accentColor(rec.Design)),
	}

	for _, e := range rec.Experience {
		data.Experience = append(data.Experience, experienceView{
			RoleLine: joinNonEmpty(" — ", e.Role, e.Company),
			Period:   e.Period,
			Bullets:  e.Bullets,
		})
	}
	for _, e := range rec.Education {
		data.Education = append(data.Education, educationView{
			DegreeLine: joinNonEmpty(" — ", e.Degree, e.School),
			Year:       e.Year,
		})
	}

	if rec.Design.IncludePhoto && rec.Photo != nil {
		uri, err := photoDataURI(rec.Photo)
		if err != nil {
			warnings = append(warnings, photoSkippedWarning(err.Error()))
		} else {
			data.PhotoURI = template.URL(uri)
		}
	}

	return data, warnings
}

func accentColor(d resume.DesignSettings) string {
	if accentPattern.MatchString(d.AccentColor) {
		return d.AccentColor
	}
	return defaultAccent
}

// RenderPreview produces the live preview HTML for the record's selected style.
func RenderPreview(rec resume.Record) (string, []Warning, error) {
	data, warnings := buildHTMLData(rec)

	tmpl := classicTemplate
	switch rec.Design.Style {
	case resume.StyleModernColor:
		tmpl = modernTemplate
	case resume.StyleMinimalOnePage:
		tmpl = minimalTemplate
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", warnings, fmt.Errorf("execute preview template: %w", err)
	}
	return sb.String(), warnings, nil
}

// RenderExportHTML produces the downloadable standalone HTML document. Output
// is byte-identical across calls for a fixed record.
func RenderExportHTML(rec resume.Record) ([]byte, []Warning, error) {
	data, warnings := buildHTMLData(rec)

	var sb strings.Builder
	if err := exportTemplate.Execute(&sb, data); err != nil {
		return nil, warnings, fmt.Errorf("execute export template: %w", err)
	}
	return []byte(sb.String()), warnings, nil
}

// Shared body markup: header/identity, summary, experience, education, skills.
// Sections with no content are omitted entirely, placeholder-free.
const bodyPartial = `{{define "body"}}{{if .SummaryLines}}<div class="summary">{{range $i, $line := .SummaryLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</div>{{end}}
{{if .Experience}}<div class="section-title">Experience</div>
{{range .Experience}}<div class="entry"><strong>{{.RoleLine}}</strong>{{if .Period}} <div class="muted">{{.Period}}</div>{{end}}
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}</div>
{{end}}{{end}}{{if .Education}}<div class="section-title">Education</div>
{{range .Education}}<div class="entry"><strong>{{.DegreeLine}}</strong>{{if .Year}} <div class="muted">{{.Year}}</div>{{end}}</div>
{{end}}{{end}}{{end}}`

var modernTemplate = template.Must(template.New("modern").Parse(bodyPartial + `<!DOCTYPE html>
<html><head><meta charset="utf-8">
<style>
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,'Helvetica Neue',Arial;color:#1b2b3a;background:transparent}
.card{background:white;padding:18px;border-radius:10px;box-shadow:0 8px 24px rgba(12,30,60,0.08);width:380px}
.header{display:flex;gap:12px;align-items:center;border-bottom:3px solid #f3f6fb;padding-bottom:10px;margin-bottom:10px}
.name{font-weight:700;font-size:20px;color:{{.Accent}}}
.title{font-size:13px;color:#334155;margin-top:3px}
.meta{font-size:12px;color:#64748b;margin-top:8px}
.muted{color:#64748b;font-size:12px}
.section-title{font-weight:700;margin-top:12px;color:#0f172a;font-size:12px;border-bottom:1px solid #eef2ff;padding-bottom:4px}
.skill{display:inline-block;padding:6px 8px;border-radius:10px;background:#f0faff;margin:4px 4px 0 0;font-size:12px;color:{{.Accent}}}
.entry{margin-top:8px}
ul{margin:6px 0 0 18px;padding:0}
li{margin-bottom:6px;font-size:13px}
.photo{width:64px;height:64px;border-radius:8px;object-fit:cover}
</style></head><body>
<div class="card">
<div class="header">{{if .PhotoURI}}<img src="{{.PhotoURI}}" class="photo"/>{{end}}<div>
<div class="name">{{.Name}}</div>
{{if .Title}}<div class="title">{{.Title}}</div>{{end}}
{{if .MetaLine}}<div class="meta">{{.MetaLine}}</div>{{end}}
</div></div>
{{template "body" .}}{{if .Skills}}<div class="section-title">Skills</div><div>{{range .Skills}}<span class="skill">{{.}}</span>{{end}}</div>{{end}}
</div></body></html>`))

var classicTemplate = template.Must(template.New("classic").Parse(bodyPartial + `<!DOCTYPE html>
<html><head><meta charset="utf-8">
<style>
body{font-family:'Times New Roman',Times,serif;color:#000}
.paper{width:380px;padding:16px;background:white;border:1px solid #eee}
h1{margin:0;font-size:20px}
.muted{color:#555;font-size:12px}
.section-title{margin:10px 0 6px 0;font-size:13px;font-weight:700;color:#333}
.entry{margin-top:6px}
ul{margin:6px 0 0 18px;padding:0}
li{margin-bottom:6px;font-size:13px}
.photo{width:64px;height:64px;object-fit:cover;float:right}
</style></head><body>
<div class="paper">
{{if .PhotoURI}}<img src="{{.PhotoURI}}" class="photo"/>{{end}}<h1>{{.Name}}</h1>
{{if .Title}}<div class="muted">{{.Title}}</div>{{end}}
{{if .MetaLine}}<div class="muted">{{.MetaLine}}</div>{{end}}
{{template "body" .}}{{if .SkillsJoined}}<div class="section-title">Skills</div><div>{{.SkillsJoined}}</div>{{end}}
</div></body></html>`))

var minimalTemplate = template.Must(template.New("minimal").Parse(bodyPartial + `<!DOCTYPE html>
<html><head><meta charset="utf-8">
<style>
body{font-family:'Times New Roman',Times,serif;color:#111;font-size:12px}
.paper{width:380px;padding:12px;background:white}
h1{margin:0;font-size:17px}
.muted{color:#555;font-size:11px}
.section-title{margin:8px 0 4px 0;font-size:12px;font-weight:700;text-transform:uppercase;letter-spacing:1px}
.entry{margin-top:4px}
ul{margin:4px 0 0 16px;padding:0}
li{margin-bottom:3px;font-size:12px}
</style></head><body>
<div class="paper">
<h1>{{.Name}}</h1>
{{if .Title}}<div class="muted">{{.Title}}</div>{{end}}
{{if .ContactLine}}<div class="muted">{{.ContactLine}}</div>{{end}}
{{template "body" .}}{{if .SkillsJoined}}<div class="section-title">Skills</div><div>{{.SkillsJoined}}</div>{{end}}
</div></body></html>`))

var exportTemplate = template.Must(template.New("export").Parse(bodyPartial + `<!doctype html>
<html><head><meta charset="utf-8"><title>{{.Name}} — CV</title>
<style>
body{font-family:Georgia,'Times New Roman',serif;color:#111;max-width:720px;margin:24px auto;padding:0 16px}
h1{margin:0 0 2px 0}
.muted{color:#555;font-size:14px}
.section-title{margin:18px 0 8px 0;font-size:18px;font-weight:700;border-bottom:1px solid #ddd;padding-bottom:4px}
.entry{margin-top:10px}
ul{margin:6px 0 0 22px;padding:0}
li{margin-bottom:4px}
</style></head><body>
<h1>{{.Name}}</h1>
{{if .Title}}<h3>{{.Title}}</h3>{{end}}
{{if .ContactLine}}<div class="muted">{{.ContactLine}}</div>{{end}}
{{if .PhotoURI}}<p><img src="{{.PhotoURI}}" width="110" alt=""/></p>{{end}}
{{template "body" .}}{{if .SkillsJoined}}<div class="section-title">Skills</div><div>{{.SkillsJoined}}</div>{{end}}
</body></html>`))
