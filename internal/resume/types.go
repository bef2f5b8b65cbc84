package resume

// Style names selectable through DesignSettings.
const (
	StyleModernColor    = "Modern Color"
	StyleClassicBW      = "Classic B/W"
	StyleMinimalOnePage = "Minimal One-Page"
)

// Styles lists every selectable style in display order.
var Styles = []string{StyleModernColor, StyleClassicBW, StyleMinimalOnePage}

// Profile holds the identity block of the résumé. All fields are optional free text.
type Profile struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`
}

// ExperienceEntry is one role in the experience list, newest first.
// ID is an opaque identifier assigned at creation time; removal and updates
// address entries by ID so concurrent edits never suffer index shifting.
type ExperienceEntry struct {
	ID          string   `json:"id"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// EducationEntry is one qualification in the education list, newest first.
type EducationEntry struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// DesignSettings selects the visual template used by the preview and exports.
type DesignSettings struct {
	Style        string `json:"style"`
	AccentColor  string `json:"accent_color"`
	IncludePhoto bool   `json:"include_photo"`
}

// Photo is the optional profile photo, replaced wholesale on re-upload.
type Photo struct {
	Data        []byte `json:"-"`
	ContentType string `json:"content_type"`
}

// Record is the complete in-memory résumé for one editing session. It is the
// single source of truth consumed by both the preview and the export renderers.
type Record struct {
	Profile    Profile           `json:"profile"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
	Design     DesignSettings    `json:"design"`
	Photo      *Photo            `json:"photo,omitempty"`
}

// Clone returns a deep copy so renderers never observe in-flight mutations.
func (r Record) Clone() Record {
	out := r

	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, e := range r.Experience {
		e.Bullets = append([]string(nil), e.Bullets...)
		out.Experience[i] = e
	}
	out.Education = append([]EducationEntry(nil), r.Education...)
	out.Skills = append([]string(nil), r.Skills...)

	if r.Photo != nil {
		out.Photo = &Photo{
			Data:        append([]byte(nil), r.Photo.Data...),
			ContentType: r.Photo.ContentType,
		}
	}

	return out
}

// ValidStyle reports whether name is one of the selectable styles.
func ValidStyle(name string) bool {
	for _, s := range Styles {
		if s == name {
			return true
		}
	}
	return false
}
