package render

import (
	"fmt"
	"strings"

	"github.com/FyliaCare/Cv-Builder-App/internal/docx"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

// photoWidthInches constrains the embedded photo in the exported document.
const photoWidthInches = 1.2

// BuildDocx renders the record into an editable word-processor document.
// A photo that cannot be decoded is skipped with a warning; nothing in the
// record can abort the overall render short of a serialization failure.
func BuildDocx(rec resume.Record, opts ...docx.Option) ([]byte, []Warning, error) {
	var warnings []Warning
	doc := docx.NewDocument(opts...)

	name := strings.TrimSpace(rec.Profile.Name)
	if name == "" {
		name = "Unnamed"
	}
	doc.AddHeading(name, 0)

	if rec.Profile.Title != "" {
		doc.AddParagraph(docx.Text(rec.Profile.Title))
	}

	if contact := contactParts(rec.Profile); len(contact) > 0 {
		doc.AddParagraph(docx.Text(strings.Join(contact, " | ")))
	}

	if strings.TrimSpace(rec.Profile.Summary) != "" {
		doc.AddParagraph(docx.Text(rec.Profile.Summary))
	}

	if rec.Design.IncludePhoto && rec.Photo != nil {
		if err := addPhoto(doc, rec.Photo); err != nil {
			warnings = append(warnings, photoSkippedWarning(err.Error()))
		}
	}

	if len(rec.Education) > 0 {
		doc.AddHeading("Education", 1)
		for _, ed := range rec.Education {
			doc.AddParagraph(educationRuns(ed)...)
		}
	}

	if len(rec.Experience) > 0 {
		doc.AddHeading("Experience", 1)
		for _, ex := range rec.Experience {
			runs := []docx.Run{docx.Bold(joinNonEmpty(" — ", ex.Role, ex.Company))}
			if ex.Period != "" {
				runs = append(runs, docx.Text(fmt.Sprintf("  (%s)", ex.Period)))
			}
			doc.AddParagraph(runs...)
			for _, b := range ex.Bullets {
				doc.AddBullet(b)
			}
		}
	}

	if len(rec.Skills) > 0 {
		doc.AddHeading("Skills", 1)
		doc.AddParagraph(docx.Text(strings.Join(rec.Skills, ", ")))
	}

	data, err := doc.Bytes()
	if err != nil {
		return nil, warnings, fmt.Errorf("serialize document: %w", err)
	}
	return data, warnings, nil
}

func addPhoto(doc *docx.Document, photo *resume.Photo) error {
	data, err := photoPNG(photo)
	if err != nil {
		return err
	}
	return doc.AddPicture(data, photoWidthInches)
}

// educationRuns bolds the degree only; school and year stay plain.
func educationRuns(ed resume.EducationEntry) []docx.Run {
	var runs []docx.Run
	switch {
	case ed.Degree != "" && ed.School != "":
		runs = append(runs, docx.Bold(ed.Degree+" — "), docx.Text(ed.School))
	case ed.Degree != "":
		runs = append(runs, docx.Bold(ed.Degree))
	case ed.School != "":
		runs = append(runs, docx.Text(ed.School))
	}
	if ed.Year != "" {
		runs = append(runs, docx.Text(fmt.Sprintf(" (%s)", ed.Year)))
	}
	return runs
}
