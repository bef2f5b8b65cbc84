package resume

import "github.com/google/uuid"

// DefaultDesign is the design applied to a fresh session.
func DefaultDesign() DesignSettings {
	return DesignSettings{
		Style:        StyleModernColor,
		AccentColor:  "#0b6efd",
		IncludePhoto: true,
	}
}

// NewRecord seeds a fresh editing session. expBullets is the generated bullet
// list for the seeded experience entry (the caller owns bullet generation).
func NewRecord(expBullets []string) Record {
	return Record{
		Profile: Profile{
			Name:    "Jane Doe",
			Title:   "Senior Technical Specialist",
			Summary: "Results-driven professional with strong experience in operations and client-facing technical services.",
		},
		Experience: []ExperienceEntry{
			{
				ID:          uuid.NewString(),
				Role:        "Sales Representative",
				Company:     "Intertek Geronimo Oil and Gas",
				Period:      "2022 — Present",
				Description: "Managed key accounts and supported inspection services",
				Bullets:     append([]string(nil), expBullets...),
			},
		},
		Education: []EducationEntry{
			{
				ID:     uuid.NewString(),
				Degree: "B.Sc. Mechanical Engineering",
				School: "University of Example",
				Year:   "2018",
			},
		},
		Skills: []string{"Client Relationships", "Inspection", "Asset Integrity"},
		Design: DefaultDesign(),
	}
}

// SeedDescription is the description used to generate bullets for the seeded entry.
const SeedDescription = "Managed key accounts and supported inspection services"

// SampleDescription is the description used to generate bullets for the sample entry.
const SampleDescription = "Managed regional accounts and closed inspection contracts"

// SampleRecord builds the demo record loaded by the fill-sample operation.
// expBullets is the generated bullet list for its experience entry.
func SampleRecord(expBullets []string) Record {
	return Record{
		Profile: Profile{
			Name:     "Jojo Montford",
			Title:    "Senior Sales Representative — Inspection Services",
			Email:    "jojo@example.com",
			Phone:    "+233 123 456 789",
			Location: "Accra, Ghana",
			LinkedIn: "https://linkedin.com/in/jojo",
			Summary:  "Sales-driven professional with experience in selling inspection and asset integrity services. Skilled at building client relationships and improving account revenue.",
		},
		Experience: []ExperienceEntry{
			{
				ID:          uuid.NewString(),
				Role:        "Sales Representative",
				Company:     "Intertek Geronimo Oil and Gas",
				Period:      "2021 — Present",
				Description: SampleDescription,
				Bullets:     append([]string(nil), expBullets...),
			},
		},
		Education: []EducationEntry{
			{
				ID:     uuid.NewString(),
				Degree: "HND Mechanical Engineering",
				School: "Accra Technical University",
				Year:   "2016",
			},
		},
		Skills: []string{"Sales", "Client Management", "NDT", "Asset Integrity"},
		Design: DefaultDesign(),
	}
}
