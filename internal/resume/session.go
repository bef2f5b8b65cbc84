package resume

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrEntryNotFound is returned when an experience or education ID does not exist.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrIndexOutOfRange is returned for positional removals beyond the list bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidStyle is returned when a design update names an unknown style.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrInvalidAccentColor is returned when the accent color is not a hex color.
	ErrInvalidAccentColor = errors.New("invalid accent color")
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Session owns one résumé record exclusively and serializes all mutations.
// Handlers may overlap, so a mutex guards the record; there is still only one
// logical editing session per process.
type Session struct {
	mu     sync.RWMutex
	record Record

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

// NewSession creates a session owning the given initial record.
func NewSession(initial Record) *Session {
	return &Session{
		record: initial,
		subs:   make(map[int]chan struct{}),
	}
}

// Snapshot returns a deep copy of the current record.
func (s *Session) Snapshot() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone()
}

// Subscribe registers a change listener. The returned channel receives a signal
// after every mutation; the cancel func must be called when done.
func (s *Session) Subscribe() (<-chan struct{}, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
	return ch, cancel
}

func (s *Session) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
			// listener is already pending a refresh
		}
	}
}

// Replace swaps the whole record, e.g. when loading sample data.
func (s *Session) Replace(record Record) {
	s.mu.Lock()
	s.record = record.Clone()
	s.mu.Unlock()
	s.notify()
}

// UpdateProfile overwrites the profile block.
func (s *Session) UpdateProfile(p Profile) {
	s.mu.Lock()
	s.record.Profile = p
	s.mu.Unlock()
	s.notify()
}

// SetDesign validates and applies new design settings.
func (s *Session) SetDesign(d DesignSettings) error {
	if !ValidStyle(d.Style) {
		return ErrInvalidStyle
	}
	if d.AccentColor != "" && !hexColorPattern.MatchString(d.AccentColor) {
		return ErrInvalidAccentColor
	}

	s.mu.Lock()
	s.record.Design = d
	s.mu.Unlock()
	s.notify()
	return nil
}

// AddExperience inserts a new entry at the front (newest first) and returns it
// with its assigned ID.
func (s *Session) AddExperience(role, company, period, description string, bullets []string) ExperienceEntry {
	entry := ExperienceEntry{
		ID:          uuid.NewString(),
		Role:        role,
		Company:     company,
		Period:      period,
		Description: description,
		Bullets:     append([]string(nil), bullets...),
	}

	s.mu.Lock()
	s.record.Experience = append([]ExperienceEntry{entry}, s.record.Experience...)
	s.mu.Unlock()
	s.notify()
	return entry
}

// UpdateExperience overwrites the fields of the entry with the given ID.
func (s *Session) UpdateExperience(id string, role, company, period, description string, bullets []string) (ExperienceEntry, error) {
	s.mu.Lock()
	var updated *ExperienceEntry
	for i := range s.record.Experience {
		if s.record.Experience[i].ID != id {
			continue
		}
		s.record.Experience[i].Role = role
		s.record.Experience[i].Company = company
		s.record.Experience[i].Period = period
		s.record.Experience[i].Description = description
		s.record.Experience[i].Bullets = append([]string(nil), bullets...)
		entry := s.record.Experience[i]
		entry.Bullets = append([]string(nil), entry.Bullets...)
		updated = &entry
		break
	}
	s.mu.Unlock()

	if updated == nil {
		return ExperienceEntry{}, ErrEntryNotFound
	}
	s.notify()
	return *updated, nil
}

// SetExperienceBullets replaces the bullet list of one entry, e.g. after regeneration.
func (s *Session) SetExperienceBullets(id string, bullets []string) (ExperienceEntry, error) {
	s.mu.Lock()
	var updated *ExperienceEntry
	for i := range s.record.Experience {
		if s.record.Experience[i].ID != id {
			continue
		}
		s.record.Experience[i].Bullets = append([]string(nil), bullets...)
		entry := s.record.Experience[i]
		entry.Bullets = append([]string(nil), entry.Bullets...)
		updated = &entry
		break
	}
	s.mu.Unlock()

	if updated == nil {
		return ExperienceEntry{}, ErrEntryNotFound
	}
	s.notify()
	return *updated, nil
}

// ExperienceEntry returns one entry by ID.
func (s *Session) ExperienceEntry(id string) (ExperienceEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.record.Experience {
		if e.ID == id {
			e.Bullets = append([]string(nil), e.Bullets...)
			return e, nil
		}
	}
	return ExperienceEntry{}, ErrEntryNotFound
}

// RemoveExperience deletes the entry with the given ID.
func (s *Session) RemoveExperience(id string) error {
	s.mu.Lock()
	found := false
	for i := range s.record.Experience {
		if s.record.Experience[i].ID == id {
			s.record.Experience = append(s.record.Experience[:i], s.record.Experience[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrEntryNotFound
	}
	s.notify()
	return nil
}

// ClearExperience removes every experience entry.
func (s *Session) ClearExperience() {
	s.mu.Lock()
	s.record.Experience = nil
	s.mu.Unlock()
	s.notify()
}

// AddEducation inserts a new entry at the front (newest first).
func (s *Session) AddEducation(degree, school, year string) EducationEntry {
	entry := EducationEntry{
		ID:     uuid.NewString(),
		Degree: degree,
		School: school,
		Year:   year,
	}

	s.mu.Lock()
	s.record.Education = append([]EducationEntry{entry}, s.record.Education...)
	s.mu.Unlock()
	s.notify()
	return entry
}

// RemoveEducation deletes the entry with the given ID.
func (s *Session) RemoveEducation(id string) error {
	s.mu.Lock()
	found := false
	for i := range s.record.Education {
		if s.record.Education[i].ID == id {
			s.record.Education = append(s.record.Education[:i], s.record.Education[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrEntryNotFound
	}
	s.notify()
	return nil
}

// AddSkill inserts a skill at the front of the list. Blank values are ignored;
// duplicates are allowed, insertion order is meaningful for display.
func (s *Session) AddSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}

	s.mu.Lock()
	s.record.Skills = append([]string{skill}, s.record.Skills...)
	s.mu.Unlock()
	s.notify()
	return true
}

// RemoveSkill deletes the skill at the given position. Later skills shift down
// by one, so clients must re-read the list after a removal.
func (s *Session) RemoveSkill(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.record.Skills) {
		s.mu.Unlock()
		return ErrIndexOutOfRange
	}
	s.record.Skills = append(s.record.Skills[:index], s.record.Skills[index+1:]...)
	s.mu.Unlock()
	s.notify()
	return nil
}

// SetPhoto replaces the profile photo wholesale.
func (s *Session) SetPhoto(data []byte, contentType string) {
	s.mu.Lock()
	s.record.Photo = &Photo{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
	}
	s.mu.Unlock()
	s.notify()
}

// ClearPhoto removes the profile photo.
func (s *Session) ClearPhoto() {
	s.mu.Lock()
	s.record.Photo = nil
	s.mu.Unlock()
	s.notify()
}
