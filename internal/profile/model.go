package profile

// PlaceholderName is used when neither the document nor the filename yields a name.
const PlaceholderName = "Your Name"

// NameSource records where PersonalInfo.FullName came from.
type NameSource string

const (
	NameFromDocument    NameSource = "document"
	NameFromFilename    NameSource = "filename"
	NameFromPlaceholder NameSource = "placeholder"
)

// PersonalInfo always carries every key; absent values are empty strings, except
// FullName which falls back to PlaceholderName.
type PersonalInfo struct {
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Location   string     `json:"location"`
	LinkedIn   string     `json:"linkedin"`
	Website    string     `json:"website"`
	NameSource NameSource `json:"nameSource"`
}

// HasName reports whether the name is anything other than the placeholder.
func (p PersonalInfo) HasName() bool {
	return p.NameSource != NameFromPlaceholder && p.FullName != "" && p.FullName != PlaceholderName
}

// HasContactChannel reports whether any way of reaching the candidate was found.
func (p PersonalInfo) HasContactChannel() bool {
	return p.Email != "" || p.Phone != "" || p.LinkedIn != ""
}

// Experience is one position. DescriptionSynthesized marks filler text generated
// from the job title when the source carried no description of its own.
type Experience struct {
	Position               string `json:"position"`
	Company                string `json:"company"`
	Location               string `json:"location"`
	StartDate              string `json:"startDate"`
	EndDate                string `json:"endDate"`
	Current                bool   `json:"current"`
	Description            string `json:"description"`
	DescriptionSynthesized bool   `json:"descriptionSynthesized"`
}

type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
	Placeholder    bool   `json:"placeholder"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	Placeholder  bool     `json:"placeholder"`
}

type Certification struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	ExpiryDate  string `json:"expiryDate"`
	Placeholder bool   `json:"placeholder"`
}

type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
	Placeholder bool   `json:"placeholder"`
}

type Hobby struct {
	Name        string `json:"name"`
	Placeholder bool   `json:"placeholder"`
}

// Profile is the structured candidate data. Collections are never nil.
type Profile struct {
	PersonalInfo     PersonalInfo    `json:"personalInfo"`
	Summary          string          `json:"summary"`
	Experience       []Experience    `json:"experience"`
	Education        []Education     `json:"education"`
	Skills           []string        `json:"skills"`
	Projects         []Project       `json:"projects"`
	Certifications   []Certification `json:"certifications"`
	Languages        []Language      `json:"languages"`
	Hobbies          []Hobby         `json:"hobbies"`
	RawText          string          `json:"rawText"`
	DetectedSections []Section       `json:"detectedSections"`
	Templated        bool            `json:"templated"`
	TemplateFamily   string          `json:"templateFamily"`
}

func newProfile(rawText string) Profile {
	return Profile{
		PersonalInfo:     PersonalInfo{FullName: PlaceholderName, NameSource: NameFromPlaceholder},
		Experience:       []Experience{},
		Education:        []Education{},
		Skills:           []string{},
		Projects:         []Project{},
		Certifications:   []Certification{},
		Languages:        []Language{},
		Hobbies:          []Hobby{},
		RawText:          rawText,
		DetectedSections: []Section{},
	}
}

// HasSection reports whether the section header appeared in the source.
func (p Profile) HasSection(s Section) bool {
	for _, found := range p.DetectedSections {
		if found == s {
			return true
		}
	}
	return false
}

// RealEducation returns the entries that were actually parsed from the source.
func (p Profile) RealEducation() []Education {
	out := make([]Education, 0, len(p.Education))
	for _, e := range p.Education {
		if !e.Placeholder {
			out = append(out, e)
		}
	}
	return out
}

func (p Profile) RealProjects() []Project {
	out := make([]Project, 0, len(p.Projects))
	for _, e := range p.Projects {
		if !e.Placeholder {
			out = append(out, e)
		}
	}
	return out
}

func (p Profile) RealCertifications() []Certification {
	out := make([]Certification, 0, len(p.Certifications))
	for _, e := range p.Certifications {
		if !e.Placeholder {
			out = append(out, e)
		}
	}
	return out
}

func (p Profile) RealLanguages() []Language {
	out := make([]Language, 0, len(p.Languages))
	for _, e := range p.Languages {
		if !e.Placeholder {
			out = append(out, e)
		}
	}
	return out
}

func (p Profile) RealHobbies() []Hobby {
	out := make([]Hobby, 0, len(p.Hobbies))
	for _, e := range p.Hobbies {
		if !e.Placeholder {
			out = append(out, e)
		}
	}
	return out
}
