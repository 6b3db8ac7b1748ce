package models

// DefaultExperienceImage is served when an experience entry has no image.
const DefaultExperienceImage = "default-image.jpg"

// Experience is a job entry on the career page. Points and Skills hold
// delimited text; Serialize splits them back into lists.
type Experience struct {
	ID       uint    `gorm:"primaryKey"`
	Image    *string `gorm:"size:255"`
	Title    string  `gorm:"size:200;not null"`
	Company  string  `gorm:"size:100;not null"`
	Duration string  `gorm:"size:50;not null"`
	Points   string  `gorm:"type:text;not null"`
	Skills   string  `gorm:"type:text;not null"`
}

func (Experience) TableName() string { return "experience" }

type ExperienceView struct {
	ID       uint     `json:"id"`
	Image    string   `json:"image"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Duration string   `json:"duration"`
	Points   []string `json:"points"`
	Skills   []string `json:"skills"`
}

func (e Experience) Serialize() ExperienceView {
	image := DefaultExperienceImage
	if e.Image != nil && *e.Image != "" {
		image = *e.Image
	}
	return ExperienceView{
		ID:       e.ID,
		Image:    image,
		Title:    e.Title,
		Company:  e.Company,
		Duration: e.Duration,
		Points:   SplitList(e.Points, LineSeparator),
		Skills:   SplitList(e.Skills, SkillSeparator),
	}
}

type ExperiencePatch struct {
	Image    *string     `json:"image"`
	Title    *string     `json:"title"`
	Company  *string     `json:"company"`
	Duration *string     `json:"duration"`
	Points   *StringList `json:"points"`
	Skills   *StringList `json:"skills"`
}

// Missing reports the NOT NULL columns a create request left out.
func (p ExperiencePatch) Missing() error {
	return checkRequired(Experience{}.TableName(),
		required("title", p.Title),
		required("company", p.Company),
		required("duration", p.Duration),
		required("points", p.Points),
		required("skills", p.Skills),
	)
}

func (p ExperiencePatch) Apply(e *Experience) {
	if p.Image != nil {
		e.Image = p.Image
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	if p.Points != nil {
		e.Points = p.Points.Join(LineSeparator)
	}
	if p.Skills != nil {
		e.Skills = p.Skills.Join(SkillSeparator)
	}
}

// Education is a degree entry on the career page.
type Education struct {
	ID                    uint    `gorm:"primaryKey"`
	Image                 string  `gorm:"size:255;not null"`
	Degree                string  `gorm:"size:200;not null"`
	Institution           string  `gorm:"size:100;not null"`
	Year                  string  `gorm:"size:50;not null"`
	AdditionalInformation *string `gorm:"type:text"`
}

func (Education) TableName() string { return "education" }

type EducationView struct {
	ID                    uint     `json:"id"`
	Image                 string   `json:"image"`
	Degree                string   `json:"degree"`
	Institution           string   `json:"institution"`
	Year                  string   `json:"year"`
	AdditionalInformation []string `json:"additional_information"`
}

func (e Education) Serialize() EducationView {
	info := []string{}
	if e.AdditionalInformation != nil && *e.AdditionalInformation != "" {
		info = SplitList(*e.AdditionalInformation, LineSeparator)
	}
	return EducationView{
		ID:                    e.ID,
		Image:                 e.Image,
		Degree:                e.Degree,
		Institution:           e.Institution,
		Year:                  e.Year,
		AdditionalInformation: info,
	}
}

type EducationPatch struct {
	Image                 *string     `json:"image"`
	Degree                *string     `json:"degree"`
	Institution           *string     `json:"institution"`
	Year                  *string     `json:"year"`
	AdditionalInformation *StringList `json:"additional_information"`
}

func (p EducationPatch) Missing() error {
	return checkRequired(Education{}.TableName(),
		required("image", p.Image),
		required("degree", p.Degree),
		required("institution", p.Institution),
		required("year", p.Year),
	)
}

func (p EducationPatch) Apply(e *Education) {
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.Institution != nil {
		e.Institution = *p.Institution
	}
	if p.Year != nil {
		e.Year = *p.Year
	}
	if p.AdditionalInformation != nil {
		joined := p.AdditionalInformation.Join(LineSeparator)
		e.AdditionalInformation = &joined
	}
}

// Certificate is a course or certification. Date is free text; display order
// is computed from it at render time.
type Certificate struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Institution string `gorm:"size:100;not null"`
	Link        string `gorm:"size:500;not null"`
	Date        string `gorm:"size:20;not null"`
}

func (Certificate) TableName() string { return "certificate" }

type CertificateView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Link        string `json:"link"`
	Date        string `json:"date"`
}

func (c Certificate) Serialize() CertificateView {
	return CertificateView{
		ID:          c.ID,
		Title:       c.Title,
		Institution: c.Institution,
		Link:        c.Link,
		Date:        c.Date,
	}
}

type CertificatePatch struct {
	Title       *string `json:"title"`
	Institution *string `json:"institution"`
	Link        *string `json:"link"`
	Date        *string `json:"date"`
}

func (p CertificatePatch) Missing() error {
	return checkRequired(Certificate{}.TableName(),
		required("title", p.Title),
		required("institution", p.Institution),
		required("link", p.Link),
		required("date", p.Date),
	)
}

func (p CertificatePatch) Apply(c *Certificate) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Institution != nil {
		c.Institution = *p.Institution
	}
	if p.Link != nil {
		c.Link = *p.Link
	}
	if p.Date != nil {
		c.Date = *p.Date
	}
}
