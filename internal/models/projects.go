package models

// Overview is the singleton record introducing the projects section.
type Overview struct {
	ID           uint     `gorm:"primaryKey"`
	OverviewData Document `gorm:"not null"`
}

func (Overview) TableName() string { return "overview" }

type OverviewView struct {
	ID           uint     `json:"id"`
	OverviewData Document `json:"overview_data"`
}

func (o Overview) Serialize() OverviewView {
	data := o.OverviewData
	if data.IsZero() {
		data = EmptyDocument()
	}
	return OverviewView{ID: o.ID, OverviewData: data}
}

// Text returns the "overview_text" entry of the overview document.
func (o Overview) Text() string {
	s, _ := o.OverviewData.Object()["overview_text"].(string)
	return s
}

// Project is a portfolio project. TechnicalDetails is an arbitrary JSON
// document.
type Project struct {
	ID               uint     `gorm:"primaryKey"`
	Name             string   `gorm:"size:100;not null"`
	Description      string   `gorm:"type:text;not null"`
	GithubLink       string   `gorm:"size:200;not null"`
	ProjectImage     *string  `gorm:"size:200"`
	DemoLink         *string  `gorm:"size:200"`
	TechnicalDetails Document
	KeyLearnings     string  `gorm:"type:text;not null"`
	Status           string  `gorm:"size:50;not null"`
	Demonstration    *string `gorm:"size:500"`
}

func (Project) TableName() string { return "project" }

type ProjectView struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	GithubLink       string   `json:"github_link"`
	ProjectImage     *string  `json:"project_image"`
	DemoLink         *string  `json:"demo_link"`
	TechnicalDetails Document `json:"technical_details"`
	KeyLearnings     string   `json:"key_learnings"`
	Status           string   `json:"status"`
	Demonstration    *string  `json:"demonstration"`
}

func (p Project) Serialize() ProjectView {
	details := p.TechnicalDetails
	if details.IsZero() {
		details = EmptyDocument()
	}
	return ProjectView{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		GithubLink:       p.GithubLink,
		ProjectImage:     p.ProjectImage,
		DemoLink:         p.DemoLink,
		TechnicalDetails: details,
		KeyLearnings:     p.KeyLearnings,
		Status:           p.Status,
		Demonstration:    p.Demonstration,
	}
}

type ProjectPatch struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	GithubLink       *string   `json:"github_link"`
	ProjectImage     *string   `json:"project_image"`
	DemoLink         *string   `json:"demo_link"`
	TechnicalDetails *Document `json:"technical_details"`
	KeyLearnings     *string   `json:"key_learnings"`
	Status           *string   `json:"status"`
	Demonstration    *string   `json:"demonstration"`
}

func (p ProjectPatch) Missing() error {
	return checkRequired(Project{}.TableName(),
		required("name", p.Name),
		required("description", p.Description),
		required("github_link", p.GithubLink),
		required("key_learnings", p.KeyLearnings),
		required("status", p.Status),
	)
}

func (p ProjectPatch) Apply(project *Project) {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.GithubLink != nil {
		project.GithubLink = *p.GithubLink
	}
	if p.ProjectImage != nil {
		project.ProjectImage = p.ProjectImage
	}
	if p.DemoLink != nil {
		project.DemoLink = p.DemoLink
	}
	if p.TechnicalDetails != nil {
		project.TechnicalDetails = *p.TechnicalDetails
	}
	if p.KeyLearnings != nil {
		project.KeyLearnings = *p.KeyLearnings
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	if p.Demonstration != nil {
		project.Demonstration = p.Demonstration
	}
}
