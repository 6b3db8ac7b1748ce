package models

import (
	"fmt"

	"gorm.io/gorm"
)

// SkillCategory groups technical skills on the about page.
type SkillCategory struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"size:100;not null;uniqueIndex"`
	Skills []Skill `gorm:"foreignKey:CategoryID"`
}

func (SkillCategory) TableName() string { return "technical_skill_category" }

// Skill is a single technical skill with an optional level and progress
// percentage.
type Skill struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"size:100;not null"`
	Level      *string `gorm:"size:50"`
	Progress   *int
	CategoryID uint `gorm:"not null;index"`
}

func (Skill) TableName() string { return "technical_skill" }

func (s *Skill) BeforeSave(tx *gorm.DB) error {
	if s.CategoryID == 0 {
		return fmt.Errorf("%w: %s.category_id", ErrMissingField, s.TableName())
	}
	return nil
}

type SkillView struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Level      *string `json:"level"`
	Progress   *int    `json:"progress"`
	CategoryID uint    `json:"category_id"`
}

func (s Skill) Serialize() SkillView {
	return SkillView{
		ID:         s.ID,
		Name:       s.Name,
		Level:      s.Level,
		Progress:   s.Progress,
		CategoryID: s.CategoryID,
	}
}

type SkillCategoryView struct {
	ID     uint        `json:"id"`
	Name   string      `json:"name"`
	Skills []SkillView `json:"skills"`
}

func (c SkillCategory) Serialize() SkillCategoryView {
	skills := make([]SkillView, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, s.Serialize())
	}
	return SkillCategoryView{ID: c.ID, Name: c.Name, Skills: skills}
}

type SkillCategoryPatch struct {
	Name *string `json:"name"`
}

func (p SkillCategoryPatch) Missing() error {
	return checkRequired(SkillCategory{}.TableName(), required("name", p.Name))
}

func (p SkillCategoryPatch) Apply(c *SkillCategory) {
	if p.Name != nil {
		c.Name = *p.Name
	}
}

type SkillPatch struct {
	Name       *string `json:"name"`
	Level      *string `json:"level"`
	Progress   *int    `json:"progress"`
	CategoryID *uint   `json:"category_id"`
}

func (p SkillPatch) Missing() error {
	return checkRequired(Skill{}.TableName(),
		required("name", p.Name),
		required("category_id", p.CategoryID),
	)
}

func (p SkillPatch) Apply(s *Skill) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Level != nil {
		s.Level = p.Level
	}
	if p.Progress != nil {
		s.Progress = p.Progress
	}
	if p.CategoryID != nil {
		s.CategoryID = *p.CategoryID
	}
}
