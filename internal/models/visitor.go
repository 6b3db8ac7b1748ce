package models

import "time"

// Visitor is one tracked page view. The client address is stored only as a
// salted hash.
type Visitor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HashedIP  string    `gorm:"size:64;not null;index" json:"hashed_ip"`
	UserAgent string    `gorm:"type:text" json:"user_agent"`
	Path      string    `gorm:"size:500" json:"path"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}

func (Visitor) TableName() string { return "visitors" }

// All returns every model managed by the schema migration.
func All() []any {
	return []any{
		&SkillCategory{},
		&Skill{},
		&Experience{},
		&Education{},
		&Certificate{},
		&Overview{},
		&Project{},
		&Visitor{},
	}
}
