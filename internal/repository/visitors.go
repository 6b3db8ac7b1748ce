package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Zachkp/portfolio/internal/models"
)

type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

type VisitorStats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	TopPaths         []PathStat       `json:"top_paths"`
	RecentVisitors   []models.Visitor `json:"recent_visitors"`
}

// VisitorStore keeps the anonymised page view log.
type VisitorStore struct {
	db *gorm.DB
}

func (s *VisitorStore) Record(ctx context.Context, v *models.Visitor) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(v).Error
}

// PurgeBefore deletes page views older than cutoff and reports how many went.
func (s *VisitorStore) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("timestamp < ?", cutoff.UTC()).Delete(&models.Visitor{})
	return result.RowsAffected, result.Error
}

// Stats summarises the log as of now.
func (s *VisitorStore) Stats(ctx context.Context, now time.Time) (*VisitorStats, error) {
	now = now.UTC()
	db := s.db.WithContext(ctx)
	stats := &VisitorStats{TopPaths: []PathStat{}, RecentVisitors: []models.Visitor{}}

	if err := db.Model(&models.Visitor{}).Count(&stats.TotalVisitors).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Visitor{}).Distinct("hashed_ip").Count(&stats.UniqueVisitors).Error; err != nil {
		return nil, err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := db.Model(&models.Visitor{}).Where("timestamp >= ?", startOfDay).Count(&stats.VisitorsToday).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Visitor{}).Where("timestamp >= ?", now.AddDate(0, 0, -7)).Count(&stats.VisitorsThisWeek).Error; err != nil {
		return nil, err
	}

	err := db.Model(&models.Visitor{}).
		Select("path, COUNT(*) AS views").
		Group("path").
		Order("views DESC, path").
		Limit(10).
		Scan(&stats.TopPaths).Error
	if err != nil {
		return nil, err
	}

	if err := db.Order("timestamp DESC").Limit(50).Find(&stats.RecentVisitors).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
