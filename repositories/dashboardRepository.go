package repositories

import (
	"PulmoCare/cache"
	"PulmoCare/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	statsCacheExpiry = 1 * time.Minute
	statsCacheKey    = "dashboard_stats_cache"
)

// DashboardStats aggregates the day's headline counts.
type DashboardStats struct {
	TotalPatients  int64 `json:"totalPatients"`
	ICUPatients    int64 `json:"icuPatients"`
	Procedures     int64 `json:"procedures"`
	PendingReports int64 `json:"pendingReports"`
}

type DashboardRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDashboardRepository(db *gorm.DB, cache *cache.Cache) *DashboardRepository {
	return &DashboardRepository{db: db, cache: cache}
}

// GetStats computes the dashboard counts for today. Cached briefly; counts
// drift at most a minute behind writes.
func (r *DashboardRepository) GetStats(ctx context.Context) (*DashboardStats, error) {
	cached, err := r.cache.Get(ctx, statsCacheKey)
	if err == nil {
		var stats DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get dashboard stats from cache: %v", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var stats DashboardStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Patient{}).
		Where("status = ?", "active").
		Count(&stats.TotalPatients).Error; err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}

	if err := db.Model(&models.Patient{}).
		Joins("JOIN ward ON ward.id = patient.current_ward_id").
		Where("patient.status = ? AND ward.type = ?", "active", models.WardTypeICU).
		Count(&stats.ICUPatients).Error; err != nil {
		return nil, fmt.Errorf("failed to count ICU patients: %w", err)
	}

	if err := db.Model(&models.Procedure{}).
		Where("scheduled_date >= ? AND scheduled_date < ? AND status = ?",
			startOfDay, endOfDay, models.ProcedureStatusScheduled).
		Count(&stats.Procedures).Error; err != nil {
		return nil, fmt.Errorf("failed to count procedures: %w", err)
	}

	if err := db.Model(&models.MedicalReport{}).
		Where("status = ?", models.ReportStatusPending).
		Count(&stats.PendingReports).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending reports: %w", err)
	}

	statsJSON, err := json.Marshal(stats)
	if err == nil {
		if err := r.cache.Set(ctx, statsCacheKey, statsJSON, statsCacheExpiry); err != nil {
			log.Printf("Failed to set dashboard stats in cache: %v", err)
		}
	}

	return &stats, nil
}
