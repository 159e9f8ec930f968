package lookuplog

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutcomeOK               = "ok"
	OutcomeInvalidName      = "invalid_name"
	OutcomeNotFound         = "not_found"
	OutcomeProviderError    = "provider_error"
	OutcomeEnrichmentFailed = "enrichment_failed"
	OutcomeCanceled         = "canceled"
)

type CityLookup struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	RequestID      string    `json:"request_id" gorm:"column:request_id"`
	CityName       string    `json:"city_name" gorm:"column:city_name;index:idx_city_name;index:idx_city_name_created_at"`
	Outcome        string    `json:"outcome" gorm:"column:outcome"`
	CandidateCount int       `json:"candidate_count" gorm:"column:candidate_count"`
	DurationMs     int64     `json:"duration_ms" gorm:"column:duration_ms"`
	CreatedAt      time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_name_created_at"`
}

func (CityLookup) TableName() string {
	return "city_lookups"
}
