package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// School is an institution collecting fees through the dashboard
type School struct {
	ID        string    `gorm:"type:varchar(64);primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for School
func (s *School) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}
	if s.ID == "" {
		return errors.New("school ID is required")
	}
	if s.Name == "" {
		return errors.New("school name is required")
	}
	return nil
}

// TableName returns the table name for School
func (s *School) TableName() string {
	return "schools"
}
