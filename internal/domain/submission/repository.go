package submission

import (
	"context"

	"gorm.io/gorm"
)

// Repository handles submission data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates submission repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the submission tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&ContactSubmission{}, &ReferralSubmission{})
}

// CreateContact inserts a contact submission.
func (r *Repository) CreateContact(ctx context.Context, sub *ContactSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// CreateReferral inserts a referral submission.
func (r *Repository) CreateReferral(ctx context.Context, sub *ReferralSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}
