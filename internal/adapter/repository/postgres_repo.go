package repository

import (
	"context"
	"fmt"

	"github.com/krishn404/RepOSS/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresPool implements port.CandidatePool backed by the curated
// repositories table. Staff picks are part of the same table, flagged.
type PostgresPool struct {
	db *gorm.DB
}

// NewPostgresPool opens the database connection and auto-migrates the
// repositories table.
func NewPostgresPool(dsn string) (*PostgresPool, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database failed: %w", err)
	}

	// AutoMigrate keeps the schema in sync with domain.Repo.
	if err := db.AutoMigrate(&domain.Repo{}); err != nil {
		return nil, fmt.Errorf("migrate database failed: %w", err)
	}

	return &PostgresPool{db: db}, nil
}

// Candidates returns up to limit repositories, staff picks first and then
// by stars descending. This is the pool the recommendation engine prefers
// over a live search.
func (p *PostgresPool) Candidates(ctx context.Context, limit int) ([]*domain.Repo, error) {
	var repos []*domain.Repo
	err := p.db.WithContext(ctx).
		Order("staff_pick DESC, stars DESC").
		Limit(limit).
		Find(&repos).Error
	return repos, err
}

// Save inserts or updates a repository (upsert on primary key).
func (p *PostgresPool) Save(ctx context.Context, repo *domain.Repo) error {
	result := p.db.WithContext(ctx).Save(repo)
	return result.Error
}

// Exists checks whether the repository is already pooled.
func (p *PostgresPool) Exists(ctx context.Context, repoID int64) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&domain.Repo{}).Where("id = ?", repoID).Count(&count).Error
	return count > 0, err
}

// MarkStaffPick flags a pooled repository as curator-approved.
func (p *PostgresPool) MarkStaffPick(ctx context.Context, repoID int64) error {
	result := p.db.WithContext(ctx).Model(&domain.Repo{}).Where("id = ?", repoID).Update("staff_pick", true)
	return result.Error
}

// StaffPicks returns the curated shortlist shown on the landing page,
// newest stars first.
func (p *PostgresPool) StaffPicks(ctx context.Context, limit int) ([]*domain.Repo, error) {
	var repos []*domain.Repo
	err := p.db.WithContext(ctx).
		Where("staff_pick = ?", true).
		Order("stars DESC").
		Limit(limit).
		Find(&repos).Error
	return repos, err
}
