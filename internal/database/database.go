package database

import (
	"fmt"
	"time"

	"impact-explorer-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection, registers the explicit join-table
// models for the four category associations and creates the schema from the
// GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (primary key defaults use gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// Route the many2many associations through the explicit junction models so
	// reads can Preload the category slices while the repository owns writes.
	joinTables := []struct {
		field string
		model interface{}
	}{
		{"CauseAreas", &models.OrganizationCauseArea{}},
		{"RoleTypes", &models.OrganizationRoleType{}},
		{"Regions", &models.OrganizationRegion{}},
		{"TargetPopulations", &models.OrganizationTargetPopulation{}},
	}
	for _, jt := range joinTables {
		if err := db.SetupJoinTable(&models.Organization{}, jt.field, jt.model); err != nil {
			return nil, fmt.Errorf("setup join table %s: %w", jt.field, err)
		}
	}

	// AutoMigrate all models (vocabularies first, then the organization and its junctions)
	if opts.AutoMigrate {
		all := []interface{}{
			&models.OrgType{},
			&models.CauseArea{},
			&models.RoleType{},
			&models.Region{},
			&models.TargetPopulation{},
			&models.EmployeeRange{},
			&models.Organization{},
			&models.OrganizationCauseArea{},
			&models.OrganizationRoleType{},
			&models.OrganizationRegion{},
			&models.OrganizationTargetPopulation{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
