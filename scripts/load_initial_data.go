package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"impact-explorer-backend/internal/config"
	"impact-explorer-backend/internal/database"
	"impact-explorer-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type EmployeeRangeData struct {
	Label     string `yaml:"label"`
	SortOrder int    `yaml:"sort_order"`
}

type OrganizationData struct {
	Name              string   `yaml:"name"`
	Description       string   `yaml:"description"`
	Website           string   `yaml:"website,omitempty"`
	HiringStatus      string   `yaml:"hiring_status,omitempty"`
	Size              string   `yaml:"size,omitempty"`
	HQ                string   `yaml:"hq,omitempty"`
	YearEstablished   string   `yaml:"year_established,omitempty"`
	Notes             string   `yaml:"notes,omitempty"`
	NotableAlumni     string   `yaml:"notable_alumni,omitempty"`
	OrgType           string   `yaml:"org_type,omitempty"`
	EmployeeRange     string   `yaml:"employee_range,omitempty"`
	CauseAreas        []string `yaml:"cause_areas,omitempty"`
	RoleTypes         []string `yaml:"role_types,omitempty"`
	Regions           []string `yaml:"regions,omitempty"`
	TargetPopulations []string `yaml:"target_populations,omitempty"`
}

// File structures
type VocabularyFile struct {
	OrgTypes          []string            `yaml:"org_types"`
	CauseAreas        []string            `yaml:"cause_areas"`
	RoleTypes         []string            `yaml:"role_types"`
	Regions           []string            `yaml:"regions"`
	TargetPopulations []string            `yaml:"target_populations"`
	EmployeeRanges    []EmployeeRangeData `yaml:"employee_ranges"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	vocabulary, err := loadVocabulary(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	// Create vocabulary terms first so organizations can resolve them by name
	orgTypeMap, orgTypesCreated, err := createOrgTypes(db, vocabulary.OrgTypes)
	if err != nil {
		return fmt.Errorf("failed to create org types: %w", err)
	}
	log.Printf("📋 Org types: %d created, %d total", orgTypesCreated, len(vocabulary.OrgTypes))

	causeAreaMap, causeAreasCreated, err := createCauseAreas(db, vocabulary.CauseAreas)
	if err != nil {
		return fmt.Errorf("failed to create cause areas: %w", err)
	}
	log.Printf("📋 Cause areas: %d created, %d total", causeAreasCreated, len(vocabulary.CauseAreas))

	roleTypeMap, roleTypesCreated, err := createRoleTypes(db, vocabulary.RoleTypes)
	if err != nil {
		return fmt.Errorf("failed to create role types: %w", err)
	}
	log.Printf("📋 Role types: %d created, %d total", roleTypesCreated, len(vocabulary.RoleTypes))

	regionMap, regionsCreated, err := createRegions(db, vocabulary.Regions)
	if err != nil {
		return fmt.Errorf("failed to create regions: %w", err)
	}
	log.Printf("📋 Regions: %d created, %d total", regionsCreated, len(vocabulary.Regions))

	populationMap, populationsCreated, err := createTargetPopulations(db, vocabulary.TargetPopulations)
	if err != nil {
		return fmt.Errorf("failed to create target populations: %w", err)
	}
	log.Printf("📋 Target populations: %d created, %d total", populationsCreated, len(vocabulary.TargetPopulations))

	rangeMap, rangesCreated, err := createEmployeeRanges(db, vocabulary.EmployeeRanges)
	if err != nil {
		return fmt.Errorf("failed to create employee ranges: %w", err)
	}
	log.Printf("📋 Employee ranges: %d created, %d total", rangesCreated, len(vocabulary.EmployeeRanges))

	// Create organizations and their category links
	orgCreated := 0
	for _, orgData := range organizations {
		created, err := createOrganization(db, orgData, orgTypeMap, rangeMap, causeAreaMap, roleTypeMap, regionMap, populationMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create organization %s: %v", orgData.Name, err)
			continue // Continue with other organizations
		}
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	return nil
}

func loadVocabulary(dataDir string) (*VocabularyFile, error) {
	vocabulary := &VocabularyFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "vocabulary") {
			var file VocabularyFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			vocabulary.OrgTypes = append(vocabulary.OrgTypes, file.OrgTypes...)
			vocabulary.CauseAreas = append(vocabulary.CauseAreas, file.CauseAreas...)
			vocabulary.RoleTypes = append(vocabulary.RoleTypes, file.RoleTypes...)
			vocabulary.Regions = append(vocabulary.Regions, file.Regions...)
			vocabulary.TargetPopulations = append(vocabulary.TargetPopulations, file.TargetPopulations...)
			vocabulary.EmployeeRanges = append(vocabulary.EmployeeRanges, file.EmployeeRanges...)
		}
		return nil
	})

	return vocabulary, err
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func createOrgTypes(db *gorm.DB, names []string) (map[string]uuid.UUID, int, error) {
	idsByName := make(map[string]uuid.UUID)
	created := 0
	for _, name := range names {
		var term models.OrgType
		if err := db.Where("name = ?", name).First(&term).Error; err != nil {
			term = models.OrgType{VocabularyModel: models.VocabularyModel{Name: name}}
			if err := db.Create(&term).Error; err != nil {
				return nil, created, err
			}
			created++
		}
		idsByName[name] = term.ID
	}
	return idsByName, created, nil
}

func createCauseAreas(db *gorm.DB, names []string) (map[string]uuid.UUID, int, error) {
	idsByName := make(map[string]uuid.UUID)
	created := 0
	for _, name := range names {
		var term models.CauseArea
		if err := db.Where("name = ?", name).First(&term).Error; err != nil {
			term = models.CauseArea{VocabularyModel: models.VocabularyModel{Name: name}}
			if err := db.Create(&term).Error; err != nil {
				return nil, created, err
			}
			created++
		}
		idsByName[name] = term.ID
	}
	return idsByName, created, nil
}

func createRoleTypes(db *gorm.DB, names []string) (map[string]uuid.UUID, int, error) {
	idsByName := make(map[string]uuid.UUID)
	created := 0
	for _, name := range names {
		var term models.RoleType
		if err := db.Where("name = ?", name).First(&term).Error; err != nil {
			term = models.RoleType{VocabularyModel: models.VocabularyModel{Name: name}}
			if err := db.Create(&term).Error; err != nil {
				return nil, created, err
			}
			created++
		}
		idsByName[name] = term.ID
	}
	return idsByName, created, nil
}

func createRegions(db *gorm.DB, names []string) (map[string]uuid.UUID, int, error) {
	idsByName := make(map[string]uuid.UUID)
	created := 0
	for _, name := range names {
		var term models.Region
		if err := db.Where("name = ?", name).First(&term).Error; err != nil {
			term = models.Region{VocabularyModel: models.VocabularyModel{Name: name}}
			if err := db.Create(&term).Error; err != nil {
				return nil, created, err
			}
			created++
		}
		idsByName[name] = term.ID
	}
	return idsByName, created, nil
}

func createTargetPopulations(db *gorm.DB, names []string) (map[string]uuid.UUID, int, error) {
	idsByName := make(map[string]uuid.UUID)
	created := 0
	for _, name := range names {
		var term models.TargetPopulation
		if err := db.Where("name = ?", name).First(&term).Error; err != nil {
			term = models.TargetPopulation{VocabularyModel: models.VocabularyModel{Name: name}}
			if err := db.Create(&term).Error; err != nil {
				return nil, created, err
			}
			created++
		}
		idsByName[name] = term.ID
	}
	return idsByName, created, nil
}

func createEmployeeRanges(db *gorm.DB, ranges []EmployeeRangeData) (map[string]uuid.UUID, int, error) {
	idsByLabel := make(map[string]uuid.UUID)
	created := 0
	for _, rangeData := range ranges {
		var rng models.EmployeeRange
		if err := db.Where("label = ?", rangeData.Label).First(&rng).Error; err != nil {
			rng = models.EmployeeRange{Label: rangeData.Label, SortOrder: rangeData.SortOrder}
			if err := db.Create(&rng).Error; err != nil {
				return nil, created, err
			}
			created++
		}
		idsByLabel[rangeData.Label] = rng.ID
	}
	return idsByLabel, created, nil
}

func createOrganization(db *gorm.DB, orgData OrganizationData, orgTypeMap, rangeMap, causeAreaMap, roleTypeMap, regionMap, populationMap map[string]uuid.UUID) (bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err == nil {
		return false, nil // Already exists
	}

	org = models.Organization{
		Name:            orgData.Name,
		Description:     orgData.Description,
		Website:         orgData.Website,
		HiringStatus:    orgData.HiringStatus,
		Size:            orgData.Size,
		HQ:              orgData.HQ,
		YearEstablished: orgData.YearEstablished,
		Notes:           orgData.Notes,
		NotableAlumni:   orgData.NotableAlumni,
	}

	if id, ok := orgTypeMap[orgData.OrgType]; ok {
		org.OrgTypeID = &id
	} else if orgData.OrgType != "" {
		log.Printf("⚠️  Warning: organization %s references unknown org type %q", orgData.Name, orgData.OrgType)
	}
	if id, ok := rangeMap[orgData.EmployeeRange]; ok {
		org.EmployeeRangeID = &id
	} else if orgData.EmployeeRange != "" {
		log.Printf("⚠️  Warning: organization %s references unknown employee range %q", orgData.Name, orgData.EmployeeRange)
	}

	if err := db.Create(&org).Error; err != nil {
		return false, err
	}

	for _, name := range orgData.CauseAreas {
		id, ok := causeAreaMap[name]
		if !ok {
			log.Printf("⚠️  Warning: organization %s references unknown cause area %q", orgData.Name, name)
			continue
		}
		link := models.OrganizationCauseArea{OrganizationID: org.ID, CauseAreaID: id}
		if err := db.Create(&link).Error; err != nil {
			return true, err
		}
	}
	for _, name := range orgData.RoleTypes {
		id, ok := roleTypeMap[name]
		if !ok {
			log.Printf("⚠️  Warning: organization %s references unknown role type %q", orgData.Name, name)
			continue
		}
		link := models.OrganizationRoleType{OrganizationID: org.ID, RoleTypeID: id}
		if err := db.Create(&link).Error; err != nil {
			return true, err
		}
	}
	for _, name := range orgData.Regions {
		id, ok := regionMap[name]
		if !ok {
			log.Printf("⚠️  Warning: organization %s references unknown region %q", orgData.Name, name)
			continue
		}
		link := models.OrganizationRegion{OrganizationID: org.ID, RegionID: id}
		if err := db.Create(&link).Error; err != nil {
			return true, err
		}
	}
	for _, name := range orgData.TargetPopulations {
		id, ok := populationMap[name]
		if !ok {
			log.Printf("⚠️  Warning: organization %s references unknown target population %q", orgData.Name, name)
			continue
		}
		link := models.OrganizationTargetPopulation{OrganizationID: org.ID, TargetPopulationID: id}
		if err := db.Create(&link).Error; err != nil {
			return true, err
		}
	}

	return true, nil
}
