package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"assessment-portal-backend/internal/config"
	"assessment-portal-backend/internal/database"
	"assessment-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files

type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type OrganizationData struct {
	OrganizationName string `yaml:"organization_name"`
	Project          string `yaml:"project"`
	UserEmail        string `yaml:"user_email"`
}

type FacilityData struct {
	OrganizationName   string `yaml:"organization_name"`
	FacilityType       string `yaml:"facility_type"`
	FacilityAddress    string `yaml:"facility_address,omitempty"`
	FacilityStatus     string `yaml:"facility_status,omitempty"`
	InternetTechnology string `yaml:"internet_technology,omitempty"`
	ISPName            string `yaml:"isp_name,omitempty"`
	SubscribedDownload string `yaml:"subscribed_download,omitempty"`
	SubscribedUpload   string `yaml:"subscribed_upload,omitempty"`
	Project            string `yaml:"project,omitempty"`
}

// File structures

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type FacilitiesFile struct {
	Facilities []FacilityData `yaml:"facilities"`
}

func main() {
	log.Println("Loading demo data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Demo data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var orgsFile OrganizationsFile
	if err := readYAML(filepath.Join(dataDir, "organizations.yaml"), &orgsFile); err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	var facilitiesFile FacilitiesFile
	if err := readYAML(filepath.Join(dataDir, "facilities.yaml"), &facilitiesFile); err != nil {
		return fmt.Errorf("failed to load facilities: %w", err)
	}

	// Create users first; organizations and facilities hang off them
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range usersFile.Users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(usersFile.Users))

	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range orgsFile.Organizations {
		org, created, err := createOrganization(db, orgData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.OrganizationName, err)
		}
		orgMap[orgData.OrganizationName] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(orgsFile.Organizations))

	facilityCreated := 0
	for _, facilityData := range facilitiesFile.Facilities {
		_, created, err := createFacility(db, facilityData, orgMap)
		if err != nil {
			log.Printf("Warning: failed to create facility for %s: %v", facilityData.OrganizationName, err)
			continue
		}
		if created {
			facilityCreated++
		}
	}
	log.Printf("Facilities: %d created, %d total", facilityCreated, len(facilitiesFile.Facilities))

	return nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user := &models.User{
		Email:        data.Email,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createOrganization(db *gorm.DB, data OrganizationData, userMap map[string]*models.User) (*models.Organization, bool, error) {
	user, ok := userMap[data.UserEmail]
	if !ok {
		return nil, false, fmt.Errorf("unknown user %q", data.UserEmail)
	}

	var existing models.Organization
	err := db.First(&existing, "organization_name = ? AND user_id = ?", data.OrganizationName, user.ID).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	org := &models.Organization{
		OrganizationName: data.OrganizationName,
		Project:          data.Project,
		UserID:           user.ID,
	}
	if err := db.Create(org).Error; err != nil {
		return nil, false, err
	}
	return org, true, nil
}

func createFacility(db *gorm.DB, data FacilityData, orgMap map[string]*models.Organization) (*models.Facility, bool, error) {
	org, ok := orgMap[data.OrganizationName]
	if !ok {
		return nil, false, fmt.Errorf("unknown organization %q", data.OrganizationName)
	}

	var existing models.Facility
	err := db.First(&existing, "organization_id = ?", org.ID).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	facility := &models.Facility{
		OrganizationID:     org.ID,
		FacilityType:       data.FacilityType,
		FacilityAddress:    data.FacilityAddress,
		FacilityStatus:     data.FacilityStatus,
		InternetTechnology: data.InternetTechnology,
		ISPName:            data.ISPName,
		SubscribedDownload: data.SubscribedDownload,
		SubscribedUpload:   data.SubscribedUpload,
		Project:            data.Project,
	}
	if err := db.Create(facility).Error; err != nil {
		return nil, false, err
	}
	return facility, true, nil
}
