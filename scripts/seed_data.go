package main

import (
	"fmt"
	"log"

	"company-portal-backend/internal/config"
	"company-portal-backend/internal/database"
	"company-portal-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the database with the default admin and regular users plus a set of
// sample companies and employees. Safe to re-run: existing records are kept.

type companySeed struct {
	Name    string
	Email   string
	Logo    string
	Website string
}

type employeeSeed struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
}

var companySeeds = []companySeed{
	{"Arkana Media", "contact@arkana-media.example.com", "logos/facebook.png", "https://arkana-media.example.com"},
	{"Bluewater Logistics", "hello@bluewater-logistics.example.com", "logos/youtube.png", "https://bluewater-logistics.example.com"},
	{"Cendana Retail Group", "info@cendana-retail.example.com", "logos/google.png", "https://cendana-retail.example.com"},
	{"Dwipa Engineering", "office@dwipa-engineering.example.com", "logos/facebook.png", "https://dwipa-engineering.example.com"},
	{"Elang Digital Studio", "team@elang-digital.example.com", "logos/google.png", "https://elang-digital.example.com"},
}

var employeeSeeds = []employeeSeed{
	{"Andi", "Pratama", "Arkana Media", "andi.pratama@arkana-media.example.com", "+62-811-1000-001"},
	{"Budi", "Santoso", "Arkana Media", "budi.santoso@arkana-media.example.com", "+62-811-1000-002"},
	{"Citra", "Wulandari", "Bluewater Logistics", "citra.wulandari@bluewater-logistics.example.com", "+62-811-1000-003"},
	{"Dewi", "Lestari", "Bluewater Logistics", "dewi.lestari@bluewater-logistics.example.com", "+62-811-1000-004"},
	{"Eko", "Saputra", "Cendana Retail Group", "eko.saputra@cendana-retail.example.com", "+62-811-1000-005"},
	{"Fitri", "Handayani", "Cendana Retail Group", "fitri.handayani@cendana-retail.example.com", "+62-811-1000-006"},
	{"Gilang", "Ramadhan", "Dwipa Engineering", "gilang.ramadhan@dwipa-engineering.example.com", "+62-811-1000-007"},
	{"Hana", "Kusuma", "Dwipa Engineering", "hana.kusuma@dwipa-engineering.example.com", "+62-811-1000-008"},
	{"Indra", "Wijaya", "Elang Digital Studio", "indra.wijaya@elang-digital.example.com", "+62-811-1000-009"},
	{"Joko", "Susilo", "Elang Digital Studio", "joko.susilo@elang-digital.example.com", "+62-811-1000-010"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	if err := seedUsers(db); err != nil {
		log.Fatal("Failed to seed users:", err)
	}

	companies, err := seedCompanies(db)
	if err != nil {
		log.Fatal("Failed to seed companies:", err)
	}

	if err := seedEmployees(db, companies); err != nil {
		log.Fatal("Failed to seed employees:", err)
	}

	log.Println("Seeding completed")
}

func seedUsers(db *gorm.DB) error {
	users := []struct {
		Name    string
		Email   string
		IsAdmin bool
	}{
		{"Admin", "admin@jti.com", true},
		{"User", "user@jti.com", false},
	}

	for _, u := range users {
		var existing models.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			log.Printf("User %s already exists, skipping", u.Email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		user := models.User{
			Name:    u.Name,
			Email:   u.Email,
			IsAdmin: u.IsAdmin,
		}
		if err := user.SetPassword("password"); err != nil {
			return err
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Created user %s", u.Email)
	}

	return nil
}

func seedCompanies(db *gorm.DB) (map[string]uint, error) {
	ids := make(map[string]uint)

	for _, c := range companySeeds {
		var existing models.Company
		err := db.Where("email = ?", c.Email).First(&existing).Error
		if err == nil {
			ids[c.Name] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		company := models.Company{
			Name:    c.Name,
			Email:   c.Email,
			Logo:    c.Logo,
			Website: c.Website,
		}
		if err := db.Create(&company).Error; err != nil {
			return nil, err
		}
		ids[c.Name] = company.ID
		log.Printf("Created company %s", c.Name)
	}

	return ids, nil
}

func seedEmployees(db *gorm.DB, companies map[string]uint) error {
	for _, e := range employeeSeeds {
		companyID, ok := companies[e.Company]
		if !ok {
			return fmt.Errorf("unknown company %q for employee %s %s", e.Company, e.FirstName, e.LastName)
		}

		var existing models.Employee
		err := db.Where("email = ?", e.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		employee := models.Employee{
			FirstName: e.FirstName,
			LastName:  e.LastName,
			CompanyID: companyID,
			Email:     e.Email,
			Phone:     e.Phone,
		}
		if err := db.Create(&employee).Error; err != nil {
			return err
		}
		log.Printf("Created employee %s %s", e.FirstName, e.LastName)
	}

	return nil
}
