package config

import (
	"log"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedData seeds catalog reference data and the provisioning-time admin
func SeedData(db *gorm.DB, cfg *Config) error {
	log.Println("🌱 Running database seeders...")

	if err := seedAdminUser(db, cfg); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	if err := seedOperators(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds the designated admin account once at provisioning
// time. Admin privilege lives entirely in the role column; no request
// path ever compares emails.
func seedAdminUser(db *gorm.DB, cfg *Config) error {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Println("⚠️ Skipping admin seed: ADMIN_EMAIL / ADMIN_PASSWORD not set")
		return nil
	}

	hashedPassword, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: hashedPassword,
		Credits:  0,
		Role:     models.RoleAdmin,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedOperators seeds the telecom operator list
func seedOperators(db *gorm.DB) error {
	var count int64
	db.Model(&models.Operator{}).Count(&count)
	if count > 0 {
		return nil
	}

	operators := []models.Operator{
		{Name: "atom", DisplayName: "ATOM", ColorScheme: "#E6007E", IsActive: true},
		{Name: "mpt", DisplayName: "MPT", ColorScheme: "#FFCC00", IsActive: true},
		{Name: "mytel", DisplayName: "Mytel", ColorScheme: "#F58220", IsActive: true},
		{Name: "ooredoo", DisplayName: "Ooredoo", ColorScheme: "#ED1C24", IsActive: true},
	}

	if err := db.Create(&operators).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d operators", len(operators))
	return nil
}

// seedCategories seeds the product categories
func seedCategories(db *gorm.DB) error {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "data", DisplayName: "Data Packages", Icon: "wifi", SortOrder: 1, IsActive: true},
		{Name: "minutes", DisplayName: "Minutes", Icon: "phone", SortOrder: 2, IsActive: true},
		{Name: "points", DisplayName: "Points", Icon: "star", SortOrder: 3, IsActive: true},
		{Name: "packages", DisplayName: "Bundled Packages", Icon: "package", SortOrder: 4, IsActive: true},
		{Name: "beautiful_numbers", DisplayName: "Beautiful Numbers", Icon: "sparkles", SortOrder: 5, IsActive: true},
	}

	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d categories", len(categories))
	return nil
}

// seedProducts seeds a starter product set for development. Production
// catalogs are managed directly in the database.
func seedProducts(db *gorm.DB) error {
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	var operators []models.Operator
	if err := db.Find(&operators).Error; err != nil {
		return err
	}
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}

	operatorID := make(map[string]uint, len(operators))
	for _, op := range operators {
		operatorID[op.Name] = op.ID
	}
	categoryID := make(map[string]uint, len(categories))
	for _, cat := range categories {
		categoryID[cat.Name] = cat.ID
	}

	desc := func(s string) *string { return &s }

	products := []models.Product{
		{OperatorID: operatorID["atom"], CategoryID: categoryID["data"], Name: "ATOM 1GB", Description: desc("1GB data, valid 7 days"), PriceMMK: 1000, PriceCredits: 10, SortOrder: 1, IsActive: true},
		{OperatorID: operatorID["atom"], CategoryID: categoryID["data"], Name: "ATOM 5GB", Description: desc("5GB data, valid 30 days"), PriceMMK: 4500, PriceCredits: 45, SortOrder: 2, IsActive: true},
		{OperatorID: operatorID["mpt"], CategoryID: categoryID["data"], Name: "MPT 2GB", Description: desc("2GB data, valid 15 days"), PriceMMK: 2000, PriceCredits: 20, SortOrder: 3, IsActive: true},
		{OperatorID: operatorID["mpt"], CategoryID: categoryID["minutes"], Name: "MPT 100 Minutes", Description: desc("100 any-net minutes"), PriceMMK: 1500, PriceCredits: 15, SortOrder: 4, IsActive: true},
		{OperatorID: operatorID["mytel"], CategoryID: categoryID["packages"], Name: "Mytel Combo 999", Description: desc("3GB + 50 minutes bundle"), PriceMMK: 999, PriceCredits: 10, SortOrder: 5, IsActive: true},
		{OperatorID: operatorID["mytel"], CategoryID: categoryID["points"], Name: "Mytel 500 Points", Description: desc("500 loyalty points"), PriceMMK: 5000, PriceCredits: 50, SortOrder: 6, IsActive: true},
		{OperatorID: operatorID["ooredoo"], CategoryID: categoryID["data"], Name: "Ooredoo 3GB", Description: desc("3GB data, valid 30 days"), PriceMMK: 3000, PriceCredits: 30, SortOrder: 7, IsActive: true},
		{OperatorID: operatorID["ooredoo"], CategoryID: categoryID["beautiful_numbers"], Name: "Ooredoo 09977777777", Description: desc("Beautiful number with repeating digits"), PriceMMK: 500000, PriceCredits: 5000, SortOrder: 8, IsActive: true},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d products", len(products))
	return nil
}
