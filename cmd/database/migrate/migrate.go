package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"GiveBridge-Backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Donor{}); err != nil {
		log.Fatalf("Error migrating donor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NGO{}); err != nil {
		log.Fatalf("Error migrating ngo database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationItem{}); err != nil {
		log.Fatalf("Error migrating donation item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationImage{}); err != nil {
		log.Fatalf("Error migrating donation image database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Feedback{}); err != nil {
		log.Fatalf("Error migrating feedback database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
