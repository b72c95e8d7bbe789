package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema from the row models. Used by the seed
// binary and the test suites; production schemas are managed externally.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&providerProfileModel{},
		&equipmentModel{},
		&equipmentImageModel{},
		&bookingModel{},
	)
}
