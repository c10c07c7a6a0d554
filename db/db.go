package db

import (
	"blog-backend/models"
	"blog-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the PostgreSQL connection and migrates the schema.
func InitDB(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         utils.GetGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		return nil, err
	}

	if err := Migrate(conn); err != nil {
		utils.LogError(err, "Error migrating database")
		return nil, err
	}

	utils.LogSuccess("Database connection successful")
	return conn, nil
}

// Migrate creates or updates the tables. Posts must exist before
// liked_posts because of the post_id foreign key.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.Post{},
		&models.LikedPost{},
		&models.User{},
	)
}
