package config

import (
	"fmt"
	"os"

	"github.com/ctb-platform/team-server/logger"
	"github.com/ctb-platform/team-server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the PostgreSQL connection, migrates the schema and seeds
// the reference data (permission catalog + predefined role templates).
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.L().Fatalw("failed to connect database", "error", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamRole{},
		&models.Permission{},
		&models.PredefinedRole{},
		&models.PredefinedRolePermission{},
		&models.TeamRolePermission{},
		&models.UserTeam{},
		&models.Invitation{},
	)
	if err != nil {
		logger.L().Fatalw("failed to migrate", "error", err)
	}

	if err := SeedReferenceData(db); err != nil {
		logger.L().Fatalw("failed to seed reference data", "error", err)
	}

	DB = db
	logger.L().Infow("connected to PostgreSQL & migrated successfully")
}
