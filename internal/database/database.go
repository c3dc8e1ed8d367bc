package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cognitrack/internal/config"
	logging "cognitrack/internal/logging"
	"cognitrack/internal/models"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// AutoMigrate creates tables, columns and foreign keys but not custom
	// indexes; those are handled separately below.
	err := DB.AutoMigrate(
		&models.User{},
		&models.TestResult{},
		&models.Supplement{},
		&models.SupplementIntake{},
		&models.WashoutPeriod{},
		&models.FactorLog{},
		&models.StatisticalAnalysis{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_test_results_query ON test_results (user_id, test_type, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_supplement_intakes_day ON supplement_intakes (user_id, supplement_id, taken_at);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_factor_logs_day ON factor_logs (user_id, log_date);`,
	}
	for _, idx := range indexes {
		if err := DB.Exec(idx).Error; err != nil {
			log.Fatal("Failed to create custom index", zap.Error(err))
		}
	}
	log.Info("Custom indexes ensured successfully.")
}
