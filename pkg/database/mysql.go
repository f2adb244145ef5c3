package database

import (
	"fmt"
	"time"

	"ai-solutions-go/internal/config"
	"ai-solutions-go/internal/model"
	"ai-solutions-go/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to the content store. driver is "mysql" or "sqlite".
// An in-memory sqlite database is pinned to a single connection so every query sees the same data.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" && dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// Migrate creates or updates every table of the content store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Service{},
		&model.Project{},
		&model.Article{},
		&model.Event{},
		&model.GalleryImage{},
		&model.Testimonial{},
		&model.ContactSubmission{},
		&model.QuoteRequest{},
		&model.User{},
	)
}

// InitMySQL opens the content store into DB and runs migrations. It exits the process on failure.
func InitMySQL(cfg config.MySQLConfig) {
	var err error
	DB, err = Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Fatal("failed to connect database", err)
	}
	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database", err)
	}
	log.Infof("content store connected (driver=%s)", cfg.Driver)
}
