// Package mock provides in-memory infrastructure for integration tests.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finlog/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection that stands in for Postgres
// during integration scenarios.
type Db struct {
	Conn *gorm.DB
}

// NewDb returns the shared test database, opening and migrating it on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	// A single shared-cache connection keeps every scenario on the same
	// in-memory database.
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	if err := conn.AutoMigrate(&model.UserModel{}, &model.CategoryModel{}, &model.TransactionModel{}); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{Conn: conn}
}

// Reset wipes all rows between scenarios, children before parents so foreign
// keys never block the cleanup.
func (d *Db) Reset() error {
	for _, m := range []any{&model.TransactionModel{}, &model.CategoryModel{}, &model.UserModel{}} {
		if err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
