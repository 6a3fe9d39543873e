package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestionpro/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

var dbModels = []any{
	&model.ProjectRecord{},
	&model.EmployeeModel{},
	&model.StorageItemModel{},
	&model.VisitModel{},
}

// NewDB opens the shared in-memory sqlite database and migrates every
// persistence model once. Tests call ClearDB to start from empty tables.
func NewDB() *gorm.DB {
	dbOnce.Do(
		func() {
			dbConn = openDBConn()
		},
	)

	return dbConn
}

func openDBConn() *gorm.DB {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive for
	// the whole test run.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(dbModels...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return conn
}

// ClearDB wipes every table.
func ClearDB(conn *gorm.DB) error {
	for _, m := range dbModels {
		err := conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
