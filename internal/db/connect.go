package db

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/zulandar/consistyard/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a MySQL DSN for cfg. An empty database name yields a DSN with
// no database selected, used for CREATE DATABASE operations.
func DSN(cfg config.DatabaseConfig, database string) string {
	mc := mysqldriver.NewConfig()
	mc.User = cfg.User
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = database
	mc.ParseTime = true
	return mc.FormatDSN()
}

// Connect opens a GORM connection using the configured driver.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	var where string
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Path)
		where = cfg.Path
	case config.DriverMySQL:
		dialector = mysql.Open(DSN(cfg, cfg.Name))
		where = fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Name)
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db: connect to %s: %w", where, err)
	}
	return db, nil
}

// ConnectAdmin opens a GORM connection to the MySQL server without selecting
// a database.
func ConnectAdmin(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(DSN(cfg, "")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db: admin connect to %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return db, nil
}

// CreateDatabase creates the named database if it doesn't already exist.
func CreateDatabase(adminDB *gorm.DB, name string) error {
	sql := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", name)
	if err := adminDB.Exec(sql).Error; err != nil {
		return fmt.Errorf("db: create database %s: %w", name, err)
	}
	return nil
}

// EnsureDatabase makes sure the configured database can be opened: it
// creates the sqlite file's directory, or the MySQL database.
func EnsureDatabase(cfg config.DatabaseConfig) error {
	switch cfg.Driver {
	case config.DriverSQLite:
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("db: create directory %s: %w", dir, err)
		}
		return nil
	case config.DriverMySQL:
		adminDB, err := ConnectAdmin(cfg)
		if err != nil {
			return err
		}
		return CreateDatabase(adminDB, cfg.Name)
	}
	return fmt.Errorf("db: unsupported driver %q", cfg.Driver)
}
