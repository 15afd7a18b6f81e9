package db

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/zulandar/consistyard/internal/config"
)

func mysqlConfig(host string, port int, user, name string) config.DatabaseConfig {
	return config.DatabaseConfig{Driver: config.DriverMySQL, Host: host, Port: port, User: user, Name: name}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		database string
		contains []string
	}{
		{
			name:     "default local",
			cfg:      mysqlConfig("127.0.0.1", 3306, "root", "consistyard"),
			database: "consistyard",
			contains: []string{"root@tcp(127.0.0.1:3306)/consistyard?", "parseTime=true"},
		},
		{
			name:     "custom host and port",
			cfg:      mysqlConfig("10.0.0.5", 3307, "planner", "yard"),
			database: "yard",
			contains: []string{"planner@tcp(10.0.0.5:3307)/yard?"},
		},
		{
			name:     "admin has no database",
			cfg:      mysqlConfig("dolt.vpc.internal", 3306, "root", "yard"),
			database: "",
			contains: []string{"root@tcp(dolt.vpc.internal:3306)/?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DSN(tt.cfg, tt.database)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("DSN() = %q, want to contain %q", got, want)
				}
			}
		})
	}
}

func TestAllModels_Count(t *testing.T) {
	models := AllModels()
	if len(models) != 3 {
		t.Errorf("AllModels() returned %d models, want 3", len(models))
	}
}

func TestConnect_SQLiteMigrateAndDrop(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "nested", "yard.db"),
	}
	if err := EnsureDatabase(cfg); err != nil {
		t.Fatalf("EnsureDatabase: %v", err)
	}
	gormDB, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := AutoMigrate(gormDB); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	for _, m := range AllModels() {
		if !gormDB.Migrator().HasTable(m) {
			t.Errorf("table for %T missing after migrate", m)
		}
	}

	if err := DropAll(gormDB); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	for _, m := range AllModels() {
		if gormDB.Migrator().HasTable(m) {
			t.Errorf("table for %T still present after DropAll", m)
		}
	}
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(config.DatabaseConfig{Driver: "postgres"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if !strings.Contains(err.Error(), "unsupported driver") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "unsupported driver")
	}
	if err := EnsureDatabase(config.DatabaseConfig{Driver: "postgres"}); err == nil {
		t.Error("EnsureDatabase should reject unsupported driver")
	}
}

func TestConnect_MySQLError(t *testing.T) {
	// Port 1 is unlikely to have a MySQL server; expect connection error.
	_, err := Connect(mysqlConfig("127.0.0.1", 1, "root", "nonexistent"))
	if err == nil {
		t.Fatal("expected error connecting to invalid port")
	}
	if !strings.Contains(err.Error(), "db: connect to") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "db: connect to")
	}
}

func TestConnectAdmin_Error(t *testing.T) {
	_, err := ConnectAdmin(mysqlConfig("127.0.0.1", 1, "root", ""))
	if err == nil {
		t.Fatal("expected error connecting to invalid port")
	}
	if !strings.Contains(err.Error(), "db: admin connect to") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "db: admin connect to")
	}
}
