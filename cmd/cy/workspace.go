package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zulandar/consistyard/internal/config"
	"github.com/zulandar/consistyard/internal/consist"
	"github.com/zulandar/consistyard/internal/db"
	"github.com/zulandar/consistyard/internal/order"
	"github.com/zulandar/consistyard/internal/store"
	"gorm.io/gorm"
)

const defaultConfigPath = "consistyard.yaml"

// targetFlags selects the config file and the consist a command works on.
type targetFlags struct {
	configPath string
	consist    string
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", defaultConfigPath, "path to Consistyard config file")
	cmd.Flags().StringVar(&f.consist, "consist", "", "consist name (default from config)")
}

// workspace is a loaded consist plus the database it came from.
type workspace struct {
	cfg     *config.Config
	db      *gorm.DB
	name    string
	consist *consist.Consist
}

// open loads the target consist, starting an empty one if it is not stored yet.
func (f *targetFlags) open() (*workspace, error) {
	cfg, gormDB, err := connectFromConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(f.consist)
	if name == "" {
		name = cfg.Consist
	}
	c, err := store.LoadOrNew(gormDB, name)
	if err != nil {
		return nil, err
	}
	return &workspace{cfg: cfg, db: gormDB, name: name, consist: c}, nil
}

func (w *workspace) save() error {
	return store.Save(w.db, w.name, w.consist)
}

// connectFromConfig loads config (falling back to defaults when the file is
// absent), connects and migrates.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect (run \"cy db init\" first?): %w", err)
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}

// parseRow converts a 1-based row number from the command line into a
// zero-based position.
func parseRow(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("row %q must be a positive number", s)
	}
	return n - 1, nil
}

// rowError rewrites out-of-range errors in terms of the 1-based rows users see.
func rowError(what string, pos, count int, err error) error {
	if errors.Is(err, order.ErrOutOfRange) {
		return fmt.Errorf("%s %d does not exist (consist has %d)", what, pos+1, count)
	}
	return err
}
