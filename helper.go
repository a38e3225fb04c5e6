package bankapp

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LocalHelper wires a store from configuration for the seeder and
// other local tooling: it opens (and thereby schema-initializes) the
// SQLite file and can bootstrap the admin credential.
type LocalHelper struct {
	Endpt *SQLiteEndpoint
	vault *Vault
	cfg   *Config
}

func NewLocalHelper(cfg *Config, log *zerolog.Logger) (*LocalHelper, error) {
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database path not configured")
	}
	endpt, err := NewSQLiteEndpoint(cfg.Database.Path, log)
	if err != nil {
		return nil, err
	}
	return &LocalHelper{
		Endpt: endpt,
		vault: NewVault(cfg.Vault.BcryptCost),
		cfg:   cfg,
	}, nil
}

// PrepareAdmin hashes the configured bootstrap credential and upserts
// it, so re-running the seeder refreshes the admin password instead of
// failing.
func (lh *LocalHelper) PrepareAdmin() error {
	if lh.cfg.Admin.Username == "" || lh.cfg.Admin.Password == "" {
		return fmt.Errorf("admin bootstrap credentials not configured")
	}
	salt, hash, err := lh.vault.Hash(lh.cfg.Admin.Password)
	if err != nil {
		return err
	}
	return lh.Endpt.CreateAdmin(lh.cfg.Admin.Username, salt, hash)
}

func (lh *LocalHelper) Close() error {
	return lh.Endpt.Close()
}
