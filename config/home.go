package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const (
	DefaultHomePath = "~/.wirec"
	DBDirname       = "db"
)

// Home is a wirec home directory. It holds config.toml and the record
// database.
type Home struct {
	path string
}

// NewHome resolves a leading ~ in path against the user's home directory.
func NewHome(path string) (*Home, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrap(err, "error expanding home path")
	}
	return &Home{path: expanded}, nil
}

func (h *Home) Path() string {
	return h.path
}

func (h *Home) DBPath() string {
	return filepath.Join(h.path, DBDirname)
}

func (h *Home) ConfigPath() string {
	return filepath.Join(h.path, ConfigFilename)
}

func (h *Home) Exists() (bool, error) {
	stat, err := os.Stat(h.path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if !stat.IsDir() {
		return false, errors.New("home dir path exists, but is a file")
	}

	return true, nil
}

func (h *Home) Ensure() error {
	exists, err := h.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("home directory does not exist - try running wirec init")
	}
	return nil
}

// Init lays out a fresh home directory with a default config file. A home
// directory that already has a config file is left untouched.
func (h *Home) Init() error {
	if _, err := os.Stat(h.ConfigPath()); err == nil {
		return errors.New("home directory is already initialized")
	}
	if err := os.MkdirAll(h.DBPath(), 0700); err != nil {
		return errors.Wrap(err, "error creating database directory")
	}
	return WriteDefaultConfigFile(h.ConfigPath())
}

// ReadConfig reads the home directory's config file, falling back to
// DefaultConfig when the home directory was never initialized.
func (h *Home) ReadConfig() (*Config, error) {
	exists, err := h.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		cfg := DefaultConfig
		return &cfg, nil
	}
	return ReadConfigFile(h.ConfigPath())
}
