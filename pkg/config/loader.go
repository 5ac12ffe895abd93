package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
)

const EnvPrefix = "DGVITA"

// LoadConfig loads a configuration file into the given struct.
// The path param specifies a custom path to the configuration file
// or to a directory with config.yaml.
// Reads and puts environment variables with the prefix DGVITA_.
// Params from the config should be in uppercase separated with _.
// A missing config file is not an error when no path is given,
// defaults and env are used then.
// Values already set in config are kept unless the file or env has them.
func LoadConfig(config any, path string) error {
	opts := []fig.Option{fig.UseEnv(EnvPrefix)}
	switch {
	case path == "":
		dirs := []string{".", "configs", "../../configs"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".dgvita"))
		}
		opts = append(opts, fig.Dirs(dirs...))
	case isDir(path):
		opts = append(opts, fig.Dirs(path))
	default:
		if _, err := os.Stat(path); err != nil {
			return err
		}
		opts = append(opts, fig.File(filepath.Base(path)), fig.Dirs(filepath.Dir(path)))
	}
	err := fig.Load(config, opts...)
	if errors.Is(err, fig.ErrFileNotFound) && path == "" {
		return LoadConfigEnv(config)
	}
	return err
}

func LoadConfigEnv(config any) error {
	return fig.Load(config, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
}

// NewConfig loads and validates the default configuration.
func NewConfig(path string) (*Config, error) {
	conf := Default()
	if err := LoadConfig(&conf, path); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
