// Package config loads cmd/renlex's optional defaults: a .env file for
// environment-driven overrides and a renlex.yaml project file for the
// output format default (and a search-path list that no command reads).
package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Project is the shape of an optional renlex.yaml file.
type Project struct {
	// OutputFormat is either "text" or "json"; empty means "text".
	OutputFormat string `yaml:"outputFormat"`
	// SearchPaths is decoded from the file's searchPaths list. cmd/renlex
	// does not read it: its `lex` subcommand takes exactly one source file
	// and does not scan directories.
	SearchPaths []string `yaml:"searchPaths"`
}

// LoadDotEnv loads environment variables from a .env file, honouring an
// ENV_PATH override. A missing .env file is not an error — it simply
// means there is nothing to override.
func LoadDotEnv(defaultPath string) {
	envPath := defaultPath
	if v := os.Getenv("ENV_PATH"); v != "" {
		envPath = v
	}

	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("no .env file loaded, continuing with process environment", "path", envPath, "error", err)
	}
}

// LoadProject decodes a renlex.yaml project file from r. A missing file is
// the caller's concern (open it and only call LoadProject on success);
// this function just decodes whatever reader it's given.
func LoadProject(r io.Reader) (*Project, error) {
	var p Project
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		if err == io.EOF {
			return &Project{}, nil
		}
		return nil, err
	}
	return &p, nil
}

// LoadProjectFile opens path and decodes it as a Project. A non-existent
// file returns a zero-value Project and no error, since the project file
// is always optional.
func LoadProjectFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Project{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadProject(f)
}
