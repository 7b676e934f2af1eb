// Package config loads the shared configuration file of the Lattice
// tooling. Both binaries read the same file; each consumes its own
// top-level block. A missing file is not an error, every field has a
// default that matches the interpreter repository layout.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file both tools look for when --config is not given.
const DefaultPath = "lattice-tools.yaml"

// Config is the root of the shared configuration file.
type Config struct {
	Docs  Docs  `yaml:"docs"`
	Bench Bench `yaml:"bench"`
}

// Docs configures the documentation site build.
type Docs struct {
	SourceDir   string   `yaml:"source_dir"`
	Patterns    []string `yaml:"patterns,omitempty"`
	Output      string   `yaml:"output"`
	IntroFile   string   `yaml:"intro_file,omitempty"`   // optional markdown rendered above the first category
	MetricsFile string   `yaml:"metrics_file,omitempty"` // optional Prometheus textfile dump
	Site        Site     `yaml:"site"`
}

// Site carries the branding strings rendered into the page chrome.
type Site struct {
	Name          string `yaml:"name"`
	Title         string `yaml:"title"`
	Description   string `yaml:"description,omitempty"`
	HomeURL       string `yaml:"home_url,omitempty"`
	PlaygroundURL string `yaml:"playground_url,omitempty"`
	RepoURL       string `yaml:"repo_url,omitempty"`
}

// Bench configures benchmark runs against a local interpreter checkout.
type Bench struct {
	RepoDir       string     `yaml:"repo_dir"`
	Interpreter   string     `yaml:"interpreter"`    // binary path relative to repo_dir
	Dir           string     `yaml:"dir"`            // workload directory relative to repo_dir
	Runs          int        `yaml:"runs"`           // timed runs per mode
	BuildCommand  string     `yaml:"build_command"`  // run through the shell before measuring
	VersionHeader string     `yaml:"version_header"` // header file carrying the version define
	Database      string     `yaml:"database"`       // sqlite file for recorded results
	Pull          bool       `yaml:"pull"`           // git pull before building
	MetricsFile   string     `yaml:"metrics_file,omitempty"`
	NATS          NATS       `yaml:"nats,omitempty"`
	Benchmarks    []Workload `yaml:"benchmarks,omitempty"` // empty means the built-in suite
}

// NATS configures optional publication of recorded results.
type NATS struct {
	URL     string `yaml:"url,omitempty"` // empty disables publishing
	Subject string `yaml:"subject,omitempty"`
}

// Workload names one benchmark program and its recorded label.
type Workload struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Docs: Docs{
			SourceDir: "src",
			Patterns:  []string{"*.c"},
			Output:    filepath.Join("lattice-lang.org", "docs.html"),
			Site: Site{
				Name:          "Lattice",
				Title:         "Documentation — Lattice",
				Description:   "Built-in functions, type methods and standard library reference for the Lattice programming language.",
				HomeURL:       "/",
				PlaygroundURL: "playground.html",
				RepoURL:       "https://github.com/lattice-lang/lattice",
			},
		},
		Bench: Bench{
			RepoDir:       ".",
			Interpreter:   "./clat",
			Dir:           "bench",
			Runs:          3,
			BuildCommand:  "make clean && make",
			VersionHeader: filepath.Join("include", "lattice.h"),
			Database:      filepath.Join("bench", "results.db"),
			NATS:          NATS{Subject: "lattice.bench.recorded"},
		},
	}
}

// Load reads the configuration at path on top of the defaults. Environment
// variables referenced in the file are expanded after an optional .env is
// loaded, so secrets like NATS credentials stay out of the file itself.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded environment from .env")
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize repairs values an edited file may have blanked out.
func (c *Config) normalize() {
	d := Default()
	if c.Docs.SourceDir == "" {
		c.Docs.SourceDir = d.Docs.SourceDir
	}
	if c.Docs.Output == "" {
		c.Docs.Output = d.Docs.Output
	}
	if c.Docs.Site.Name == "" {
		c.Docs.Site.Name = d.Docs.Site.Name
	}
	if c.Docs.Site.Title == "" {
		c.Docs.Site.Title = d.Docs.Site.Title
	}
	if c.Bench.RepoDir == "" {
		c.Bench.RepoDir = d.Bench.RepoDir
	}
	if c.Bench.Interpreter == "" {
		c.Bench.Interpreter = d.Bench.Interpreter
	}
	if c.Bench.Dir == "" {
		c.Bench.Dir = d.Bench.Dir
	}
	if c.Bench.Runs <= 0 {
		c.Bench.Runs = d.Bench.Runs
	}
	if c.Bench.VersionHeader == "" {
		c.Bench.VersionHeader = d.Bench.VersionHeader
	}
	if c.Bench.Database == "" {
		c.Bench.Database = d.Bench.Database
	}
	if c.Bench.NATS.Subject == "" {
		c.Bench.NATS.Subject = d.Bench.NATS.Subject
	}
}
