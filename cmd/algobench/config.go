package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golobby/cast"
	"gopkg.in/yaml.v3"
)

// config controls the benchmark suite. Zero values fall back to defaults,
// so a config file only needs the fields it wants to change.
type config struct {
	// Sizes are the input lengths to benchmark.
	Sizes []int `yaml:"sizes" toml:"sizes"`

	// Seed feeds the deterministic input generator.
	Seed uint64 `yaml:"seed" toml:"seed" env:"ALGOBENCH_SEED"`

	// Repetitions is how many timed runs each algorithm/size pair gets;
	// the best time is reported.
	Repetitions int `yaml:"repetitions" toml:"repetitions" env:"ALGOBENCH_REPETITIONS"`

	// InsertionCutoff is the largest input size insertion sort runs at.
	InsertionCutoff int `yaml:"insertionCutoff" toml:"insertionCutoff" env:"ALGOBENCH_INSERTION_CUTOFF"`

	// Algorithms restricts the suite to the named algorithms.
	// Empty means all.
	Algorithms []string `yaml:"algorithms" toml:"algorithms"`
}

func defaultConfig() config {
	return config{
		Sizes:           []int{1000, 5000, 10_000, 100_000},
		Seed:            42,
		Repetitions:     3,
		InsertionCutoff: 10_000,
	}
}

// feeder populates a config from one source. Feeders run in order;
// later feeders override earlier ones.
type feeder interface {
	feed(cfg *config) error
}

type yamlFeeder struct {
	path string
}

func (f yamlFeeder) feed(cfg *config) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("failed to read YAML: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return nil
}

type tomlFeeder struct {
	path string
}

func (f tomlFeeder) feed(cfg *config) error {
	if _, err := toml.DecodeFile(f.path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML: %w", err)
	}
	return nil
}

// envFeeder overrides fields carrying an env tag from the environment.
type envFeeder struct{}

func (envFeeder) feed(cfg *config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		envName, exists := t.Field(i).Tag.Lookup("env")
		if !exists {
			continue
		}
		envValue := os.Getenv(envName)
		if envValue == "" {
			continue
		}
		converted, err := cast.FromType(envValue, t.Field(i).Type)
		if err != nil {
			return fmt.Errorf("cannot convert %s to %v: %w", envName, t.Field(i).Type, err)
		}
		v.Field(i).Set(reflect.ValueOf(converted))
	}
	return nil
}

// loadConfig builds the effective config: defaults, then the config file
// (format chosen by extension), then environment overrides.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var feeders []feeder
	if path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			feeders = append(feeders, yamlFeeder{path: path})
		case ".toml":
			feeders = append(feeders, tomlFeeder{path: path})
		default:
			return config{}, fmt.Errorf("%w: %s", errUnsupportedConfigFormat, path)
		}
	}
	feeders = append(feeders, envFeeder{})

	for _, f := range feeders {
		if err := f.feed(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}
