// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dompart-core/partition"
	"dompart/internal/quality"
)

// FileName is the default config file looked up in the working directory.
const FileName = "dompart.yaml"

// Config holds all tool configuration.
type Config struct {
	Partition PartitionConfig `yaml:"partition"`
	Quality   QualityConfig   `yaml:"quality"`
	Batch     BatchConfig     `yaml:"batch"`
	Output    OutputConfig    `yaml:"output"`
}

// PartitionConfig mirrors the core thresholds.
type PartitionConfig struct {
	MinNovelFraction     float64 `yaml:"min_novel_fraction"`
	MinReferenceCoverage float64 `yaml:"min_reference_coverage"`
	MinConfidence        float64 `yaml:"min_confidence"`
	MinSegment           int     `yaml:"min_segment"`
	GateWholeHits        bool    `yaml:"gate_whole_hits"`
}

// QualityConfig holds the routing-label coverage cutoffs.
type QualityConfig struct {
	GoodCoverage float64 `yaml:"good_coverage"`
	LowCoverage  float64 `yaml:"low_coverage"`
}

// BatchConfig holds batch-run settings.
type BatchConfig struct {
	Workers int    `yaml:"workers"` // 0 = all CPUs
	Resume  bool   `yaml:"resume"`
	Store   string `yaml:"store"` // bolt database path; empty disables the store
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Format     string `yaml:"format"` // "json" | "text"
	Rejections bool   `yaml:"rejections"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	core := partition.DefaultConfig()
	labels := quality.DefaultThresholds()
	return &Config{
		Partition: PartitionConfig{
			MinNovelFraction:     core.MinNovelFraction,
			MinReferenceCoverage: core.MinRefCoverage,
			MinConfidence:        core.MinConfidence,
			MinSegment:           core.MinSegment,
		},
		Quality: QualityConfig{
			GoodCoverage: labels.Good,
			LowCoverage:  labels.Low,
		},
		Batch: BatchConfig{
			Workers: 0,
			Resume:  false,
			Store:   "",
		},
		Output: OutputConfig{
			Format:     "json",
			Rejections: false,
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir loads dir/dompart.yaml if present, defaults otherwise.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	if c.Output.Format != "json" && c.Output.Format != "text" {
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"partition.min_novel_fraction", c.Partition.MinNovelFraction},
		{"partition.min_reference_coverage", c.Partition.MinReferenceCoverage},
		{"partition.min_confidence", c.Partition.MinConfidence},
		{"quality.good_coverage", c.Quality.GoodCoverage},
		{"quality.low_coverage", c.Quality.LowCoverage},
	} {
		if v.val < 0 || v.val > 1 {
			return fmt.Errorf("%s = %v outside [0,1]", v.name, v.val)
		}
	}
	return nil
}

// CoreConfig translates the file settings into the core's Config.
func (c *Config) CoreConfig() partition.Config {
	return partition.Config{
		MinNovelFraction: c.Partition.MinNovelFraction,
		MinRefCoverage:   c.Partition.MinReferenceCoverage,
		MinConfidence:    c.Partition.MinConfidence,
		MinSegment:       c.Partition.MinSegment,
		GateWholeHits:    c.Partition.GateWholeHits,
	}
}

// QualityThresholds translates the file settings into policy thresholds.
func (c *Config) QualityThresholds() quality.Thresholds {
	return quality.Thresholds{Good: c.Quality.GoodCoverage, Low: c.Quality.LowCoverage}
}
