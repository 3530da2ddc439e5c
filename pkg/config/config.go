package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/henderiw/rangeindex/pkg/interval"
	"github.com/henderiw/rangeindex/pkg/iptable"
	"github.com/henderiw/rangeindex/pkg/rangetable"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/labels"
)

// Config describes the ranges served by the rangeindex command.
type Config struct {
	// Closure is "left" for [from, to) ranges or "right" for (from, to].
	Closure string `yaml:"closure" env:"RANGEINDEX_CLOSURE"`
	// ParallelThreshold enables concurrent subtree construction, 0 disables it.
	ParallelThreshold int `yaml:"parallel_threshold" env:"RANGEINDEX_PARALLEL_THRESHOLD"`

	Ranges   []RangeEntry `yaml:"ranges"`
	IPRanges []IPEntry    `yaml:"ip_ranges"`
}

// RangeEntry binds a "from-to" integer range to a value and labels.
type RangeEntry struct {
	Range  string            `yaml:"range"`
	Value  string            `yaml:"value"`
	Labels map[string]string `yaml:"labels"`
}

// IPEntry binds an IPv4 range, prefix or address to a value.
type IPEntry struct {
	Range string `yaml:"range"`
	Value string `yaml:"value"`
}

func DefaultConfig() *Config {
	return &Config{
		Closure: interval.LeftClosed.String(),
	}
}

// LoadConfig overrides configuration in the following order (from less to most priority)
// 1 - Default configuration
// 2 - Contents of the provided file reader (nillable)
// 3 - Environment variables
func LoadConfig(file io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if file != nil {
		cfgBuf, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("reading YAML configuration: %w", err)
		}
		if err := yaml.Unmarshal(cfgBuf, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML configuration: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading env vars: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile loads the configuration from path. An empty path only
// applies defaults and environment variables.
func LoadConfigFile(path string) (*Config, error) {
	if path == "" {
		return LoadConfig(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(bytes.NewReader(data))
}

func (c *Config) Validate() error {
	if _, err := interval.ParseClosure(c.Closure); err != nil {
		return err
	}
	if c.ParallelThreshold < 0 {
		return fmt.Errorf("parallel_threshold must not be negative, got: %d", c.ParallelThreshold)
	}
	return nil
}

func (c *Config) GetClosure() interval.Closure {
	// Validate already rejected unknown closures
	closure, _ := interval.ParseClosure(c.Closure)
	return closure
}

func (c *Config) options(opts []interval.Option) []interval.Option {
	return append([]interval.Option{interval.WithParallelThreshold(c.ParallelThreshold)}, opts...)
}

// BuildIndex builds an index mapping the configured ranges to their values.
func (c *Config) BuildIndex(opts ...interval.Option) (*interval.Index[string], error) {
	ranges := make([]*interval.Range[string], 0, len(c.Ranges))

	var errm error
	for _, e := range c.Ranges {
		r, err := interval.ParseRange(e.Range, e.Value)
		if err != nil {
			errm = errors.Join(errm, err)
			continue
		}
		ranges = append(ranges, r)
	}
	if errm != nil {
		return nil, errm
	}
	return interval.New(ranges, c.GetClosure(), c.options(opts)...)
}

// BuildRangeTable builds a label table from the configured ranges.
func (c *Config) BuildRangeTable(opts ...interval.Option) (rangetable.RangeTable, error) {
	entries := make(map[string]labels.Set, len(c.Ranges))
	for _, e := range c.Ranges {
		if _, ok := entries[e.Range]; ok {
			return nil, fmt.Errorf("range %s is configured more than once: %w", e.Range, interval.ErrIntersectingRange)
		}
		entries[e.Range] = labels.Set(e.Labels)
	}
	return rangetable.New(entries, c.GetClosure(), c.options(opts)...)
}

// BuildIPTable builds an address table from the configured ip ranges.
func (c *Config) BuildIPTable(opts ...interval.Option) (iptable.IPTable[string], error) {
	entries := make(map[string]string, len(c.IPRanges))
	for _, e := range c.IPRanges {
		if _, ok := entries[e.Range]; ok {
			return nil, fmt.Errorf("ip range %s is configured more than once: %w", e.Range, interval.ErrIntersectingRange)
		}
		entries[e.Range] = e.Value
	}
	return iptable.New(entries, c.options(opts)...)
}
