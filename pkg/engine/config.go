package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ScoringPolicy string

const (
	PolicyFreqRank ScoringPolicy = "freq"
	PolicyRocchio  ScoringPolicy = "rocchio"
)

type IDFScope string

const (
	IDFScopeCorpus   IDFScope = "corpus"
	IDFScopeRelevant IDFScope = "relevant"
)

type FormatFilter string

const (
	// FormatFilterSkip excludes non-HTML results from feedback and from the
	// precision denominator.
	FormatFilterSkip FormatFilter = "skip"
	// FormatFilterCount judges non-HTML results like any other.
	FormatFilterCount FormatFilter = "count"
)

type Config struct {
	Policy       ScoringPolicy `yaml:"policy"`
	IDFScope     IDFScope      `yaml:"idf_scope"`
	FormatFilter FormatFilter  `yaml:"format_filter"`
	Alpha        float64       `yaml:"alpha"`
	Beta         float64       `yaml:"beta"`
	Gamma        float64       `yaml:"gamma"`
	SmoothIDF    bool          `yaml:"smooth_idf"`
	ExpandTerms  int           `yaml:"expand_terms"`
	PageSize     int           `yaml:"page_size"`
	Reorder      bool          `yaml:"reorder"`
	StemExclude  bool          `yaml:"stem_exclude"`
}

func DefaultConfig() Config {
	return Config{
		Policy:       PolicyRocchio,
		IDFScope:     IDFScopeCorpus,
		FormatFilter: FormatFilterSkip,
		Alpha:        0,
		Beta:         0.75,
		Gamma:        0.15,
		SmoothIDF:    true,
		ExpandTerms:  2,
		PageSize:     10,
		Reorder:      true,
		StemExclude:  false,
	}
}

// LoadConfig overlays the YAML file at path onto the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (cfg Config) Validate() error {
	switch cfg.Policy {
	case PolicyFreqRank, PolicyRocchio:
	default:
		return fmt.Errorf("unknown scoring policy: %q", cfg.Policy)
	}
	switch cfg.IDFScope {
	case IDFScopeCorpus, IDFScopeRelevant:
	default:
		return fmt.Errorf("unknown idf scope: %q", cfg.IDFScope)
	}
	switch cfg.FormatFilter {
	case FormatFilterSkip, FormatFilterCount:
	default:
		return fmt.Errorf("unknown format filter: %q", cfg.FormatFilter)
	}
	if cfg.ExpandTerms < 1 {
		return fmt.Errorf("expand_terms must be positive: %d", cfg.ExpandTerms)
	}
	if cfg.PageSize < 1 {
		return fmt.Errorf("page_size must be positive: %d", cfg.PageSize)
	}
	return nil
}
