package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Extract represents the extraction configuration file. Unset keys keep
// the library defaults.
type Extract struct {
	TopK          *int     `yaml:"topk"`
	UseTextRank   *bool    `yaml:"use_textrank"`
	PreserveOrder *bool    `yaml:"preserve_order"`
	Span          *int     `yaml:"span"`
	Iterations    *int     `yaml:"iterations"`
	SelfLoops     *bool    `yaml:"self_loops"`
	Selector      string   `yaml:"selector"` // "top" (default) or "idf"
	MinIDFRatio   *float64 `yaml:"min_idf_ratio"`
}

// LoadExtract loads the extraction config from a YAML file
func LoadExtract(path string) (*Extract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ex Extract
	if err := yaml.Unmarshal(data, &ex); err != nil {
		return nil, err
	}

	return &ex, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
