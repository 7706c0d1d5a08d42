package config

import (
	"fmt"
	"log"

	"github.com/cognicore/keyphrase/pkg/keyphrase"
	"github.com/cognicore/keyphrase/pkg/keyphrase/idf"
	"github.com/cognicore/keyphrase/pkg/keyphrase/ingest"
	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/stoplist"
)

// Selector names accepted in the config file
const (
	SelectorTop = "top"
	SelectorIDF = "idf"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	ConfigPath   string
	StoplistPath string
	EnvFile      string
}

// Components holds all loaded configuration components
type Components struct {
	Options     keyphrase.Options
	Stoplist    *stoplist.Manager
	Tokenizer   *ingest.Tokenizer
	Selector    string
	MinIDFRatio float64
	DBPath      string
}

// Load reads the env file, the config file and the stoplist, in that
// order of increasing precedence for env variables over file values
func (l *Loader) Load() (*Components, error) {
	if err := LoadEnv(l.EnvFile); err != nil {
		return nil, err
	}

	ex := &Extract{}
	if l.ConfigPath != "" {
		loaded, err := LoadExtract(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		ex = loaded
	}
	applyEnv(ex)

	comp := &Components{
		Tokenizer:   ingest.NewTokenizer(),
		Selector:    SelectorTop,
		MinIDFRatio: idf.DefaultMinRatio,
		DBPath:      getEnv(EnvDB, ""),
	}
	if err := comp.apply(ex); err != nil {
		return nil, err
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stoplist.NewManager(sl.Terms)
	} else {
		comp.Stoplist = stoplist.NewManager(nil)
	}
	comp.Options.Stopwords = comp.Stoplist.Set()

	return comp, nil
}

func (c *Components) apply(ex *Extract) error {
	opts := keyphrase.DefaultOptions()

	if ex.TopK != nil {
		if *ex.TopK < 0 {
			return fmt.Errorf("topk %d: %w", *ex.TopK, internalerr.ErrInvalidConfig)
		}
		opts.TopK = *ex.TopK
	}
	if ex.Span != nil {
		if *ex.Span < 0 {
			return fmt.Errorf("span %d: %w", *ex.Span, internalerr.ErrInvalidConfig)
		}
		opts.Span = *ex.Span
	}
	if ex.Iterations != nil {
		if *ex.Iterations < 0 {
			return fmt.Errorf("iterations %d: %w", *ex.Iterations, internalerr.ErrInvalidConfig)
		}
		opts.Iterations = *ex.Iterations
	}
	if ex.UseTextRank != nil {
		opts.UseTextRank = *ex.UseTextRank
	}
	if ex.PreserveOrder != nil {
		opts.PreserveOrder = *ex.PreserveOrder
	}
	if ex.SelfLoops != nil {
		opts.SelfLoops = *ex.SelfLoops
	}

	switch ex.Selector {
	case "", SelectorTop:
	case SelectorIDF:
		c.Selector = SelectorIDF
	default:
		return fmt.Errorf("selector %q: %w", ex.Selector, internalerr.ErrInvalidConfig)
	}
	if ex.MinIDFRatio != nil {
		if *ex.MinIDFRatio < 0 {
			return fmt.Errorf("min_idf_ratio %g: %w", *ex.MinIDFRatio, internalerr.ErrInvalidConfig)
		}
		c.MinIDFRatio = *ex.MinIDFRatio
	}

	c.Options = opts
	return nil
}

// OptionsFor returns the extraction options with the configured selector
// bound to d. A nil d (lazy lookups) cannot back the idf selector, so the
// top selector is used instead.
func (c *Components) OptionsFor(d *idf.Dict) keyphrase.Options {
	opts := c.Options
	opts.Stopwords = c.Stoplist.Set()
	if c.Selector == SelectorIDF {
		if d == nil {
			log.Printf("selector %q needs a loaded dictionary, using %q", SelectorIDF, SelectorTop)
			return opts
		}
		opts.Selector = d.Selector(c.MinIDFRatio)
	}
	return opts
}
