package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/keyphrase/internal/corpus"
	"github.com/cognicore/keyphrase/pkg/keyphrase/config"
	"github.com/cognicore/keyphrase/pkg/keyphrase/idf"
	"github.com/cognicore/keyphrase/pkg/keyphrase/ingest"
	"github.com/cognicore/keyphrase/pkg/keyphrase/stoplist"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store/sqlite"
)

func main() {
	var (
		inputPath    = flag.String("input", "", "Input JSONL corpus (required)")
		dbPath       = flag.String("db", "", "Database path (default $KEYPHRASE_DB)")
		stoplistPath = flag.String("stoplist", "", "Stoplist file (optional)")
		envFile      = flag.String("env", "", "Env file (default .env if present)")
		digitRate    = flag.Float64("digit-rate", idf.DefaultDigitRate, "IDF scale for digit tokens, 0 disables")
		alphaRate    = flag.Float64("alpha-rate", 0, "IDF scale for single letters A-Z, 0 disables")
		epsilon      = flag.Float64("epsilon", 0, "Negative IDF correction factor, 0 disables")
		suggestStops = flag.Bool("suggest-stops", false, "Add high-DF low-IDF terms to the stored stoplist")
		dfPercent    = flag.Float64("stop-df", stoplist.DefaultThresholds().DFPercent, "DF percentage above which a term is a stop candidate")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("--input required")
	}

	loader := config.Loader{
		StoplistPath: *stoplistPath,
		EnvFile:      *envFile,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if *dbPath == "" {
		*dbPath = components.DBPath
	}
	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	builder := idf.NewBuilder()
	builder.DigitRate = *digitRate
	builder.AlphaRate = *alphaRate
	builder.Epsilon = *epsilon

	tokenizer := dictTokenizer(builder)
	n, err := corpus.Each(*inputPath, func(item corpus.Item) error {
		builder.Add(tokenizer.Tokenize(item.Text()))
		if builder.Docs()%1000 == 0 {
			log.Printf("Counted %d documents", builder.Docs())
		}
		return nil
	})
	if err != nil {
		log.Fatal("Failed to read corpus:", err)
	}
	log.Printf("Loaded %d documents from %s", n, *inputPath)

	dict, err := builder.Build()
	if err != nil {
		log.Fatal("Failed to build dictionary:", err)
	}

	st, err := sqlite.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	if err := idf.Save(ctx, st, dict); err != nil {
		log.Fatal("Failed to save dictionary:", err)
	}

	meta := dict.Meta()
	log.Printf("Dictionary %s: %d terms, %d docs, avg idf %.4f, avg tdf %.4f",
		meta.Version, dict.Len(), meta.Docs, meta.AvgIDF, meta.AvgTDF)

	stops := components.Stoplist
	if *suggestStops {
		thresholds := stoplist.DefaultThresholds()
		thresholds.DFPercent = *dfPercent

		candidates := stops.SuggestCandidates(stoplist.StatsFromDict(dict), thresholds)
		for _, c := range candidates {
			log.Printf("Stop candidate %q: df %.1f%%, idf %.4f", c.Token, c.Reason.DFPercent, c.Reason.IDF)
		}
		stops.Apply(candidates)
	}

	if stops.Len() > 0 {
		if err := st.UpsertStoplist(ctx, stops.All()); err != nil {
			log.Fatal("Failed to store stoplist:", err)
		}
		log.Printf("Stored %d stopwords", stops.Len())
	}
}

// dictTokenizer keeps single digits and letters when the builder adjusts
// their IDF, so those tokens reach the dictionary
func dictTokenizer(b *idf.Builder) *ingest.Tokenizer {
	var opts []ingest.Option
	if b.DigitRate > 0 || b.AlphaRate > 0 {
		opts = append(opts, ingest.WithMinRunes(1))
	}
	if b.DigitRate > 0 {
		opts = append(opts, ingest.WithNumeric(true))
	}
	return ingest.NewTokenizer(opts...)
}
