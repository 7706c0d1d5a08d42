package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/cognicore/keyphrase/pkg/keyphrase"
	"github.com/cognicore/keyphrase/pkg/keyphrase/config"
	"github.com/cognicore/keyphrase/pkg/keyphrase/idf"
	"github.com/cognicore/keyphrase/pkg/keyphrase/stoplist"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store/sqlite"
	"github.com/cognicore/keyphrase/pkg/keyphrase/tfidf"
)

func main() {
	var (
		dbPath       = flag.String("db", "", "Dictionary database (default $KEYPHRASE_DB)")
		configPath   = flag.String("config", "", "Extraction config file (optional)")
		stoplistPath = flag.String("stoplist", "", "Stoplist file (optional)")
		envFile      = flag.String("env", "", "Env file (default .env if present)")
		filePath     = flag.String("file", "", "Read the document from a file")
		text         = flag.String("text", "", "Document text (default: stdin)")
		topK         = flag.Int("topk", -1, "Override the number of keywords, 0 = unbounded")
		lazy         = flag.Bool("lazy", false, "Look up IDF terms on demand instead of loading the dictionary")
		cacheSize    = flag.Int("cache-size", idf.DefaultCacheSize, "Term cache size with -lazy")
		explain      = flag.Bool("explain", false, "Print the TF-IDF and TextRank candidates")
	)
	flag.Parse()

	loader := config.Loader{
		ConfigPath:   *configPath,
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

	doc, err := readDocument(*filePath, *text, os.Stdin)
	if err != nil {
		log.Fatal("Failed to read document:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := sqlite.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	stored, err := st.Stoplist(ctx)
	if err != nil {
		log.Fatal("Failed to load stored stoplist:", err)
	}
	for _, tok := range stored {
		components.Stoplist.Add(tok, stoplist.Reason{Configured: true})
	}

	var (
		weights tfidf.IDF
		opts    keyphrase.Options
	)
	if *lazy {
		cached, err := idf.NewCached(ctx, st, *cacheSize)
		if err != nil {
			log.Fatal("Failed to create term cache:", err)
		}
		weights = cached
		opts = components.OptionsFor(nil)
	} else {
		dict, err := idf.Load(ctx, st)
		if err != nil {
			log.Fatal("Failed to load dictionary:", err)
		}
		weights = dict
		opts = components.OptionsFor(dict)
	}
	if *topK >= 0 {
		opts.TopK = *topK
	}

	extractor := keyphrase.NewExtractor(weights, opts, components.Tokenizer.Tokenize)
	res := extractor.ExtractDetailed(components.Tokenizer.Tokenize(doc))

	if *explain {
		fmt.Println("TF-IDF candidates:")
		for _, s := range res.TFIDF {
			fmt.Printf("  %-24s %.6f\n", s.Token, s.Score)
		}
		if opts.UseTextRank {
			fmt.Println("TextRank candidates:")
			for _, s := range res.TextRank {
				fmt.Printf("  %-24s %.6f\n", s.Token, s.Score)
			}
		}
		fmt.Println("Keywords:")
	}
	for _, kw := range res.Keywords {
		fmt.Println(kw)
	}
}

// readDocument picks the document from -text, then -file, then stdin
func readDocument(path, text string, stdin io.Reader) (string, error) {
	if text != "" {
		return text, nil
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
