package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer counts tokens for a piece of text. Close releases any
// backend resources.
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

const (
	defaultTiktokenModel = "gpt-4o"
	defaultHFModel       = "gpt2"
)

// --- Tiktoken backend ---

type tiktokenWrapper struct {
	ttk *tiktoken.Tiktoken
}

func (w *tiktokenWrapper) CountTokens(text string) int {
	if w.ttk == nil {
		return 0
	}
	return len(w.ttk.EncodeOrdinary(text))
}

func (w *tiktokenWrapper) Close() {}

// --- HuggingFace (sugarme) backend ---

type hfTokenizerWrapper struct {
	htk    *hf.Tokenizer
	status *statusPrinter
}

func (w *hfTokenizerWrapper) CountTokens(text string) int {
	if w.htk == nil {
		return 0
	}
	en, err := w.htk.EncodeSingle(text)
	if err != nil {
		w.status.Warnf("tokenizer failed to encode text: %v", err)
		return 0
	}
	return len(en.Tokens)
}

func (w *hfTokenizerWrapper) Close() {}

// newTokenizer builds the configured tokenizer backend.
func newTokenizer(cfg Config, status *statusPrinter) (Tokenizer, error) {
	switch strings.ToLower(cfg.TokenizerType) {
	case "tiktoken":
		return loadTiktoken(cfg, status)
	case "huggingface":
		return loadHuggingFace(cfg, status)
	default:
		return nil, fmt.Errorf("unsupported tokenizer type: %s. Use 'tiktoken' or 'huggingface'", cfg.TokenizerType)
	}
}

func loadTiktoken(cfg Config, status *statusPrinter) (Tokenizer, error) {
	model := cfg.TokenizerModel
	if model == "" {
		model = defaultTiktokenModel
	}

	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		status.Warnf("tiktoken model %q not found, falling back to %q: %v", model, defaultTiktokenModel, err)
		tke, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		if err != nil {
			return nil, fmt.Errorf("loading tiktoken encoding for %q: %w", defaultTiktokenModel, err)
		}
	}
	return &tiktokenWrapper{ttk: tke}, nil
}

func loadHuggingFace(cfg Config, status *statusPrinter) (Tokenizer, error) {
	if cfg.TokenizerFile != "" {
		ttk, err := pretrained.FromFile(cfg.TokenizerFile)
		if err != nil {
			return nil, fmt.Errorf("loading tokenizer from file %s: %w", cfg.TokenizerFile, err)
		}
		return &hfTokenizerWrapper{htk: ttk, status: status}, nil
	}

	model := cfg.TokenizerModel
	if model == "" {
		model = defaultHFModel
	}
	status.Infof("Loading HuggingFace tokenizer for model %s (this may download files)", model)

	configFilePath, err := hf.CachedPath(model, "tokenizer.json")
	if err != nil {
		return nil, fmt.Errorf("resolving cache path for model %s: %w", model, err)
	}
	ttk, err := pretrained.FromFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("loading pretrained tokenizer for model %s: %w", model, err)
	}
	return &hfTokenizerWrapper{htk: ttk, status: status}, nil
}

// countEntryTokens runs a worker pool over the entries and fills in
// their token counts. Workers finish in arbitrary order, so results
// carry their original index and the slice is rebuilt in place: the
// enumerator's ordering is a contract the renderer relies on, not an
// accident of the pool.
func countEntryTokens(entries []FileEntry, tk Tokenizer, cfg Config, status *statusPrinter) {
	numWorkers := cfg.Threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	status.Infof("Counting tokens with %d worker(s)", numWorkers)

	type job struct {
		index int
		entry FileEntry
	}
	type result struct {
		index int
		entry FileEntry
	}

	jobs := make(chan job, len(entries))
	results := make(chan result, len(entries))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				entry := j.entry
				content := entry.Content
				if content == nil {
					var err error
					content, err = os.ReadFile(entry.Path)
					if err != nil {
						entry.TokenErr = err
					}
					// Keep the bytes so the extractor reuses them
					// instead of reading the file a second time.
					entry.Content = content
				}
				if entry.TokenErr == nil && len(content) > 0 {
					entry.TokenCount = tk.CountTokens(string(content))
				}
				results <- result{index: j.index, entry: entry}
			}
		}()
	}

	for i, entry := range entries {
		jobs <- job{index: i, entry: entry}
	}
	close(jobs)

	wg.Wait()
	close(results)

	for r := range results {
		entries[r.index] = r.entry
	}
}
