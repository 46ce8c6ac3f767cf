package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Source
	flagDir      string
	flagInclude  string
	flagExclude  string
	flagMaxDepth int

	// Ordering and grouping
	flagSort    string
	flagGroupBy string

	// Extraction
	flagSnippetLength int
	flagNoSnippets    bool

	// Rendering
	flagTitle  string
	flagSimple bool
	flagQuiet  bool

	// Traversal
	flagHidden   bool
	flagNoIgnore bool

	// Output
	flagOutputFile string
	flagClipboard  bool
	flagPDFFile    string

	// Web
	flagTraverseLinks bool
	flagLinkDepth     int

	// Tokens
	flagTokens         bool
	flagTokenizerType  string
	flagTokenizerModel string
	flagTokenizerFile  string
	flagThreads        int

	flagInteractive bool
)

// version is set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "doctoc [DIRECTORY|URL|GIT_URL]",
	Short: "doctoc generates a table-of-contents document for a directory of documentation files.",
	Long: `doctoc scans a documentation tree (or a remote site, or a git repository),
extracts each file's title and a short content excerpt, and renders a single
markdown index grouped by directory, by file type, or not at all.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := newStatusPrinter(os.Stderr, viper.GetBool("quiet"))

		dir := viper.GetString("dir")
		if len(args) == 1 {
			dir = args[0]
		}
		if viper.GetBool("interactive") {
			picked, err := pickRootInteractive(viper.GetBool("hidden"))
			if err != nil {
				return err
			}
			if picked == "" {
				return nil // aborted in the picker
			}
			dir = picked
		}

		cfg := buildConfig(dir)
		if err := cfg.Validate(); err != nil {
			return err
		}

		types, err := loadDocTypes()
		if err != nil {
			status.Warnf("%v", err)
		}

		// Resolve the source into an ordered entry list and the root
		// that entry paths are relative to.
		var entries []FileEntry
		root := cfg.Dir
		switch {
		case isWebURL(cfg.Dir):
			entries, err = fetchWebEntries(cfg.Dir, cfg, status)
			if err != nil {
				return err
			}
		case isGitURL(cfg.Dir):
			tempDir, cloneErr := cloneGitRepo(cfg.Dir, status)
			if cloneErr != nil {
				return cloneErr
			}
			defer func() {
				status.Infof("Cleaning up %s", tempDir)
				_ = os.RemoveAll(tempDir)
			}()
			root = tempDir
			scanCfg := cfg
			scanCfg.Dir = tempDir
			entries, err = enumerateFiles(scanCfg, status)
			if err != nil {
				return err
			}
		default:
			status.Infof("Scanning %s", cfg.Dir)
			entries, err = enumerateFiles(cfg, status)
			if err != nil {
				return err
			}
		}

		if cfg.CountTokens {
			tk, err := newTokenizer(cfg, status)
			if err != nil {
				return err
			}
			defer tk.Close()
			countEntryTokens(entries, tk, cfg, status)
		}

		groups, err := aggregate(entries, root, cfg)
		if err != nil {
			return err
		}

		document := renderDocument(groups, root, cfg, types, time.Now())

		switch {
		case cfg.PDFFile != "":
			if err := writePDF(document, cfg.PDFFile); err != nil {
				return err
			}
			status.Donef("PDF saved to %s", cfg.PDFFile)
		case cfg.OutputFile != "":
			if err := os.WriteFile(cfg.OutputFile, []byte(document), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", cfg.OutputFile, err)
			}
			status.Donef("Output saved to %s", cfg.OutputFile)
		case cfg.Clipboard:
			if err := clipboard.WriteAll(document); err != nil {
				return fmt.Errorf("writing to clipboard: %w", err)
			}
			status.Donef("Output copied to clipboard")
		default:
			fmt.Fprint(cmd.OutOrStdout(), document)
		}

		status.Donef("Indexed %d files", len(entries))
		return nil
	},
}

// buildConfig snapshots the resolved option values (defaults < config
// file < env < flags, courtesy of viper binding) into the immutable
// Config the pipeline runs on.
func buildConfig(dir string) Config {
	return Config{
		Dir:      dir,
		Include:  parsePatterns(viper.GetString("include")),
		Exclude:  parsePatterns(viper.GetString("exclude")),
		MaxDepth: viper.GetInt("max_depth"),

		Sort:    viper.GetString("sort"),
		GroupBy: viper.GetString("group_by"),

		SnippetLength: viper.GetInt("snippet_length"),
		NoSnippets:    viper.GetBool("no_snippets"),

		Title:  viper.GetString("title"),
		Simple: viper.GetBool("simple"),
		Quiet:  viper.GetBool("quiet"),

		ShowHidden: viper.GetBool("hidden"),
		NoIgnore:   viper.GetBool("no_ignore"),

		OutputFile: viper.GetString("file"),
		Clipboard:  viper.GetBool("clipboard"),
		PDFFile:    viper.GetString("pdf"),

		TraverseLinks: viper.GetBool("traverse_links"),
		LinkDepth:     viper.GetInt("link_depth"),

		CountTokens:    viper.GetBool("tokens"),
		TokenizerType:  viper.GetString("tokenizer"),
		TokenizerModel: viper.GetString("model"),
		TokenizerFile:  viper.GetString("tokenizer_file"),
		Threads:        viper.GetInt("threads"),
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()

	// Source
	flags.StringVarP(&flagDir, "dir", "d", defaultDir, "Directory to scan")
	flags.StringVarP(&flagInclude, "include", "i", "", "Patterns to include (comma-separated; path substring or basename glob)")
	flags.StringVarP(&flagExclude, "exclude", "e", "", "Patterns to exclude (comma-separated; exclude wins over include)")
	flags.IntVar(&flagMaxDepth, "max-depth", 0, "Maximum directory depth to traverse (0 for no limit)")

	// Ordering and grouping
	flags.StringVar(&flagSort, "sort", SortName, "Sort order: name, date, or size")
	flags.StringVarP(&flagGroupBy, "group-by", "g", GroupDirectory, "Grouping: directory, type, or none")

	// Extraction
	flags.IntVar(&flagSnippetLength, "snippet-length", defaultSnippetLength, "Maximum snippet length in characters")
	flags.BoolVar(&flagNoSnippets, "no-snippets", false, "Skip snippet extraction (heading-only pass)")

	// Rendering
	flags.StringVarP(&flagTitle, "title", "t", defaultTitle, "Document title")
	flags.BoolVar(&flagSimple, "simple", false, "Minimal linked-title list output")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress messages")

	// Traversal
	flags.BoolVarP(&flagHidden, "hidden", "H", false, "Include hidden files and directories")
	flags.BoolVar(&flagNoIgnore, "no-ignore", false, "Don't respect the root .gitignore")

	// Output
	flags.StringVarP(&flagOutputFile, "file", "f", "", "Save output to specified file")
	flags.BoolVarP(&flagClipboard, "clipboard", "c", false, "Copy output to clipboard")
	flags.StringVar(&flagPDFFile, "pdf", "", "Save output as PDF")

	// Web
	flags.BoolVar(&flagTraverseLinks, "traverse-links", false, "Traverse links when indexing a URL")
	flags.IntVar(&flagLinkDepth, "link-depth", 1, "Maximum depth to traverse links")

	// Tokens
	flags.BoolVar(&flagTokens, "tokens", false, "Add per-file token counts to full-mode metadata")
	flags.StringVar(&flagTokenizerType, "tokenizer", "tiktoken", "Tokenizer to use: tiktoken or huggingface")
	flags.StringVar(&flagTokenizerModel, "model", "", "Model name for the tokenizer (e.g. gpt-4o, gpt2)")
	flags.StringVar(&flagTokenizerFile, "tokenizer-file", "", "Path to a local tokenizer file")
	flags.IntVar(&flagThreads, "threads", 0, "Worker count for token counting (0 for auto)")

	flags.BoolVar(&flagInteractive, "interactive", false, "Pick the scan root with a fuzzy finder")

	for flagName, key := range map[string]string{
		"dir":            "dir",
		"include":        "include",
		"exclude":        "exclude",
		"max-depth":      "max_depth",
		"sort":           "sort",
		"group-by":       "group_by",
		"snippet-length": "snippet_length",
		"no-snippets":    "no_snippets",
		"title":          "title",
		"simple":         "simple",
		"quiet":          "quiet",
		"hidden":         "hidden",
		"no-ignore":      "no_ignore",
		"file":           "file",
		"clipboard":      "clipboard",
		"pdf":            "pdf",
		"traverse-links": "traverse_links",
		"link-depth":     "link_depth",
		"tokens":         "tokens",
		"tokenizer":      "tokenizer",
		"model":          "model",
		"tokenizer-file": "tokenizer_file",
		"threads":        "threads",
		"interactive":    "interactive",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flagName))
	}
}

// initConfig reads the config file and matching DOCTOC_* env vars.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "doctoc"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("DOCTOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
