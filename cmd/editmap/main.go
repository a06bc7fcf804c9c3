// Package main is the entry point for the editmap CLI: it applies a
// JSON edit list to a document, maps positions through it, or inverts
// it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dshills/editmap/internal/config"
	"github.com/dshills/editmap/internal/document"
	"github.com/dshills/editmap/internal/patch"
	"github.com/dshills/editmap/internal/textedit"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	editsPath  string
	configPath string
	mapPos     string
	invert     bool
	newRanges  bool
	watch      bool
	output     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, docPath := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.watch {
		cfg.Watch = true
	}

	if !cfg.Watch {
		if err := runOnce(opts, cfg, docPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runWatch(opts, cfg, docPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runOnce loads the document and edit list and executes one command.
func runOnce(opts options, cfg config.Config, docPath string) error {
	content, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	editsJSON, err := os.ReadFile(opts.editsPath)
	if err != nil {
		return fmt.Errorf("reading edits: %w", err)
	}

	edits, err := patch.ParseEdits(editsJSON)
	if err != nil {
		return fmt.Errorf("parsing edits: %w", err)
	}

	var seq textedit.Sequence
	if cfg.Validate {
		if seq, err = textedit.NewSequenceStrict(edits); err != nil {
			return err
		}
	} else {
		seq = textedit.NewSequence(edits)
	}

	doc := document.NewText(string(content))
	out, err := execute(opts, cfg, seq, doc)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// execute picks the command from the flags: map a position, invert the
// sequence, report new ranges, or synthesize the edited text.
func execute(opts options, cfg config.Config, seq textedit.Sequence, doc *document.Text) (string, error) {
	switch {
	case opts.mapPos != "":
		p, err := parsePosition(opts.mapPos)
		if err != nil {
			return "", err
		}
		mapped := seq.MapPosition(p)
		if cfg.Output == "json" {
			out, err := patch.MarshalMapped(mapped)
			return string(out), err
		}
		return mapped.String(), nil

	case opts.invert:
		reversed := seq.Reverse(doc)
		if cfg.Output == "json" {
			out, err := patch.MarshalEdits(reversed.Edits())
			return string(out), err
		}
		var sb strings.Builder
		for i, e := range reversed.Edits() {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(e.String())
		}
		return sb.String(), nil

	case opts.newRanges:
		ranges := seq.NewRanges()
		if cfg.Output == "json" {
			out, err := patch.MarshalRanges(ranges)
			return string(out), err
		}
		var sb strings.Builder
		for i, r := range ranges {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(r.String())
		}
		return sb.String(), nil

	default:
		return seq.Apply(doc), nil
	}
}

// runWatch re-runs the command whenever the edits file changes.
func runWatch(opts options, cfg config.Config, docPath string) error {
	commonlog.Configure(cfg.LogLevel, nil)
	log := commonlog.GetLogger("editmap")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(opts.editsPath); err != nil {
		return fmt.Errorf("watching %s: %w", opts.editsPath, err)
	}

	if err := runOnce(opts, cfg, docPath); err != nil {
		log.Errorf("%v", err)
	}

	log.Infof("watching %s", opts.editsPath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			log.Infof("edits changed, re-running")
			if err := runOnce(opts, cfg, docPath); err != nil {
				log.Errorf("%v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %v", err)
		}
	}
}

// parsePosition parses "line:column" with 1-based components.
func parsePosition(s string) (textedit.Position, error) {
	line, column, ok := strings.Cut(s, ":")
	if !ok {
		return textedit.Position{}, errors.New("position must be line:column")
	}
	l, err := strconv.Atoi(line)
	if err != nil || l < 1 {
		return textedit.Position{}, fmt.Errorf("invalid line %q", line)
	}
	c, err := strconv.Atoi(column)
	if err != nil || c < 1 {
		return textedit.Position{}, fmt.Errorf("invalid column %q", column)
	}
	return textedit.Position{Line: l, Column: c}, nil
}

func parseFlags() (options, string) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.editsPath, "edits", "", "Path to JSON edit list (required)")
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.mapPos, "map", "", "Map an original position (line:column) through the edits")
	flag.BoolVar(&opts.invert, "invert", false, "Print the inverse edit list")
	flag.BoolVar(&opts.newRanges, "new-ranges", false, "Print the post-edit range of each edit")
	flag.BoolVar(&opts.watch, "watch", false, "Re-run when the edits file changes")
	flag.StringVar(&opts.output, "o", "", "Output format: text or json")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: editmap -edits edits.json [flags] document\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("editmap %s (%s)\n", version, commit)
		os.Exit(0)
	}
	if opts.editsPath == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	return opts, flag.Arg(0)
}
