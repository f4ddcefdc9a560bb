package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/dannyswat/htmlsemdiff"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Markdown bool `cli:"name=md desc='inputs are Markdown'"`
	Minify   bool `cli:"name=minify desc='minify inputs before diffing'"`
	NFC      bool `cli:"name=nfc desc='compare words in Unicode NFC'"`
	Term     bool `cli:"name=term desc='write text with coloured changes instead of HTML'"`
	Color    bool `cli:"name=color desc='colour -term output'"`
	MaxCells int  `cli:"name=maxCells desc='fail when the alignment table exceeds this many cells'"`
	Verbose  bool `cli:"name=v desc='log diff statistics to stderr'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "htmlsemdiff").
		WithSynopsis("htmlsemdiff [opts] old new").
		WithDescription("htmlsemdiff marks the words removed from old and added in new, keeping the markup of new. Use - to read one input from stdin. Exits 1 when the inputs differ.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func (cfg *MainConfig) diffOpts() []htmlsemdiff.Option {
	opts := []htmlsemdiff.Option{
		htmlsemdiff.WithLogger(newLogger(os.Stderr, cfg.Verbose)),
		htmlsemdiff.WithMaxCells(cfg.MaxCells),
	}
	if cfg.Minify {
		opts = append(opts, htmlsemdiff.WithMinify())
	}
	if cfg.NFC {
		opts = append(opts, htmlsemdiff.WithUnicodeNormalization())
	}
	return opts
}

// useColor colours -term output when asked to, or by default when w is a
// terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
