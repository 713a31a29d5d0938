package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"

	"github.com/sigfmt/sigfmt"
	"github.com/sigfmt/sigfmt/format"
	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
)

// PrinterFlags select the dialect, options and locale of a Printer.
type PrinterFlags struct {
	Dialect string `help:"Output dialect." default:"csharp" enum:"csharp,vb" short:"d" env:"SIGFMT_DIALECT"`
	Options string `help:"Comma-separated options (${options})." default:"keywords,namespaces,decimal" short:"o" env:"SIGFMT_OPTIONS"`
	Locale  string `help:"Locale for decimal numbers." default:"und" env:"SIGFMT_LOCALE"`
}

func (c *PrinterFlags) config() (sigfmt.Config, error) {
	d, ok := format.LookupDialect(c.Dialect)
	if !ok {
		return sigfmt.Config{}, sigfmt.Errorf(sigfmt.CodeInvalidArgument, "unknown dialect %q", c.Dialect)
	}
	opts, err := sigfmt.ParseOptions(c.Options)
	if err != nil {
		return sigfmt.Config{}, sigfmt.Errorf(sigfmt.CodeInvalidArgument, "%v", err)
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return sigfmt.Config{}, sigfmt.Errorf(sigfmt.CodeInvalidArgument, "invalid locale %q: %v", c.Locale, err)
	}
	return sigfmt.Config{Dialect: d, Options: opts, Locale: tag}, nil
}

type RenderCmd struct {
	PrinterFlags

	Files  []string `arg:"" type:"existingfile" help:"Signature JSON documents."`
	Format string   `help:"Chroma formatter (terminal256, html, noop, ...)." default:"terminal256" short:"f" env:"SIGFMT_FORMAT"`
	Style  string   `help:"Chroma style." default:"monokai" short:"s" env:"SIGFMT_STYLE"`
	Watch  bool     `help:"Re-render files when they change." short:"w"`
}

func (c *RenderCmd) Run(g *Globals) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	printer := sigfmt.New(cfg).WithLogger(g.Logger)

	var failed error
	for _, path := range c.Files {
		if err := c.renderFile(g.Stdout, printer, path); err != nil {
			g.Logger.Error("render failed", slog.String("path", path), slog.Any("error", err))
			failed = err
		}
	}
	if !c.Watch {
		return failed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.watch(ctx, g, func(path string) error {
		return c.renderFile(g.Stdout, printer, path)
	})
}

func (c *RenderCmd) renderFile(w io.Writer, printer *sigfmt.Printer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	jobs, err := sigfmt.DecodeDocuments(data, sig.NewDomain())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, j := range jobs {
		rec := sink.NewRecorder()
		if err := j.Run(printer, rec); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := sink.Highlight(w, rec.Tokens(), c.Format, c.Style); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// watch re-renders a file whenever it is written or recreated, until ctx is
// done. Directories are watched instead of files so editors that replace
// files on save keep being tracked.
func (c *RenderCmd) watch(ctx context.Context, g *Globals, render func(path string) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	files := make(map[string]string, len(c.Files))
	dirs := make(map[string]bool)
	for _, f := range c.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		files[abs] = f
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	g.Logger.Info("watching for changes", slog.Int("files", len(files)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			path, tracked := files[abs]
			if !tracked {
				continue
			}
			g.Logger.Debug("file changed", slog.String("path", path), slog.String("op", ev.Op.String()))
			if err := render(path); err != nil {
				g.Logger.Error("render failed", slog.String("path", path), slog.Any("error", err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			g.Logger.Error("watch error", slog.Any("error", err))
		}
	}
}
