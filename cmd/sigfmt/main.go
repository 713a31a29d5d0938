package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/sigfmt/sigfmt"
	"github.com/sigfmt/sigfmt/format"
)

// Globals are shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" enum:"debug,info,warn,error" env:"SIGFMT_LOG_LEVEL"`
	EnvFile  string `help:"Load defaults from this .env file." default:".env" name:"env-file"`

	Stdout io.Writer    `kong:"-"`
	Logger *slog.Logger `kong:"-"`
}

type CLI struct {
	Globals

	Render   RenderCmd   `cmd:"" help:"Render type signature JSON documents."`
	Keywords KeywordsCmd `cmd:"" help:"List the reserved words of a dialect."`
	Number   NumberCmd   `cmd:"" help:"Format an integer the way array bounds and tokens are shown."`
	Serve    ServeCmd    `cmd:"" help:"Serve formatting over HTTP."`
	Version  VersionCmd  `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	_, err := io.WriteString(g.Stdout, Version()+"\n")
	return err
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// loadEnv reads SIGFMT_* defaults before flags are parsed. Variables already
// set in the environment win. A missing default .env is not an error.
func loadEnv(args []string) error {
	path, explicit := ".env", false
	for i, a := range args {
		if a == "--env-file" && i+1 < len(args) {
			path, explicit = args[i+1], true
		} else if v, ok := strings.CutPrefix(a, "--env-file="); ok {
			path, explicit = v, true
		}
	}
	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func exitCode(err error) int {
	return sigfmt.AsError(err).Code.ExitCode()
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("sigfmt"),
		kong.Description("Render .NET type signatures as C# or Visual Basic."),
		kong.UsageOnError(),
		kong.Vars{"options": strings.Join(format.OptionNames(), ", ")},
	}
}

func main() {
	envErr := loadEnv(os.Args[1:])

	cli := &CLI{}
	parser := kong.Must(cli, kongOptions()...)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cli.Globals.Stdout = os.Stdout
	cli.Globals.Logger = newLogger(os.Stderr, cli.LogLevel)
	if envErr != nil {
		cli.Globals.Logger.Warn("ignoring env file", slog.Any("error", envErr))
	}

	if err := ctx.Run(&cli.Globals); err != nil {
		cli.Globals.Logger.Error("command failed", slog.String("command", ctx.Command()), slog.Any("error", err))
		os.Exit(exitCode(err))
	}
}
