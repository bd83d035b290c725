// Package command implements the riichihand command line interface.
package command

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/lonng/riichihand/internal/config"
	"github.com/lonng/riichihand/internal/errutil"
	"github.com/lonng/riichihand/internal/hooks"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/text/message"
)

var logger = log.WithField("component", "command")

// runner carries what every command needs once the global flags are parsed.
type runner struct {
	out     io.Writer
	cfg     *config.Config
	printer *message.Printer
	profile *os.File
}

func NewApp(out io.Writer) *cli.App {
	r := &runner{out: out, cfg: config.Default()}

	app := cli.NewApp()

	// base application info
	app.Name = "riichihand"
	app.Usage = "riichi mahjong scoring and hand rendering"
	app.Version = "0.1.0"
	app.Writer = out

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: config.DefaultPath,
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
		cli.StringFlag{
			Name:  "cpuprofile",
			Usage: "write a cpu profile to `FILE`",
		},
	}

	app.Before = r.setup
	app.After = r.teardown
	app.Commands = []cli.Command{
		r.pointsCommand(),
		r.tableCommand(),
		r.parseCommand(),
		r.renderCommand(),
	}
	return app
}

func (r *runner) setup(c *cli.Context) error {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return exitError(err)
	}
	r.cfg = cfg
	r.printer = message.NewPrinter(cfg.Language())

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if cfg.Core.Debug || c.GlobalBool("debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewHook())
	}

	if path := c.GlobalString("cpuprofile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return exitError(errutil.Mark(err, errutil.ErrIO))
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return exitError(errutil.Mark(err, errutil.ErrIO))
		}
		r.profile = f
		logger.Debugf("CPU profile started at %s", time.Now().Format(time.RFC3339))
	}
	return nil
}

func (r *runner) teardown(c *cli.Context) error {
	if r.profile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := r.profile.Close()
	r.profile = nil
	return exitError(errutil.Mark(err, errutil.ErrIO))
}

// action converts errors into exit errors carrying the code of their kind.
func action(fn func(c *cli.Context) error) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		return exitError(fn(c))
	}
}

func exitError(err error) error {
	if err == nil {
		return nil
	}
	return cli.NewExitError(err.Error(), errutil.Code(err))
}

// wantJSON reports whether the command should print JSON.
func (r *runner) wantJSON(c *cli.Context) bool {
	return c.Bool("json") || r.cfg.Output.JSON
}

func (r *runner) printf(format string, args ...interface{}) {
	r.fprintf(r.out, format, args...)
}

// fprintf formats numbers for the output locale.
func (r *runner) fprintf(w io.Writer, format string, args ...interface{}) {
	if r.printer == nil {
		fmt.Fprintf(w, format, args...)
		return
	}
	r.printer.Fprintf(w, format, args...)
}
