package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/dvhook/internal/app"
	"github.com/maxbolgarin/dvhook/internal/config"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	envFile      = kingpin.Flag("env-file", "path to a file with local environment overrides, .env next to the executable by default").Short('e').String()
	useEventFile = kingpin.Flag("use-event-file", "fill absent fields from GITHUB_EVENT_PATH").Bool()
	dryRun       = kingpin.Flag("dry-run", "build and print the payload without calling the webhook").Bool()
	verbose      = kingpin.Flag("verbose", "enable debug logs").Short('v').Bool()
)

func main() {
	kingpin.Version(Version)
	kingpin.Parse()
	os.Exit(run())
}

func run() int {
	logze.Init(logze.C().WithConsole().WithLevel(lang.If(*verbose, logze.LevelDebug, logze.LevelInfo)))

	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()))
	defer ctx.Shutdown()

	cfg, err := config.Load(*envFile)
	if err != nil {
		return app.Fail(os.Stderr, err)
	}

	if *useEventFile {
		cfg.Event.UseEventFile = true
	}

	dispatcher, err := app.New(cfg, app.WithDryRun(*dryRun))
	if err != nil {
		return app.Fail(os.Stderr, erro.Wrap(err, "new dispatcher"))
	}

	return dispatcher.Run(ctx)
}
