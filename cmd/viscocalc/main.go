// viscocalc is the terminal front end to the viscosity computation
// service: the same operations as the viewer, scriptable, with PNG and
// XLSX export for the temperature table.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ramorimdias/viscobat/src/compute"
	"github.com/ramorimdias/viscobat/src/config"
)

// Context is handed to every command's Run.
type Context struct {
	Client *compute.Client
	Cfg    *config.Config
}

var cli struct {
	Config   string        `help:"Path to config.yaml." type:"path"`
	Service  string        `help:"Computation service base URL (overrides config)." env:"VISCOBAT_SERVICE_URL"`
	Timeout  time.Duration `help:"HTTP timeout for service calls (0 disables)." default:"0"`
	LogLevel string        `help:"Log level: debug, info, warn or error."`

	VI    VICmd    `cmd:"" name:"vi" help:"Viscosity index from two (viscosity, temperature) measurements."`
	Temp  TempCmd  `cmd:"" help:"Viscosity/temperature extrapolation table, with optional PNG/XLSX export."`
	Mix   MixCmd   `cmd:"" help:"Viscosity of a blend of components."`
	Mix2  Mix2Cmd  `cmd:"" help:"Proportions of two bases reaching a target viscosity."`
	Solve SolveCmd `cmd:"" help:"Optimize component fractions under constraints."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("viscocalc"),
		kong.Description("Lubricant viscosity calculator backed by a remote computation service."),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
	if cli.Service != "" {
		cfg.Service.URL = cli.Service
	}
	if cli.Timeout > 0 {
		cfg.Service.TimeoutSeconds = int(cli.Timeout / time.Second)
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	compute.SetLogLevel(cfg.LogLevel)

	err = ctx.Run(&Context{
		Client: compute.NewClient(cfg.Service.URL, cfg.Timeout()),
		Cfg:    cfg,
	})
	ctx.FatalIfErrorf(err)
}
