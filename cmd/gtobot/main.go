package main

import (
	rand "math/rand/v2"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/gtobot/internal/policy"
	"github.com/lox/gtobot/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config string `help:"Policy configuration file (HCL)" default:"gtobot.hcl" env:"GTOBOT_CONFIG" type:"path"`
	Seed   int64  `help:"Random seed (0 for time-based)" env:"GTOBOT_SEED"`
	Debug  bool   `help:"Enable debug logging" env:"GTOBOT_DEBUG"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Decide     DecideCmd        `cmd:"" help:"Choose an action for engine decision messages"`
	Simulate   SimulateCmd      `cmd:"" help:"Play the policy against scripted opponents"`
	ShowConfig ConfigCmd        `cmd:"" name:"config" help:"Print the effective policy configuration"`
}

func (g *Globals) logger() *log.Logger {
	level := log.WarnLevel
	if g.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

func (g *Globals) policyConfig() (policy.Config, error) {
	return policy.LoadConfig(g.Config)
}

// rng returns the seeded source and the seed actually used.
func (g *Globals) rng() (*rand.Rand, int64) {
	seed := randutil.Seed(g.Seed)
	return randutil.New(seed), seed
}

func main() {
	// A .env file is optional.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gtobot"),
		kong.Description("Heuristic no-limit hold'em decision policy"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
