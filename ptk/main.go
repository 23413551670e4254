package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tracker/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Complete is a no-op
// outside of a completion request.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"add":    {},
		"sub":    {},
		"reset":  {},
		"report": {},
		"tx":     {},
		"fmt":    {},
		"topic":  {},
	},
	Flags: map[string]complete.Predictor{
		"ledger-dir": predict.Dirs("*"),
		"rules-file": predict.Files("*.yaml"),
	},
}

func main() {
	completion.Complete("ptk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
