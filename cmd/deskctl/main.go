package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

var configPath = flag.String("config", "config.yaml", "path to the yaml config file")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&stageCmd{}, "ingestion")
	commander.Register(&syncCmd{}, "ingestion")
	commander.Register(&historyCmd{}, "ingestion")
	commander.Register(&twrrCmd{}, "performance")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
