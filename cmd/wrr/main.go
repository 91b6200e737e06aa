// SPDX-License-Identifier: MIT
// Command wrr runs Weighted Round Robin allocations from instance documents,
// generates random instances, and replays the reference scenarios.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

const iniFilename = "wrr.ini"

// Config is the top-level configuration shared by every sub-command.
var Config = new(struct {
	Log LogConfig `group:"Logging" namespace:"log" env-namespace:"WRR_LOG"`
})

func main() {
	var parser = flags.NewParser(Config, flags.Default)

	parser.LongDescription = `wrr divides indivisible objects among players with unequal rights
using Weighted Round Robin: each round, the player with the largest
right/(taken+y) takes their most valued remaining object.

See --help pages of each sub-command for documentation and usage examples.
Optionally configure wrr with a '` + iniFilename + `' file in the current working directory,
or with '~/.config/fairdiv/` + iniFilename + `'. Use the 'print-config' sub-command to inspect
the tool's current configuration.
`

	AddPrintConfigCmd(parser, iniFilename, os.Stdout)
	Must(addCmdAllocate(parser.Command), "could not add allocate subcommand")
	Must(addCmdGenerate(parser.Command), "could not add generate subcommand")
	Must(addCmdDemo(parser.Command), "could not add demo subcommand")

	MustParseConfig(parser, iniFilename)
}
