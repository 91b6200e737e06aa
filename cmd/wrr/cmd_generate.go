// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/fairdiv/instance"
)

type cmdGenerate struct {
	Players  int     `long:"players" short:"n" default:"3" description:"Number of players"`
	Objects  int     `long:"objects" short:"m" default:"5" description:"Number of objects"`
	MaxRight int     `long:"max-right" default:"4" description:"Rights are integers drawn from [1, max-right]"`
	MaxValue int     `long:"max-value" default:"100" description:"Valuations are integers drawn from [0, max-value]"`
	Y        float64 `long:"y" default:"0.5" description:"y written into the instance"`
	Seed     int64   `long:"seed" env:"WRR_SEED" default:"0" description:"RNG seed (0 selects a fixed default)"`
	Output   string  `long:"output" short:"o" default:"-" description:"Output path. '-' writes stdout"`
}

func addCmdGenerate(cmd *flags.Command) error {
	_, err := cmd.AddCommand("generate", "Generate a random instance document", `
Generate a random instance document suitable for "wrr allocate".

The same flags always produce the same document. Pipe it straight into an
allocation:

>    wrr generate --players 4 --objects 12 --seed 7 | wrr allocate --format table
`, &cmdGenerate{})
	return err
}

func (cmd *cmdGenerate) Execute([]string) error {
	if err := InitLog(Config.Log); err != nil {
		return err
	}

	if cmd.Output == "-" || cmd.Output == "" {
		return cmd.run(os.Stdout)
	}
	var f, err = os.Create(cmd.Output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err = cmd.run(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing output")
}

func (cmd *cmdGenerate) run(out io.Writer) error {
	var cfg = instance.GenConfig{
		Players:  cmd.Players,
		Objects:  cmd.Objects,
		MaxRight: cmd.MaxRight,
		MaxValue: cmd.MaxValue,
		Y:        cmd.Y,
		Seed:     cmd.Seed,
	}
	in, err := instance.Generate(cfg)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"players": cfg.Players,
		"objects": cfg.Objects,
		"seed":    cfg.Seed,
	}).Debug("generated instance")

	return instance.Encode(out, in)
}
