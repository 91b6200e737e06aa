// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/fairdiv/instance"
	"github.com/katalvlaran/fairdiv/observe"
	"github.com/katalvlaran/fairdiv/wrr"
)

type cmdAllocate struct {
	Input    string `long:"input" short:"i" env:"WRR_INPUT" default:"-" description:"Instance document (YAML or JSON). '-' reads stdin"`
	Format   string `long:"format" short:"f" env:"WRR_FORMAT" default:"lines" choice:"lines" choice:"table" choice:"json" choice:"yaml" description:"Output format"`
	Y        string `long:"y" env:"WRR_Y" description:"Override the instance's y"`
	Floor    string `long:"floor" env:"WRR_FLOOR" default:"zero" choice:"zero" choice:"neg-inf" description:"Initial best-portion threshold"`
	Saturate bool   `long:"saturate" env:"WRR_SATURATE" description:"Treat a zero denominator as an infinite portion instead of failing"`
	StrictY  bool   `long:"strict-y" env:"WRR_STRICT_Y" description:"Reject y <= 0 before allocating"`
	Stats    bool   `long:"stats" description:"Print allocation metrics after the records"`
}

func addCmdAllocate(cmd *flags.Command) error {
	_, err := cmd.AddCommand("allocate", "Allocate objects of an instance document", `
Read an instance document and print the allocation, one record per round.

An instance document lists rights, y and the players × objects valuation matrix:

>    rights: [1, 2, 4]
>    y: 0.5
>    valuations:
>      - [11, 11, 22, 33, 44]
>      - [11, 22, 44, 55, 66]
>      - [11, 33, 22, 11, 66]

Results can be output in a variety of --format options:
lines: Prints "Player P takes item O with value V", one per round.
table: Prints records as a table.
json:  Prints a report with records, bundles and utilities as JSON.
yaml:  Prints the same report as YAML.

If the allocation aborts, records of the completed rounds are printed
before the error is reported.
`, &cmdAllocate{})
	return err
}

func (cmd *cmdAllocate) Execute([]string) error {
	if err := InitLog(Config.Log); err != nil {
		return err
	}

	in, err := readInstance(cmd.Input)
	if err != nil {
		return err
	}
	return cmd.run(in, os.Stdout)
}

// options maps flags onto wrr options, applying any --y override to |in|.
func (cmd *cmdAllocate) options(in *instance.Instance) ([]wrr.Option, error) {
	if cmd.Y != "" {
		y, err := strconv.ParseFloat(cmd.Y, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing --y %q", cmd.Y)
		}
		in.Y = y
	}

	floor, err := wrr.ParseFloor(cmd.Floor)
	if err != nil {
		return nil, errors.WithMessage(err, "--floor")
	}

	var opts = []wrr.Option{wrr.WithFloor(floor)}
	if cmd.Saturate {
		opts = append(opts, wrr.WithSaturation())
	}
	if cmd.StrictY {
		opts = append(opts, wrr.WithStrictY())
	}
	return opts, nil
}

// run allocates |in| and writes the result to |out|.
func (cmd *cmdAllocate) run(in *instance.Instance, out io.Writer) error {
	opts, err := cmd.options(in)
	if err != nil {
		return err
	}

	var runID = uuid.New().String()
	var entry = log.WithFields(log.Fields{
		"run":     runID,
		"players": in.Players(),
		"objects": in.Objects(),
		"y":       in.Y,
	})
	var reg = prometheus.NewRegistry()
	var obs = observe.Tee{observe.NewLogger(entry), observe.NewMetrics(reg)}

	entry.Debug("starting allocation")
	records, allocErr := wrr.Allocate(in.Rights, in.Valuations, in.Y, append(opts, wrr.WithObserver(obs))...)

	if err = writeRecords(out, cmd.Format, runID, in, records); err != nil {
		return err
	}
	if cmd.Stats {
		if err = writeStats(out, reg); err != nil {
			return err
		}
	}

	if allocErr != nil {
		entry.WithFields(log.Fields{"err": allocErr, "completed": len(records)}).Warn("allocation aborted")
		return errors.WithMessagef(allocErr, "allocation aborted after %d of %d rounds", len(records), in.Objects())
	}
	entry.WithField("rounds", len(records)).Debug("allocation complete")
	return nil
}

// readInstance decodes the document at |path|, or stdin for "-".
func readInstance(path string) (*instance.Instance, error) {
	if path == "-" || path == "" {
		in, err := instance.Decode(os.Stdin)
		return in, errors.WithMessage(err, "reading stdin")
	}

	var f, err = os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening instance")
	}
	defer f.Close()

	in, err := instance.Decode(f)
	return in, errors.WithMessagef(err, "reading %s", path)
}
