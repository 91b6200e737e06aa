// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/katalvlaran/fairdiv/instance"
	"github.com/katalvlaran/fairdiv/wrr"
)

type cmdDemo struct {
	Format string `long:"format" short:"f" default:"lines" choice:"lines" choice:"table" description:"Output format"`
}

// demoScenario is a named instance replayed by "wrr demo".
type demoScenario struct {
	Name string
	In   instance.Instance
}

func uniformRows(players, objects int, v float64) [][]float64 {
	var rows = make([][]float64, players)
	for p := range rows {
		rows[p] = make([]float64, objects)
		for o := range rows[p] {
			rows[p][o] = v
		}
	}
	return rows
}

var demoScenarios = []demoScenario{
	{
		Name: "Different objects with different rights",
		In: instance.Instance{
			Rights: []float64{1, 2, 4},
			Y:      0.5,
			Valuations: [][]float64{
				{11, 11, 22, 33, 44},
				{11, 22, 44, 55, 66},
				{11, 33, 22, 11, 66},
			},
		},
	},
	{
		Name: "Same objects with equal rights",
		In:   instance.Instance{Rights: []float64{1, 1, 1}, Y: 1, Valuations: uniformRows(3, 3, 10)},
	},
	{
		Name: "Same objects with different rights",
		In:   instance.Instance{Rights: []float64{1, 2, 3}, Y: 0.5, Valuations: uniformRows(3, 5, 10)},
	},
	{
		Name: "Single player",
		In:   instance.Instance{Rights: []float64{5}, Y: 1, Valuations: [][]float64{{3, 9, 1, 7}}},
	},
}

func addCmdDemo(cmd *flags.Command) error {
	_, err := cmd.AddCommand("demo", "Replay the built-in reference scenarios", `
Run each built-in scenario and print its allocation, one record per round.
`, &cmdDemo{})
	return err
}

func (cmd *cmdDemo) Execute([]string) error {
	if err := InitLog(Config.Log); err != nil {
		return err
	}
	return cmd.run(os.Stdout)
}

func (cmd *cmdDemo) run(out io.Writer) error {
	for i, sc := range demoScenarios {
		var in = sc.In.Clone()

		records, err := wrr.Allocate(in.Rights, in.Valuations, in.Y)
		if err != nil {
			return errors.WithMessagef(err, "scenario %q", sc.Name)
		}
		fmt.Fprintf(out, "%d. %s (rights=%v, y=%g)\n", i+1, sc.Name, in.Rights, in.Y)
		if err = writeRecords(out, cmd.Format, "", in, records); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}
