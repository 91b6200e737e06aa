package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fairdiv/instance"
	"github.com/katalvlaran/fairdiv/wrr"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func scenarioOne() *instance.Instance {
	var in = demoScenarios[0].In.Clone()
	return in
}

func newAllocateCmd(format string) *cmdAllocate {
	return &cmdAllocate{Format: format, Floor: "zero"}
}

func TestAllocate_Lines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newAllocateCmd("lines").run(scenarioOne(), &buf))

	assert.Equal(t, strings.Join([]string{
		"Player 2 takes item 4 with value 66",
		"Player 1 takes item 3 with value 55",
		"Player 2 takes item 1 with value 33",
		"Player 0 takes item 2 with value 22",
		"Player 2 takes item 0 with value 11",
	}, "\n")+"\n", buf.String())
}

func TestAllocate_YOverride(t *testing.T) {
	var cmd = newAllocateCmd("lines")
	cmd.Y = "2"

	var in = &instance.Instance{Rights: []float64{1, 2, 3}, Y: 0.5, Valuations: uniformRows(3, 3, 10)}
	var buf bytes.Buffer
	require.NoError(t, cmd.run(in, &buf))

	assert.Equal(t, 2.0, in.Y)
	assert.Equal(t, "Player 2 takes item 0 with value 10\n"+
		"Player 1 takes item 1 with value 10\n"+
		"Player 2 takes item 2 with value 10\n", buf.String())
}

func TestAllocate_BadFlags(t *testing.T) {
	var cmd = newAllocateCmd("lines")
	cmd.Y = "half"
	assert.Error(t, cmd.run(scenarioOne(), io.Discard))

	cmd = newAllocateCmd("lines")
	cmd.Floor = "minus-one"
	assert.Error(t, cmd.run(scenarioOne(), io.Discard))
}

// TestAllocate_PartialOutput prints completed rounds before reporting the error.
func TestAllocate_PartialOutput(t *testing.T) {
	var cmd = newAllocateCmd("lines")
	cmd.Floor = "neg-inf"

	var in = &instance.Instance{Rights: []float64{1, 1}, Y: -1, Valuations: [][]float64{{3, 5, 4}, {1, 1, 1}}}
	var buf bytes.Buffer
	var err = cmd.run(in, &buf)

	require.Error(t, err)
	assert.ErrorIs(t, err, wrr.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "after 1 of 3 rounds")
	assert.Equal(t, "Player 0 takes item 1 with value 5\n", buf.String())
}

func TestAllocate_SaturateAndStrictY(t *testing.T) {
	var in = &instance.Instance{Rights: []float64{1, 2}, Y: 0, Valuations: uniformRows(2, 3, 1)}

	var cmd = newAllocateCmd("lines")
	cmd.Saturate = true
	var buf bytes.Buffer
	require.NoError(t, cmd.run(in, &buf))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))

	cmd = newAllocateCmd("lines")
	cmd.StrictY = true
	assert.ErrorIs(t, cmd.run(in, io.Discard), wrr.ErrInvalidInput)
}

func TestAllocate_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newAllocateCmd("json").run(scenarioOne(), &buf))

	var rep report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.NotEmpty(t, rep.Run)
	assert.Equal(t, 0.5, rep.Y)
	assert.Len(t, rep.Records, 5)
	assert.Equal(t, [][]int{{2}, {3}, {4, 1, 0}}, rep.Bundles)
	assert.Equal(t, []float64{22, 55, 110}, rep.Utilities)
}

func TestAllocate_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newAllocateCmd("yaml").run(scenarioOne(), &buf))
	assert.Contains(t, buf.String(), "records:")
	assert.Contains(t, buf.String(), "utilities:")
}

func TestAllocate_TableWithStats(t *testing.T) {
	var cmd = newAllocateCmd("table")
	cmd.Stats = true

	var buf bytes.Buffer
	require.NoError(t, cmd.run(scenarioOne(), &buf))

	var out = buf.String()
	assert.Contains(t, out, "66")
	assert.Contains(t, out, "fairdiv_wrr_rounds_total")
	assert.Contains(t, out, "fairdiv_wrr_picks_total")
	assert.Contains(t, out, "player=2")
	assert.Contains(t, out, "count=5")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, []string{"Round", "Player"}, [][]string{{"0", "2"}, {"1", "1"}}))

	var out = buf.String()
	assert.Contains(t, strings.ToUpper(out), "ROUND")
	assert.Contains(t, strings.ToUpper(out), "PLAYER")
	assert.Regexp(t, `0\s*\S\s*2`, out)
	assert.Regexp(t, `1\s*\S\s*1`, out)

	buf.Reset()
	require.NoError(t, renderTable(&buf, []string{"Metric"}, nil))
	assert.Contains(t, strings.ToUpper(buf.String()), "METRIC")
}

func TestWriteRecords_Table(t *testing.T) {
	var records = []wrr.Record{{Round: 0, Player: 2, Object: 4, Value: 66}, {Round: 1, Player: 1, Object: 3, Value: 55}}

	var buf bytes.Buffer
	require.NoError(t, writeRecords(&buf, "table", "r", scenarioOne(), records))

	var out = buf.String()
	assert.Contains(t, strings.ToUpper(out), "VALUE")
	assert.Contains(t, out, "66")
	assert.Contains(t, out, "55")
	assert.Less(t, strings.Index(out, "66"), strings.Index(out, "55"), "rows keep pick order")
}

func TestWriteRecords_UnknownFormat(t *testing.T) {
	assert.Error(t, writeRecords(io.Discard, "xml", "", scenarioOne(), nil))
}

func TestReport_EmptyRecords(t *testing.T) {
	var rep = newReport("r", scenarioOne(), nil)
	assert.NotNil(t, rep.Records)
	assert.Equal(t, [][]int{{}, {}, {}}, rep.Bundles)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&cmdDemo{Format: "lines"}).run(&buf))

	var out = buf.String()
	assert.Contains(t, out, "1. Different objects with different rights (rights=[1 2 4], y=0.5)")
	assert.Contains(t, out, "Player 2 takes item 4 with value 66")
	assert.Contains(t, out, "4. Single player")
	assert.Contains(t, out, "Player 0 takes item 1 with value 9")

	// Scenarios are cloned, never mutated.
	assert.Equal(t, 11.0, demoScenarios[0].In.Valuations[0][0])
}

func TestGenerate(t *testing.T) {
	var cmd = &cmdGenerate{Players: 2, Objects: 4, MaxRight: 3, MaxValue: 9, Y: 1, Seed: 5}

	var buf bytes.Buffer
	require.NoError(t, cmd.run(&buf))

	got, err := instance.Decode(&buf)
	require.NoError(t, err)
	want, err := instance.Generate(instance.GenConfig{Players: 2, Objects: 4, MaxRight: 3, MaxValue: 9, Y: 1, Seed: 5})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	cmd.Players = 0
	assert.ErrorIs(t, cmd.run(io.Discard), instance.ErrBadGenConfig)
}

func TestReadInstance(t *testing.T) {
	var path = t.TempDir() + "/in.yaml"
	require.NoError(t, os.WriteFile(path, []byte("rights: [1]\ny: 1\nvaluations: [[2, 3]]\n"), 0o644))

	in, err := readInstance(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 3}}, in.Valuations)

	_, err = readInstance(path + ".missing")
	assert.Error(t, err)
}
