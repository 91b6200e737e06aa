// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/fairdiv/instance"
	"github.com/katalvlaran/fairdiv/wrr"
)

// report is the structured output of the json and yaml formats.
type report struct {
	Run       string       `json:"run" yaml:"run"`
	Y         float64      `json:"y" yaml:"y"`
	Records   []wrr.Record `json:"records" yaml:"records"`
	Bundles   [][]int      `json:"bundles" yaml:"bundles"`
	Utilities []float64    `json:"utilities" yaml:"utilities"`
}

func newReport(runID string, in *instance.Instance, records []wrr.Record) report {
	if records == nil {
		records = []wrr.Record{}
	}
	return report{
		Run:       runID,
		Y:         in.Y,
		Records:   records,
		Bundles:   wrr.Bundles(records, in.Players()),
		Utilities: wrr.Utilities(records, in.Players()),
	}
}

// writeRecords renders |records| to |out| in |format|.
func writeRecords(out io.Writer, format, runID string, in *instance.Instance, records []wrr.Record) error {
	switch format {
	case "lines", "":
		for _, r := range records {
			if _, err := fmt.Fprintln(out, r.String()); err != nil {
				return errors.Wrap(err, "writing record")
			}
		}
	case "table":
		var rows = make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				fmt.Sprintf("%d", r.Round),
				fmt.Sprintf("%d", r.Player),
				fmt.Sprintf("%d", r.Object),
				fmt.Sprintf("%g", r.Value),
			})
		}
		return renderTable(out, []string{"Round", "Player", "Object", "Value"}, rows)
	case "json":
		var enc = json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(newReport(runID, in, records)), "encoding json")
	case "yaml":
		b, err := yaml.Marshal(newReport(runID, in, records))
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = out.Write(b)
		return errors.Wrap(err, "writing yaml")
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return nil
}

// writeStats gathers |reg| and renders one row per metric series.
func writeStats(out io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}

	var rows [][]string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			rows = append(rows, []string{mf.GetName(), labelString(m.GetLabel()), metricValue(mf.GetType(), m)})
		}
	}
	return renderTable(out, []string{"Metric", "Labels", "Value"}, rows)
}

// renderTable writes |rows| under |header| as a bordered text table.
func renderTable(out io.Writer, header []string, rows [][]string) error {
	var table = tablewriter.NewWriter(out)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return errors.Wrap(err, "appending table row")
		}
	}
	return errors.Wrap(table.Render(), "rendering table")
}

func labelString(pairs []*dto.LabelPair) string {
	var parts = make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, lp.GetName()+"="+lp.GetValue())
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func metricValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		var h = m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%g", h.GetSampleCount(), h.GetSampleSum())
	default:
		return t.String()
	}
}
