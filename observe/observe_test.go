package observe

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fairdiv/wrr"
)

var (
	scenarioRights = []float64{1, 2, 4}
	scenarioVals   = [][]float64{
		{11, 11, 22, 33, 44},
		{11, 22, 44, 55, 66},
		{11, 33, 22, 11, 66},
	}
)

// TestLogger_LevelsAndFields runs the reference scenario at Trace level and
// checks the per-level event counts and the fields of each pick.
func TestLogger_LevelsAndFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.TraceLevel)

	records, err := wrr.Allocate(scenarioRights, scenarioVals, 0.5,
		wrr.WithObserver(NewLogger(logger.WithField("run", "t1"))))
	require.NoError(t, err)

	var byLevel = map[log.Level]int{}
	var picks []*log.Entry
	for _, e := range hook.AllEntries() {
		byLevel[e.Level]++
		assert.Equal(t, "t1", e.Data["run"])
		if e.Level == log.InfoLevel {
			picks = append(picks, e)
		}
	}
	assert.Equal(t, 15, byLevel[log.TraceLevel], "3 players × 5 rounds")
	assert.Equal(t, 5, byLevel[log.DebugLevel])
	assert.Equal(t, 5, byLevel[log.InfoLevel])

	require.Len(t, picks, len(records))
	for i, e := range picks {
		assert.Equal(t, "object allocated", e.Message)
		assert.Equal(t, records[i].Round, e.Data["round"])
		assert.Equal(t, records[i].Player, e.Data["player"])
		assert.Equal(t, records[i].Object, e.Data["object"])
		assert.Equal(t, records[i].Value, e.Data["value"])
	}
}

// TestLogger_InfoLevelFiltersTrace verifies the level gate applies.
func TestLogger_InfoLevelFiltersTrace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.InfoLevel)

	_, err := wrr.Allocate(scenarioRights, scenarioVals, 0.5,
		wrr.WithObserver(NewLogger(log.NewEntry(logger))))
	require.NoError(t, err)
	assert.Len(t, hook.AllEntries(), 5)
}

func TestNewLogger_NilEntry(t *testing.T) {
	l := NewLogger(nil)
	require.NotNil(t, l.entry)
	assert.Equal(t, log.StandardLogger(), l.entry.Logger)
}

// TestMetrics_Counts runs the reference scenario and checks every collector.
func TestMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	_, err := wrr.Allocate(scenarioRights, scenarioVals, 0.5, wrr.WithObserver(m))
	require.NoError(t, err)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.roundsTotal))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.portionsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.picksTotal.WithLabelValues("0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.picksTotal.WithLabelValues("1")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.picksTotal.WithLabelValues("2")))
	// The last round is chosen by player 2 with portion 4/2.5.
	assert.InDelta(t, 1.6, testutil.ToFloat64(m.chosenPortion), 1e-12)

	count, err := testutil.GatherAndCount(reg, "fairdiv_wrr_pick_value")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one histogram series")
}

// TestMetrics_DuplicateRegistrationPanics pins promauto's registration contract.
func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}

type countObserver struct{ portion, chose, pick int }

func (c *countObserver) Portion(int, int, float64) { c.portion++ }
func (c *countObserver) Chose(int, int, float64)   { c.chose++ }
func (c *countObserver) Pick(wrr.Record)           { c.pick++ }

// TestTee_FansOut verifies every observer sees every event and nil entries are skipped.
func TestTee_FansOut(t *testing.T) {
	a, b := &countObserver{}, &countObserver{}

	_, err := wrr.Allocate(scenarioRights, scenarioVals, 0.5, wrr.WithObserver(Tee{a, nil, b}))
	require.NoError(t, err)

	for _, c := range []*countObserver{a, b} {
		assert.Equal(t, 15, c.portion)
		assert.Equal(t, 5, c.chose)
		assert.Equal(t, 5, c.pick)
	}
}
