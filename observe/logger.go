// SPDX-License-Identifier: MIT
package observe

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/fairdiv/wrr"
)

// Logger writes allocation events to a logrus Entry:
//   - Portion at Trace level
//   - Chose at Debug level
//   - Pick at Info level
type Logger struct {
	entry *log.Entry
}

var _ wrr.Observer = (*Logger)(nil)

// NewLogger returns a Logger writing through entry. A nil entry logs to the
// logrus standard logger.
func NewLogger(entry *log.Entry) *Logger {
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}

	return &Logger{entry: entry}
}

func (l *Logger) Portion(round, player int, portion float64) {
	l.entry.WithFields(log.Fields{
		"round":   round,
		"player":  player,
		"portion": portion,
	}).Trace("portion")
}

func (l *Logger) Chose(round, player int, portion float64) {
	l.entry.WithFields(log.Fields{
		"round":   round,
		"player":  player,
		"portion": portion,
	}).Debug("player chooses")
}

func (l *Logger) Pick(rec wrr.Record) {
	l.entry.WithFields(log.Fields{
		"round":  rec.Round,
		"player": rec.Player,
		"object": rec.Object,
		"value":  rec.Value,
	}).Info("object allocated")
}
