// Package logrus adapts a logrus.Entry to collcache.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/collcache"
)

type Logger struct{ E *logrus.Entry }

var _ collcache.Logger = Logger{}

func (l Logger) Debug(msg string, f collcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}

func (l Logger) Info(msg string, f collcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}

func (l Logger) Warn(msg string, f collcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}

func (l Logger) Error(msg string, f collcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
