/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

const logDate string = `2006-01-02T15:04:05.000-07:00`

// Log is the shared logger used by every component in the server.
var Log = logrus.New()

func initLogger(cfg *Config) {
	level := logrus.InfoLevel
	if cfg.verbose {
		level = logrus.DebugLevel
	}

	Log = &logrus.Logger{
		Out: os.Stdout,
		Formatter: &logrus.TextFormatter{
			TimestampFormat: logDate,
			FullTimestamp:   true,
			DisableSorting:  true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}
}
