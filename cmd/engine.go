/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"github.com/urfave/cli/v3"

	"github.com/humaidq/astrasync/risk"
)

// engineFlags returns the flags that tune the scoring engine.
func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "baseline-window",
			Value:   risk.DefaultWindow,
			Sources: cli.EnvVars("BASELINE_WINDOW"),
			Usage:   "number of recent days summarised into the personal baseline",
		},
		&cli.IntFlag{
			Name:    "cold-start-days",
			Value:   int64(risk.DefaultFusionConfig().ColdStartDays),
			Sources: cli.EnvVars("COLD_START_DAYS"),
			Usage:   "history depth below which the standard score dominates",
		},
	}
}

// newEngine builds a scoring engine from the engine flags.
func newEngine(cmd *cli.Command) (*risk.Engine, error) {
	window := cmd.Int("baseline-window")
	coldStart := cmd.Int("cold-start-days")

	if window <= 0 || coldStart <= 0 {
		return nil, errInvalidEngineSetting
	}

	engine := risk.NewEngine()
	engine.Window = int(window)
	engine.Fusion.ColdStartDays = int(coldStart)

	return engine, nil
}
