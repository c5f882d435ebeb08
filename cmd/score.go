/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/astrasync/risk"
)

// CmdScore scores an entry from JSON files without a database.
var CmdScore = newScoreCommand()

func newScoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "Score a daily entry offline",
		ArgsUsage: " ",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "profile",
				Usage: "path to a profile JSON object (age, height, weight)",
			},
			&cli.StringFlag{
				Name:  "entry",
				Usage: "path to the entry JSON object, or - for stdin",
			},
			&cli.StringFlag{
				Name:  "history",
				Usage: "path to a JSON array of past entries, newest first",
			},
			&cli.BoolFlag{
				Name:  "explain",
				Usage: "also print thresholds, baseline and fusion weights",
			},
		}, engineFlags()...),
		Action: score,
	}
}

type explainedResult struct {
	Result     risk.Result       `json:"result"`
	Thresholds risk.ThresholdSet `json:"thresholds"`
	Baseline   risk.Baseline     `json:"baseline"`
	Fired      []string          `json:"fired_rules"`
	Deviations []risk.Deviation  `json:"deviations"`
	Weights    risk.Weights      `json:"weights"`
	Score      float64           `json:"fused_score"`
}

func score(_ context.Context, cmd *cli.Command) error {
	if cmd.String("entry") == "" {
		return errEntryRequired
	}

	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	entry, err := readJSONObject(cmd.String("entry"))
	if err != nil {
		return fmt.Errorf("failed to read entry: %w", err)
	}

	profile := map[string]any{}
	if path := cmd.String("profile"); path != "" {
		if profile, err = readJSONObject(path); err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
	}

	var history []risk.Entry
	if path := cmd.String("history"); path != "" {
		if history, err = readJSONEntries(path); err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
	}

	p := risk.ProfileFromMap(profile)

	res := engine.Score(p, risk.Entry(entry), history)

	if !cmd.Bool("explain") {
		return writeIndentedJSON(outputWriter(cmd), res)
	}

	bd := engine.Evaluate(p, risk.Entry(entry), history)

	return writeIndentedJSON(outputWriter(cmd), explainedResult{
		Result:     res,
		Thresholds: bd.Thresholds,
		Baseline:   bd.Baseline,
		Fired:      bd.Standard.Fired,
		Deviations: bd.Personal.Deviations,
		Weights:    bd.Fusion.Weights,
		Score:      bd.Fusion.Score,
	})
}

func outputWriter(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}

	return os.Stdout
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

func readJSONObject(path string) (map[string]any, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %w", errNotAJSONObject, err)
	}

	if obj == nil {
		return nil, errNotAJSONObject
	}

	return obj, nil
}

func readJSONEntries(path string) ([]risk.Entry, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var entries []risk.Entry
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", errNotAJSONArray, err)
	}

	return entries, nil
}
