/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/astrasync/db"
	"github.com/humaidq/astrasync/risk"
)

// HistoryChart renders a metric's history as an HTML line chart, with the
// personal baseline drawn as reference lines when one exists.
func HistoryChart(c flamego.Context, store Store, engine *risk.Engine, opts Options) {
	userID := c.Param("user_id")

	metric := risk.Metric(c.Param("metric"))
	if !risk.IsKnownMetric(string(metric)) {
		writeError(c, http.StatusNotFound, errUnknownMetric)
		return
	}

	logs, err := store.ListDailyLogs(c.Request().Context(), userID, opts.HistoryPageSize)
	if err != nil {
		logger.Error("Failed to load history", "user_id", userID, "error", err)
		writeError(c, http.StatusInternalServerError, errStorage)

		return
	}

	baseline, hasBaseline := risk.BuildBaseline(db.Entries(logs), engine.Window, engine.MinSamples)[metric]

	page, err := renderMetricChart(metric, logs, baseline, hasBaseline)
	if err != nil {
		logger.Error("Failed to render chart", "user_id", userID, "metric", metric, "error", err)
		writeError(c, http.StatusInternalServerError, err)

		return
	}

	c.ResponseWriter().Header().Set("Content-Type", "text/html; charset=utf-8")
	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write(page); err != nil {
		logger.Warn("Failed to write chart", "error", err)
	}
}

// renderMetricChart draws logs (newest first) oldest to newest, skipping days
// without a usable reading.
func renderMetricChart(metric risk.Metric, logs []db.DailyLog, baseline risk.MetricBaseline, hasBaseline bool) ([]byte, error) {
	xAxis := make([]string, 0, len(logs))
	points := make([]opts.LineData, 0, len(logs))

	for i := len(logs) - 1; i >= 0; i-- {
		v, ok := risk.Normalize(logs[i].Payload[string(metric)])
		if !ok {
			continue
		}

		xAxis = append(xAxis, logs[i].Day.Format(db.DayLayout))
		points = append(points, opts.LineData{Value: v})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s history", metric),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    string(metric),
			Subtitle: fmt.Sprintf("%d readings", len(points)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: string(metric),
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(true),
		}),
	}

	if hasBaseline {
		seriesOpts = append(seriesOpts, func(s *charts.SingleSeries) {
			s.MarkLines = &opts.MarkLines{
				Data: []interface{}{
					opts.MarkLineNameYAxisItem{Name: "Median", YAxis: baseline.Median},
					opts.MarkLineNameYAxisItem{Name: "Low", YAxis: baseline.Low},
					opts.MarkLineNameYAxisItem{Name: "High", YAxis: baseline.High},
				},
				MarkLineStyle: opts.MarkLineStyle{
					Symbol: []string{"none", "none"},
					LineStyle: &opts.LineStyle{
						Color: "rgba(128, 128, 128, 0.6)",
						Type:  "dashed",
						Width: 1.5,
					},
				},
			}
		})
	}

	line.SetXAxis(xAxis).
		AddSeries(string(metric), points).
		SetSeriesOptions(seriesOpts...)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", metric, err)
	}

	return buf.Bytes(), nil
}
