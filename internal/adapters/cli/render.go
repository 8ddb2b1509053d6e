package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"weatherdash.app/internal/core/dashboard"
)

const (
	historyColumnWidth = 28
	forecastTextWidth  = 24
)

type conditions struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []weatherSummary `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type forecastSample struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []weatherSummary `json:"weather"`
}

type weatherSummary struct {
	Description string `json:"description"`
}

func description(weather []weatherSummary) string {
	if len(weather) == 0 {
		return "n/a"
	}
	return weather[0].Description
}

func formatTemp(t float64) string {
	return fmt.Sprintf("%.0f°C", math.Round(t))
}

// renderEntry prints the conditions view of one cached entry
func renderEntry(w io.Writer, entry *dashboard.CacheEntry) {
	var current conditions
	if err := json.Unmarshal(entry.Current, &current); err != nil {
		fmt.Fprintf(w, "%s\n  (current conditions unavailable)\n", entry.Key)
	} else {
		title := current.Name
		if title == "" {
			title = entry.Key
		}
		if current.Sys.Country != "" {
			title += ", " + current.Sys.Country
		}
		fmt.Fprintln(w, title)
		fmt.Fprintf(w, "  %s  %s\n", formatTemp(current.Main.Temp), description(current.Weather))
		fmt.Fprintf(w, "  feels like %s, humidity %.0f%%, wind %.1f m/s\n",
			formatTemp(current.Main.FeelsLike), current.Main.Humidity, current.Wind.Speed)
	}

	if len(entry.Forecast) == 0 {
		return
	}
	fmt.Fprintln(w, "Forecast")
	for _, raw := range entry.Forecast {
		var sample forecastSample
		if err := json.Unmarshal(raw, &sample); err != nil {
			continue
		}
		when := sample.DtTxt
		if len(when) > 16 {
			when = when[:16]
		}
		fmt.Fprintf(w, "  %s  %s  %s\n",
			runewidth.FillRight(when, 16),
			runewidth.FillLeft(formatTemp(sample.Main.Temp), 5),
			runewidth.Truncate(description(sample.Weather), forecastTextWidth, "…"))
	}
}

// renderHistory prints keys numbered from 1, marking the active one
func renderHistory(w io.Writer, keys []string, active int) {
	if len(keys) == 0 {
		fmt.Fprintln(w, "No searches yet.")
		return
	}
	for i, key := range keys {
		marker := " "
		if i == active {
			marker = ">"
		}
		fmt.Fprintf(w, "%s %2d. %s\n", marker, i+1,
			runewidth.Truncate(strings.TrimSpace(key), historyColumnWidth, "…"))
	}
}
