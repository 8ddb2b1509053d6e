// Package cli is the terminal dashboard: a line-oriented REPL that turns
// commands into dashboard intents and prints the resulting state.
package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	fetchFailedMessage = "Could not fetch weather data."
	cacheMissMessage   = "No cached data for that entry. Search for it again to refresh."
	prompt             = "weather> "
)

// Dashboard is the cache and history manager the REPL drives
type Dashboard interface {
	Search(ctx context.Context, request dashboard.SearchRequest) (*dashboard.CacheEntry, error)
	SelectByIndex(index int) (*dashboard.CacheEntry, error)
	Advance(direction dashboard.Direction) (*dashboard.CacheEntry, error)
	ClearAll(ctx context.Context)
	History() []string
	Suggestions(fragment string) []string
	ActiveIndex() int
	Active() (*dashboard.CacheEntry, bool)
	CacheSize() int
}

// Locator resolves the caller's position through the proxy
type Locator interface {
	ResolveLocation(ctx context.Context) (*ports.ResolvedLocation, error)
}

type REPL struct {
	dashboard  Dashboard
	locator    Locator
	health     ports.SystemHealthChecker
	logger     ports.Logger
	in         io.Reader
	out        io.Writer
	showPrompt bool
}

type REPLOptions struct {
	Dashboard Dashboard
	Locator   Locator
	// Health is optional; without it the status command reports only local state.
	Health     ports.SystemHealthChecker
	Logger     ports.Logger
	In         io.Reader
	Out        io.Writer
	ShowPrompt bool
}

func NewREPL(opts REPLOptions) (*REPL, error) {
	if opts.Dashboard == nil {
		return nil, errors.NewValidationError("dashboard is required")
	}
	if opts.Locator == nil {
		return nil, errors.NewValidationError("locator is required")
	}
	if opts.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.NewValidationError("input and output are required")
	}

	return &REPL{
		dashboard:  opts.Dashboard,
		locator:    opts.Locator,
		health:     opts.Health,
		logger:     opts.Logger,
		in:         opts.In,
		out:        opts.Out,
		showPrompt: opts.ShowPrompt,
	}, nil
}

// Run reads commands until quit, end of input or ctx is done
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if r.showPrompt {
			fmt.Fprint(r.out, prompt)
		}
		if !scanner.Scan() {
			if ctx.Err() != nil {
				return nil
			}
			return scanner.Err()
		}
		if quit := r.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the user asked to quit
func (r *REPL) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(command) {
	case "quit", "exit":
		return true
	case "help":
		r.printHelp()
	case "search":
		r.search(ctx, dashboard.SearchRequest{City: rest})
	case "coords":
		r.searchCoordinates(ctx, rest)
	case "locate":
		r.AutoLocate(ctx)
	case "history":
		r.history(rest)
	case "select":
		r.selectEntry(rest)
	case "next":
		r.show(r.dashboard.Advance(dashboard.Forward))
	case "prev":
		r.show(r.dashboard.Advance(dashboard.Backward))
	case "show":
		r.showActive()
	case "clear":
		r.dashboard.ClearAll(ctx)
		fmt.Fprintln(r.out, "History and cache cleared.")
	case "status":
		r.status(ctx)
	default:
		r.search(ctx, dashboard.SearchRequest{City: line})
	}
	return false
}

// AutoLocate searches the caller's own position: by the resolved city when
// there is one, otherwise by its coordinates
func (r *REPL) AutoLocate(ctx context.Context) {
	location, err := r.locator.ResolveLocation(ctx)
	if err != nil {
		r.logger.Warn("Auto-locate failed", ports.F("error", err))
		fmt.Fprintln(r.out, "Could not determine your location.")
		return
	}

	request := dashboard.SearchRequest{City: location.City}
	if strings.TrimSpace(location.City) == "" {
		request = dashboard.SearchRequest{
			Coordinates: &ports.Coordinates{Lat: location.Latitude, Lon: location.Longitude},
		}
	}
	r.search(ctx, request)
}

func (r *REPL) search(ctx context.Context, request dashboard.SearchRequest) {
	entry, err := r.dashboard.Search(ctx, request)
	r.show(entry, err)
}

func (r *REPL) searchCoordinates(ctx context.Context, args string) {
	fields := strings.FieldsFunc(args, func(c rune) bool { return c == ' ' || c == ',' })
	if len(fields) != 2 {
		fmt.Fprintln(r.out, "Usage: coords <lat> <lon>")
		return
	}
	lat, latErr := strconv.ParseFloat(fields[0], 64)
	lon, lonErr := strconv.ParseFloat(fields[1], 64)
	if latErr != nil || lonErr != nil {
		fmt.Fprintln(r.out, "Latitude and longitude must be numbers.")
		return
	}
	r.search(ctx, dashboard.SearchRequest{Coordinates: &ports.Coordinates{Lat: lat, Lon: lon}})
}

func (r *REPL) history(fragment string) {
	if fragment == "" {
		renderHistory(r.out, r.dashboard.History(), r.dashboard.ActiveIndex())
		return
	}
	matches := r.dashboard.Suggestions(fragment)
	if len(matches) == 0 {
		fmt.Fprintf(r.out, "No previous searches match %q.\n", fragment)
		return
	}
	for _, match := range matches {
		fmt.Fprintf(r.out, "  %s\n", match)
	}
}

func (r *REPL) selectEntry(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(r.out, "Usage: select <number> (see history)")
		return
	}
	r.show(r.dashboard.SelectByIndex(n - 1))
}

func (r *REPL) showActive() {
	entry, ok := r.dashboard.Active()
	if !ok {
		if r.dashboard.ActiveIndex() < 0 {
			fmt.Fprintln(r.out, "Nothing to show. Search for a city first.")
			return
		}
		fmt.Fprintln(r.out, cacheMissMessage)
		return
	}
	renderEntry(r.out, entry)
}

// show renders the outcome of an intent
func (r *REPL) show(entry *dashboard.CacheEntry, err error) {
	switch {
	case err == nil:
		renderEntry(r.out, entry)
	case errors.IsProviderError(err):
		fmt.Fprintln(r.out, fetchFailedMessage)
	case errors.IsCacheMissError(err):
		fmt.Fprintln(r.out, cacheMissMessage)
	case errors.IsValidationError(err):
		fmt.Fprintln(r.out, validationText(err))
	default:
		r.logger.Error("Unexpected dashboard error", ports.F("error", err))
		fmt.Fprintln(r.out, fetchFailedMessage)
	}
}

func (r *REPL) status(ctx context.Context) {
	fmt.Fprintf(r.out, "History: %d, cached: %d, active: %d\n",
		len(r.dashboard.History()), r.dashboard.CacheSize(), r.dashboard.ActiveIndex()+1)
	if r.health == nil {
		return
	}

	results := r.health.CheckAll(ctx)
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		result := results[name]
		line := fmt.Sprintf("  %s: %s", name, result.Status)
		if result.Error != "" {
			line += " (" + result.Error + ")"
		}
		fmt.Fprintln(r.out, line)
	}
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, `Commands:
  <city>               search a city (same as: search <city>)
  coords <lat> <lon>   search by coordinates
  locate               search your current location
  history [text]       list recent searches, or those containing text
  select <n>           show entry n from history
  next | prev          step through history
  show                 show the current entry again
  clear                forget history and cached weather
  status               show cache and backend status
  quit                 leave
`)
}

func validationText(err error) string {
	msg := err.Error()
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		msg = appErr.Message
	}
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
