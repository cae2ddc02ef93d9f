// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/streamflix-cli/streamflix/browse"
	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

// Run performs a single fetch and writes what the visible regions ended up showing.
func Run(ctx context.Context, options *Options) error {
	if err := options.validate(); err != nil {
		return err
	}

	if options.Out == nil {
		options.Out = os.Stdout
	}

	recorder := view.NewRecorder()
	browser := browse.New(browse.Options{
		Source: options.Source,
		Sinks:  recorder.Sinks(),
	})

	output := &Output{
		Command: options.Command.String(),
		Query:   options.Query,
	}

	switch options.Command {
	case Hot:
		output.setOutcome(browser.LoadHot(ctx).Outcome)
	case Search:
		result := browser.Search(ctx, options.Query)
		if r, ok := result.Get(); ok {
			output.setOutcome(r.Outcome)
		} else {
			return fmt.Errorf("query too short: %q", options.Query)
		}
	case Detail:
		card := view.Card{Identity: options.Identity, Title: options.Title}
		output.setOutcome(browser.ShowDetail(ctx, card).Outcome)
	case Stream:
		state := browser.PlayStream(ctx, options.Identity, options.Title)
		if state.Status == view.Unavailable {
			output.Message = state.Message
		}
	}

	output.State = browser.State()
	for _, region := range view.Regions() {
		if !output.State.Visible(region) {
			continue
		}
		if ins := recorder.Latest(region); ins != nil {
			output.Regions = append(output.Regions, newRegion(region, ins))
		}
	}

	log.Infof("inline %s finished with %d regions", output.Command, len(output.Regions))

	if options.Json {
		return writeJson(options.Out, output)
	}

	return writeText(options.Out, output)
}

func (o *Output) setOutcome(outcome source.Outcome) {
	o.Kind = outcome.Kind
	o.Message = outcome.Message
	if outcome.Kind == source.TransportFailure {
		o.Message = outcome.CauseText()
	}
}

// writeText prints one line per card, the page fields, or the stream link.
func writeText(out io.Writer, output *Output) error {
	var b strings.Builder

	for _, r := range output.Regions {
		switch {
		case r.Cards != nil:
			for _, c := range r.Cards {
				fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n", c.ID, c.DetailPath, c.Title, c.Rating)
			}
		case r.Page != nil:
			fmt.Fprintln(&b, r.Page.Title)
			fmt.Fprintln(&b, r.Page.Meta())
			fmt.Fprintln(&b, r.Page.Synopsis)
			fmt.Fprintln(&b, r.Page.CastText())
		case r.Player != nil:
			if r.Player.Link != "" {
				fmt.Fprintln(&b, r.Player.Link)
			} else {
				fmt.Fprintln(&b, r.Player.Message)
			}
		case r.Text != "":
			fmt.Fprintln(&b, r.Text)
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}
