package browse

import (
	"context"
	"fmt"

	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

// LoadHot shows the home screen and fills the movie and series regions from one request.
// The two lists are rendered independently; an empty one only affects its own region.
func (b *Browser) LoadHot(ctx context.Context) source.HotResult {
	b.navigate(false, false)

	movies := b.tokens.begin(view.Movies, b.render(view.Movies, view.Loading{Text: view.LoadingMovies}))
	series := b.tokens.begin(view.Series, b.render(view.Series, view.Loading{Text: view.LoadingSeries}))

	log.WithField("provider", b.src.ID()).Debug("fetching hot content")
	result := source.ParseHot(b.src.Hot(ctx))

	if result.Kind == source.TransportFailure {
		log.WithField("cause", result.CauseText()).Error("hot content request failed")

		text := fmt.Sprintf(view.HotFailureFormat, result.CauseText())
		b.tokens.commit(view.Movies, movies, b.render(view.Movies, view.Failure{Text: text}))
		b.tokens.commit(view.Series, series, b.render(view.Series, view.Failure{Text: view.HotFailureFollowUp}))
		return result
	}

	b.commitList(view.Movies, movies, "", result.Movies, view.NoHotMovies)
	b.commitList(view.Series, series, "", result.Series, view.NoTrendingSeries)
	return result
}

// commitList renders items as cards, or emptyText when there are none.
func (b *Browser) commitList(region view.Region, tok token, heading string, items []source.Item, emptyText string) {
	if len(items) == 0 {
		b.tokens.commit(region, tok, b.render(region, view.Empty{Text: emptyText}))
		return
	}

	cards, dropped := view.NewCards(items)
	if dropped > 0 {
		log.WithFields(map[string]any{
			"region":  region.String(),
			"dropped": dropped,
		}).Warn("skipped items without id or detailPath")
	}

	if !b.tokens.commit(region, tok, b.render(region, view.Cards{Heading: heading, Cards: cards})) {
		log.Debugf("discarded stale %s response", region)
	}
}
