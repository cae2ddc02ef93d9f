package browse

import (
	"context"

	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

// ShowDetail opens the detail page of card. The page keeps the card's poster;
// images in the detail payload are ignored.
func (b *Browser) ShowDetail(ctx context.Context, card view.Card) source.DetailResult {
	b.navigate(false, true)
	tok := b.tokens.begin(view.Detail, b.render(view.Detail, view.Loading{Text: view.LoadingDetail}))

	if !card.Valid() {
		b.tokens.commit(view.Detail, tok, b.render(view.Detail, view.Failure{Text: view.DetailFailure}))
		return source.DetailResult{Outcome: source.Outcome{Kind: source.UnknownShape}}
	}

	entry := log.WithField("id", card.Identity.String())
	entry.Debug("fetching details")
	result := source.ParseDetail(b.src.Details(ctx, card.Identity))

	var ins view.Instruction
	switch result.Kind {
	case source.Success:
		ins = view.Page{Page: view.NewDetailPage(result.Detail, card)}
	case source.TransportFailure:
		entry.WithField("cause", result.CauseText()).Error("detail request failed")
		ins = view.Failure{Text: view.DetailNetworkFailure}
	default:
		entry.WithField("kind", result.Kind.String()).Warn("detail request returned no record")
		ins = view.Failure{Text: view.DetailFailure}
	}

	b.tokens.commit(view.Detail, tok, b.render(view.Detail, ins))
	return result
}
