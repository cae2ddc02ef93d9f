package browse

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/mo"
	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

// Search looks up keyword and renders the results. Keywords shorter than the minimum
// length after trimming clear the search instead and return None.
func (b *Browser) Search(ctx context.Context, keyword string) mo.Option[source.SearchResult] {
	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) < b.minLength {
		b.ClearSearch()
		return mo.None[source.SearchResult]()
	}

	b.navigate(true, false)
	tok := b.tokens.begin(view.Search, b.render(view.Search, view.Loading{Text: view.LoadingSearch}))

	if b.queries != nil {
		b.queries.Remember(keyword, 1)
	}

	log.WithField("keyword", keyword).Debug("searching")
	result := source.ParseSearch(b.src.Search(ctx, keyword))

	switch result.Kind {
	case source.Success:
		heading := fmt.Sprintf(view.SearchHeadingFormat, keyword)
		b.commitList(view.Search, tok, heading, result.Items, "")
	case source.Empty:
		text := fmt.Sprintf(view.NoSearchResultsFormat, keyword)
		b.tokens.commit(view.Search, tok, b.render(view.Search, view.Empty{Text: text}))
	default:
		log.WithField("cause", result.CauseText()).Error("search request failed")
		b.tokens.commit(view.Search, tok, b.render(view.Search, view.Failure{Text: view.SearchFailure}))
	}

	return mo.Some(result)
}
