package mini

import (
	"context"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamflix-cli/streamflix/view"
)

func TestStates(t *testing.T) {
	Convey("Given a fresh prompt shell", t, func() {
		m := newMini(context.Background(), nil, view.NewRecorder())
		m.state = homeState

		Convey("When moving forward twice", func() {
			m.newState(searchState)
			m.newState(listState)

			Convey("Then going back retraces the path", func() {
				m.previousState()
				So(m.state, ShouldEqual, searchState)
				m.previousState()
				So(m.state, ShouldEqual, homeState)
			})
		})

		Convey("When entering the current state again", func() {
			m.newState(homeState)

			Convey("Then nothing is pushed", func() {
				So(m.statesHistory.Len(), ShouldEqual, 0)
			})
		})

		Convey("When going back with no history", func() {
			m.previousState()

			Convey("Then the state is kept", func() {
				So(m.state, ShouldEqual, homeState)
			})
		})
	})
}

func TestTruncate(t *testing.T) {
	Convey("Given a narrow terminal", t, func() {
		old := truncateAt
		truncateAt = 20
		Reset(func() { truncateAt = old })

		Convey("Short lines are kept", func() {
			So(truncate("Dune"), ShouldEqual, "Dune")
		})

		Convey("Long lines end with an ellipsis", func() {
			out := truncate(strings.Repeat("x", 40))
			So(out, ShouldEndWith, "...")
			So(len([]rune(out)), ShouldBeLessThan, 20)
		})
	})
}
