package custom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func eval(L *lua.LState, expr string) lua.LValue {
	if err := L.DoString("return " + expr); err != nil {
		panic(err)
	}
	v := L.Get(-1)
	L.Pop(1)
	return v
}

func TestTableToJSON(t *testing.T) {
	Convey("Given Lua values", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Sequences should become arrays", func() {
			b, err := tableToJSON(eval(L, `{ "a", "b" }`))
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `["a","b"]`)
		})

		Convey("Records should become objects with integral numbers kept integral", func() {
			b, err := tableToJSON(eval(L, `{ subjectId = 42, title = "T", cover = { url = "u" } }`))
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"cover":{"url":"u"},"subjectId":42,"title":"T"}`)
		})

		Convey("Empty tables should become objects", func() {
			b, err := tableToJSON(eval(L, `{ data = { movie = {} } }`))
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"data":{"movie":{}}}`)
		})

		Convey("Sparse tables should become objects", func() {
			b, err := tableToJSON(eval(L, `{ [1] = "a", [3] = "c" }`))
			So(err, ShouldBeNil)
			So(string(b), ShouldStartWith, `{`)
		})

		Convey("Functions cannot be encoded", func() {
			_, err := tableToJSON(eval(L, `{ f = function() end }`))
			So(err, ShouldNotBeNil)
		})
	})
}
