package custom

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/source"
	lua "github.com/yuin/gopher-lua"
)

// luaSource serializes calls into its state; an LState is not safe for concurrent use.
type luaSource struct {
	name  string
	mu    sync.Mutex
	state *lua.LState
}

func newLuaSource(name string, state *lua.LState) *luaSource {
	return &luaSource{name: name, state: state}
}

func (s *luaSource) Name() string {
	return s.name
}

func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

func (s *luaSource) Hot(ctx context.Context) (*source.Envelope, error) {
	return s.envelope(ctx, constant.HotFn)
}

func (s *luaSource) Search(ctx context.Context, keyword string) (*source.Envelope, error) {
	return s.envelope(ctx, constant.SearchFn, lua.LString(keyword))
}

func (s *luaSource) Details(ctx context.Context, id source.Identity) (*source.Envelope, error) {
	return s.envelope(ctx, constant.DetailsFn, lua.LString(id.ID), lua.LString(id.DetailPath))
}

func (s *luaSource) Media(ctx context.Context, id source.Identity) (*source.Envelope, error) {
	return s.envelope(ctx, constant.MediaFn, lua.LString(id.ID), lua.LString(id.DetailPath))
}

// Close releases the Lua state.
func (s *luaSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Close()
}

// envelope calls fn and encodes the returned table as the response body.
func (s *luaSource) envelope(ctx context.Context, fn string, args ...lua.LValue) (*source.Envelope, error) {
	val, err := s.call(ctx, fn, args...)
	if err != nil {
		return nil, err
	}

	body, err := tableToJSON(val)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}

	return &source.Envelope{StatusCode: http.StatusOK, Body: body}, nil
}

// call executes a global function in protected mode and returns its table result.
func (s *luaSource) call(ctx context.Context, fn string, args ...lua.LValue) (*lua.LTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	table, ok := retval.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), lua.LTTable)
	}

	return table, nil
}
