// Package custom runs Lua provider scripts as content sources.
package custom

import (
	"fmt"
	"sync"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/filesystem"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/util"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// IDfromName derives the provider id of a script from its basename.
func IDfromName(name string) string {
	return name + " custom"
}

// Required lists the global functions a provider script must define.
func Required() []string {
	return []string{
		constant.HotFn,
		constant.SearchFn,
		constant.DetailsFn,
		constant.MediaFn,
	}
}

// LoadSource executes the script at path and validates its entry points.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := compileAndLoad(state, path); err != nil {
		state.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	name := util.FileStem(path)

	for _, fn := range Required() {
		if state.GetGlobal(fn).Type() != lua.LTFunction {
			state.Close()
			return nil, fmt.Errorf("function %s is required but not defined in %s", fn, name)
		}
	}

	return newLuaSource(name, state), nil
}

var prototypes sync.Map

// compileAndLoad runs the script in L. Compiled prototypes are reused for the lifetime of the process.
func compileAndLoad(L *lua.LState, path string) error {
	if proto, ok := prototypes.Load(path); ok {
		L.Push(L.NewFunctionFromProto(proto.(*lua.FunctionProto)))
		return L.PCall(0, lua.MultRet, nil)
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return err
	}

	prototypes.Store(path, proto)

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
