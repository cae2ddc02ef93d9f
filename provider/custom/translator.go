package custom

import (
	"encoding/json"
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
)

// tableToJSON encodes a Lua value as JSON. Tables with keys 1..n become arrays,
// other tables become objects; an empty table is an empty object.
func tableToJSON(value lua.LValue) ([]byte, error) {
	v, err := toGo(value, 0)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

const maxDepth = 64

func toGo(value lua.LValue, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("table nested deeper than %d levels", maxDepth)
	}

	switch v := value.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LBool:
		return bool(v), nil
	case lua.LString:
		return string(v), nil
	case lua.LNumber:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, nil
		}
		return f, nil
	case *lua.LTable:
		return tableToGo(v, depth)
	default:
		return nil, fmt.Errorf("cannot encode lua %s", value.Type())
	}
}

func tableToGo(table *lua.LTable, depth int) (any, error) {
	if n := table.Len(); n > 0 && countKeys(table) == n {
		list := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			v, err := toGo(table.RawGetInt(i), depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	}

	object := make(map[string]any)
	var err error
	table.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}

		var converted any
		converted, err = toGo(v, depth+1)
		object[k.String()] = converted
	})
	if err != nil {
		return nil, err
	}

	return object, nil
}

func countKeys(table *lua.LTable) (n int) {
	table.ForEach(func(lua.LValue, lua.LValue) {
		n++
	})
	return n
}
