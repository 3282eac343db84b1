package level

import (
	"context"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/pkg/errors"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/script"
)

// hookModules are the tengo stdlib modules a hook may import.
var hookModules = []string{"fmt", "math", "text", "rand", "enum"}

// runHook runs a tengo hook against the session. The hook sees the
// script's final variables through var(name) and writes through the same
// world and structure placer as the script did.
func (s *session) runHook(ctx context.Context, src []byte, vars *script.Vars) error {
	hook := tengo.NewScript(src)
	hook.SetImports(stdlib.GetModuleMap(hookModules...))

	globals := map[string]any{
		"level_name":  s.name,
		"size_x":      s.params.SizeX,
		"size_y":      s.params.SizeY,
		"bounds_dist": s.params.BoundsDist,
	}
	for name, value := range globals {
		if err := hook.Add(name, value); err != nil {
			return errors.Wrapf(err, "hook: add %s", name)
		}
	}
	for _, fn := range s.hookFuncs(ctx, vars) {
		if err := hook.Add(fn.Name, fn); err != nil {
			return errors.Wrapf(err, "hook: add %s", fn.Name)
		}
	}

	if _, err := hook.RunContext(ctx); err != nil {
		return errors.Wrap(err, "hook")
	}
	return nil
}

func (s *session) hookFuncs(ctx context.Context, vars *script.Vars) []*tengo.UserFunction {
	return []*tengo.UserFunction{
		{Name: "place_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
			id, x, y, err := idAndPoint(args)
			if err != nil {
				return nil, err
			}
			s.PlaceTile(id, x, y)
			return tengo.UndefinedValue, nil
		}},
		{Name: "spawn_entity", Value: func(args ...tengo.Object) (tengo.Object, error) {
			id, x, y, err := idAndPoint(args)
			if err != nil {
				return nil, err
			}
			s.SpawnEntity(id, x, y)
			return tengo.UndefinedValue, nil
		}},
		{Name: "spawn_object", Value: func(args ...tengo.Object) (tengo.Object, error) {
			id, x, y, err := idAndPoint(args)
			if err != nil {
				return nil, err
			}
			s.SpawnObject(id, x, y)
			return tengo.UndefinedValue, nil
		}},
		{Name: "spawn_random", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			dist, ok := tengo.ToInt(args[2])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "min_bounds_dist", Expected: "int", Found: args[2].TypeName()}
			}
			if err := s.SpawnRandomEntity(objectAsString(args[0]), objectAsString(args[1]), dist); err != nil {
				return tengo.FalseValue, nil
			}
			return tengo.TrueValue, nil
		}},
		{Name: "place_structure", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			dist, ok := tengo.ToInt(args[1])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "min_bounds_dist", Expected: "int", Found: args[1].TypeName()}
			}
			if err := s.PlaceStructure(ctx, objectAsString(args[0]), dist); err != nil {
				return tengo.FalseValue, nil
			}
			return tengo.TrueValue, nil
		}},
		{Name: "tiles", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			pts := s.world.QueryTilesByType(objectAsString(args[0]))
			out := make([]tengo.Object, 0, len(pts))
			for _, p := range pts {
				out = append(out, pointObject(p))
			}
			return &tengo.Array{Value: out}, nil
		}},
		{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			n, ok := tengo.ToInt(args[0])
			if !ok || n <= 0 {
				return nil, tengo.ErrInvalidArgumentType{Name: "n", Expected: "positive int", Found: args[0].String()}
			}
			return &tengo.Int{Value: int64(s.rng.Intn(n))}, nil
		}},
		{Name: "var", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			v, ok := vars.Get(objectAsString(args[0]))
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return &tengo.Int{Value: int64(v)}, nil
		}},
		{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
			parts := make([]string, 0, len(args))
			for _, a := range args {
				parts = append(parts, objectAsString(a))
			}
			s.builder.logger.Printf("level: %s: hook: %s", s.name, strings.Join(parts, " "))
			return tengo.UndefinedValue, nil
		}},
	}
}

func idAndPoint(args []tengo.Object) (string, int, int, error) {
	if len(args) != 3 {
		return "", 0, 0, tengo.ErrWrongNumArguments
	}
	x, ok := tengo.ToInt(args[1])
	if !ok {
		return "", 0, 0, tengo.ErrInvalidArgumentType{Name: "x", Expected: "int", Found: args[1].TypeName()}
	}
	y, ok := tengo.ToInt(args[2])
	if !ok {
		return "", 0, 0, tengo.ErrInvalidArgumentType{Name: "y", Expected: "int", Found: args[2].TypeName()}
	}
	return objectAsString(args[0]), x, y, nil
}

func pointObject(p common.Point) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{&tengo.Int{Value: int64(p.X)}, &tengo.Int{Value: int64(p.Y)}}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
