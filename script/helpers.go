package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
)

func helpers() map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"lerp": {Name: "lerp", Value: func(args ...tengo.Object) (tengo.Object, error) {
			f, err := floatArgs("lerp", args, 3)
			if err != nil {
				return nil, err
			}
			return &tengo.Float{Value: f[0] + f[2]*(f[1]-f[0])}, nil
		}},
		"clamp": {Name: "clamp", Value: func(args ...tengo.Object) (tengo.Object, error) {
			f, err := floatArgs("clamp", args, 3)
			if err != nil {
				return nil, err
			}
			return &tengo.Float{Value: max(min(f[0], f[2]), f[1])}, nil
		}},
		"sign": {Name: "sign", Value: func(args ...tengo.Object) (tengo.Object, error) {
			f, err := floatArgs("sign", args, 1)
			if err != nil {
				return nil, err
			}
			switch {
			case f[0] > 0:
				return &tengo.Float{Value: 1}, nil
			case f[0] < 0:
				return &tengo.Float{Value: -1}, nil
			}
			return &tengo.Float{Value: 0}, nil
		}},
	}
}

func floatArgs(name string, args []tengo.Object, n int) ([]float64, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]float64, n)
	for i, a := range args {
		f, ok := tengo.ToFloat64(a)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d is %s, not a number", name, i, a.TypeName())
		}
		out[i] = f
	}
	return out, nil
}
