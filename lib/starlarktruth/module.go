package starlarktruth

import (
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Default is the name the assertion module is predeclared under.
const Default = "assert"

// NewModule predeclares the assertion module, whose only member is that.
func NewModule(predeclared starlark.StringDict) {
	predeclared[Default] = &starlarkstruct.Module{
		Name: Default,
		Members: starlark.StringDict{
			"that": starlark.NewBuiltin("that", That),
		},
	}
}

// That implements assert.that(target). An earlier assert.that(...) on the
// same thread that never ran an assertion is reported first.
func That(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var target starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &target); err != nil {
		return nil, err
	}
	if err := Close(thread); err != nil {
		return nil, err
	}

	caller := thread.CallFrame(1)
	thread.SetLocal(LocalThreadKeyForClose, caller)
	return &T{actual: target, pos: caller.Pos}, nil
}
