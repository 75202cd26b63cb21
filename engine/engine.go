package engine

import (
	"fmt"
	"log"

	"go.starlark.net/starlark"

	"zoom-grid/input"
)

// Frame is the input observed during one frame of a replay.
type Frame []input.Event

type recorder struct {
	frames []Frame
	cur    Frame
}

func (r *recorder) add(ev input.Event) {
	r.cur = append(r.cur, ev)
}

func (r *recorder) flush() {
	r.frames = append(r.frames, r.cur)
	r.cur = nil
}

const recorderKey = "recorder"

// Run executes a replay script and returns the frames it describes. Scripts
// call move(x, y), scroll(dy, dx=0), key(name, pressed=True), click(x, y)
// and frame() to end the current frame. Events after the last frame() call
// form a final frame.
func Run(name, src string) ([]Frame, error) {
	rec := &recorder{}
	thread := &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { log.Printf("[replay] %s: %s", name, msg) },
	}
	thread.SetLocal(recorderKey, rec)

	if _, err := starlark.ExecFile(thread, name, src, builtins()); err != nil {
		return nil, fmt.Errorf("replay %s: %w", name, err)
	}
	if len(rec.cur) > 0 {
		rec.flush()
	}
	return rec.frames, nil
}

func builtins() starlark.StringDict {
	return starlark.StringDict{
		"move":   starlark.NewBuiltin("move", move),
		"scroll": starlark.NewBuiltin("scroll", scroll),
		"key":    starlark.NewBuiltin("key", key),
		"click":  starlark.NewBuiltin("click", click),
		"frame":  starlark.NewBuiltin("frame", frame),
	}
}

func recorderOf(thread *starlark.Thread) *recorder {
	return thread.Local(recorderKey).(*recorder)
}

func move(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y float64
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y); err != nil {
		return nil, err
	}
	recorderOf(thread).add(input.CursorMoved{X: x, Y: y})
	return starlark.None, nil
}

func scroll(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var dy, dx float64
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "dy", &dy, "dx?", &dx); err != nil {
		return nil, err
	}
	recorderOf(thread).add(input.Scroll{DX: dx, DY: dy})
	return starlark.None, nil
}

func key(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	pressed := true
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "pressed?", &pressed); err != nil {
		return nil, err
	}
	k, ok := input.KeyByName(name)
	if !ok {
		return nil, fmt.Errorf("%s: unknown key %q", b.Name(), name)
	}
	recorderOf(thread).add(input.Key{Code: k, Pressed: pressed})
	return starlark.None, nil
}

func click(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y float64
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y); err != nil {
		return nil, err
	}
	recorderOf(thread).add(input.Click{X: x, Y: y})
	return starlark.None, nil
}

func frame(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	recorderOf(thread).flush()
	return starlark.None, nil
}
