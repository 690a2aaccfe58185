package harness

import (
	"errors"
	"math"

	"go.starlark.net/starlark"

	"github.com/ezrec/pfpu/emulator"
	"github.com/ezrec/pfpu/pfpu"
)

type builtinFunc = func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func (ses *session) builtins() map[string]builtinFunc {
	return map[string]builtinFunc{
		"writel":          ses.writel,
		"readl":           ses.readl,
		"float_to_u32":    floatToU32,
		"u32_to_float":    u32ToFloat,
		"get_irq_latched": ses.getIrqLatched,
		"clear_irq_latch": ses.clearIrqLatch,
		"expect":          expect,
		"set_policy":      ses.setPolicy,
		"reset":           ses.reset,
		"wait":            ses.wait,
	}
}

// asUint32 accepts any integer that fits in 32 bits, signed or not.
func asUint32(b *starlark.Builtin, name string, value starlark.Int) (u32 uint32, err error) {
	if u64, ok := value.Uint64(); ok && u64 <= math.MaxUint32 {
		return uint32(u64), nil
	}
	if i64, ok := value.Int64(); ok && i64 >= math.MinInt32 && i64 < 0 {
		return uint32(i64), nil
	}
	return 0, &ErrArgument{Builtin: b.Name(), Arg: name, Value: value.String()}
}

func (ses *session) writel(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, value starlark.Int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &addr, &value)
	if err != nil {
		return nil, err
	}

	addr32, err := asUint32(b, "addr", addr)
	if err != nil {
		return nil, err
	}
	value32, err := asUint32(b, "value", value)
	if err != nil {
		return nil, err
	}

	ses.emu.Write32(addr32, value32)

	return starlark.None, nil
}

func (ses *session) readl(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr starlark.Int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return nil, err
	}

	addr32, err := asUint32(b, "addr", addr)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint64(uint64(ses.emu.Read32(addr32))), nil
}

func floatToU32(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Value
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value)
	if err != nil {
		return nil, err
	}

	f64, ok := starlark.AsFloat(value)
	if !ok {
		return nil, &ErrArgument{Builtin: b.Name(), Arg: "value", Value: value.String()}
	}

	return starlark.MakeUint64(uint64(math.Float32bits(float32(f64)))), nil
}

func u32ToFloat(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value)
	if err != nil {
		return nil, err
	}

	u32, err := asUint32(b, "value", value)
	if err != nil {
		return nil, err
	}

	return starlark.Float(math.Float32frombits(u32)), nil
}

func (ses *session) irqLine(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (line int, err error) {
	line = emulator.PFPU_IRQ
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "line?", &line)
	return
}

func (ses *session) getIrqLatched(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	line, err := ses.irqLine(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	return starlark.Bool(ses.emu.Pic.Latched(line)), nil
}

func (ses *session) clearIrqLatch(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	line, err := ses.irqLine(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	ses.emu.Pic.Clear(line)

	return starlark.None, nil
}

func expect(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var cond starlark.Value
	var msg string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "cond", &cond, "msg?", &msg)
	if err != nil {
		return nil, err
	}

	if !cond.Truth() {
		return nil, &ErrCheck{Message: msg}
	}

	return starlark.None, nil
}

func (ses *session) setPolicy(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var layout, order string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "layout?", &layout, "order?", &order)
	if err != nil {
		return nil, err
	}

	pf := ses.emu.Pfpu

	if len(layout) != 0 {
		value, ok := pfpu.ParseLayout(layout)
		if !ok {
			return nil, &ErrArgument{Builtin: b.Name(), Arg: "layout", Value: layout}
		}
		pf.Layout = value
	}

	if len(order) != 0 {
		value, ok := pfpu.ParseOrder(order)
		if !ok {
			return nil, &ErrArgument{Builtin: b.Name(), Arg: "order", Value: order}
		}
		pf.Order = value
	}

	return starlark.None, nil
}

func (ses *session) reset(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	ses.emu.Reset()

	return starlark.None, nil
}

// wait runs the PFPU until it is idle. It returns False if the run stalled.
func (ses *session) wait(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	err = ses.emu.Wait(ses.harness.Limit)

	var stalled *emulator.ErrStalled
	if errors.As(err, &stalled) {
		return starlark.False, nil
	}
	if err != nil {
		return nil, err
	}

	return starlark.True, nil
}
