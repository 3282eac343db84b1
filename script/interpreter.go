package script

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"
)

// Interpreter runs level-description scripts against a Host. One Interpreter
// may run many scripts; every Run starts from an empty variable store.
type Interpreter struct {
	host   Host
	logger *log.Logger

	lines   []string
	vars    *Vars
	presets map[string]int
}

func New(host Host, logger *log.Logger) *Interpreter {
	if logger == nil {
		logger = log.Default()
	}
	return &Interpreter{host: host, logger: logger, vars: NewVars()}
}

// Vars returns the variable store of the most recent run.
func (in *Interpreter) Vars() *Vars {
	return in.vars
}

// Preset makes name hold value at the start of every later run.
func (in *Interpreter) Preset(name string, value int) {
	if in.presets == nil {
		in.presets = map[string]int{}
	}
	in.presets[name] = value
}

// Run executes every line of the script once, in order, except where FOR and
// IF blocks redirect control. A fatal error stops the run; side effects that
// already reached the host are kept.
func (in *Interpreter) Run(ctx context.Context, lines []string) error {
	in.lines = lines
	in.vars = NewVars()
	for name, value := range in.presets {
		in.vars.Set(name, value)
	}
	return in.execRange(ctx, 0, len(lines))
}

// execRange runs lines [start, end).
func (in *Interpreter) execRange(ctx context.Context, start, end int) error {
	for i := start; i < end; i++ {
		last, err := in.execLine(ctx, i, end)
		if err != nil {
			return atLine(err, i, strings.TrimSpace(in.lines[i]))
		}
		i = last
	}
	return nil
}

// execLine runs the statement at idx and returns the index of the last line
// it consumed.
func (in *Interpreter) execLine(ctx context.Context, idx, end int) (int, error) {
	line := strings.TrimSpace(in.lines[idx])
	if line == "" || strings.HasPrefix(line, "//") {
		return idx, nil
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case kwVar:
		return idx, in.execVar(fields)
	case kwFor:
		return in.execFor(ctx, idx, end, fields)
	case kwIf:
		return in.execIf(ctx, idx, end, line)
	case kwTile:
		return idx, in.execTile(fields)
	case kwTileFill:
		return idx, in.execTileFill(fields)
	case kwEntity:
		return idx, in.execEntity(fields)
	case kwEntityRandom:
		return idx, in.execEntityRandom(idx, fields)
	case kwObject:
		return idx, in.execObject(fields)
	case kwStructure:
		return idx, in.execStructure(ctx, idx, fields)
	case kwElse, kwEndIf, kwEndFor:
		in.logger.Printf("script: warning: line %d: %s without matching block", idx+1, fields[0])
	default:
		in.logger.Printf("script: warning: line %d: unknown command %q", idx+1, fields[0])
	}
	return idx, nil
}

func (in *Interpreter) execVar(fields []string) error {
	if len(fields) < 3 {
		return newError(KindInvalidStatement, "VAR needs a name and a value")
	}
	value, err := in.vars.Resolve(strings.Join(fields[2:], " "))
	if err != nil {
		return err
	}
	name := fields[1]
	in.vars.Set(name, value)
	if param, ok := levelParams[name]; ok {
		in.host.SetLevelParam(param, value)
	}
	return nil
}

func (in *Interpreter) execFor(ctx context.Context, idx, end int, fields []string) (int, error) {
	if len(fields) != 4 {
		return idx, newError(KindInvalidStatement, "FOR needs a name, start and end")
	}
	closeIdx, ok := matchBlock(in.lines, idx, end, kwFor, kwEndFor)
	if !ok {
		return idx, newError(KindUnterminatedBlock, "FOR without ENDFOR")
	}
	from, err := in.vars.Resolve(fields[2])
	if err != nil {
		return idx, err
	}
	to, err := in.vars.Resolve(fields[3])
	if err != nil {
		return idx, err
	}

	name := fields[1]
	for i := from; i <= to; i++ {
		in.vars.Set(name, i)
		if err := in.execRange(ctx, idx+1, closeIdx); err != nil {
			return idx, err
		}
		if i == to {
			break
		}
	}
	return closeIdx, nil
}

func (in *Interpreter) execIf(ctx context.Context, idx, end int, line string) (int, error) {
	cond := strings.TrimSpace(strings.TrimPrefix(line, kwIf))
	if cond == "" {
		return idx, newError(KindInvalidStatement, "IF needs a condition")
	}
	blk, ok := matchIf(in.lines, idx, end)
	if !ok {
		return idx, newError(KindUnterminatedBlock, "IF without ENDIF")
	}
	holds, err := in.vars.Evaluate(cond)
	if err != nil {
		return idx, err
	}

	switch {
	case holds && blk.elseIdx >= 0:
		err = in.execRange(ctx, idx+1, blk.elseIdx)
	case holds:
		err = in.execRange(ctx, idx+1, blk.endIdx)
	case blk.elseIdx >= 0:
		err = in.execRange(ctx, blk.elseIdx+1, blk.endIdx)
	}
	if err != nil {
		return idx, err
	}
	return blk.endIdx, nil
}

func (in *Interpreter) execTile(fields []string) error {
	if len(fields) != 4 {
		return newError(KindInvalidStatement, "TILE needs an id, x and y")
	}
	xy, err := in.resolveAll(fields[2:])
	if err != nil {
		return err
	}
	in.host.PlaceTile(fields[1], xy[0], xy[1])
	return nil
}

// execTileFill covers the inclusive rectangle x outer, y inner.
func (in *Interpreter) execTileFill(fields []string) error {
	if len(fields) != 6 {
		return newError(KindInvalidStatement, "TILE_FILL needs an id, x1, y1, x2 and y2")
	}
	c, err := in.resolveAll(fields[2:])
	if err != nil {
		return err
	}
	for x := c[0]; x <= c[2]; x++ {
		for y := c[1]; y <= c[3]; y++ {
			in.host.PlaceTile(fields[1], x, y)
		}
	}
	return nil
}

func (in *Interpreter) execEntity(fields []string) error {
	if len(fields) != 4 {
		return newError(KindInvalidStatement, "ENTITY needs an id, x and y")
	}
	xy, err := in.resolveAll(fields[2:])
	if err != nil {
		return err
	}
	in.host.SpawnEntity(fields[1], xy[0], xy[1])
	return nil
}

func (in *Interpreter) execObject(fields []string) error {
	if len(fields) != 4 {
		return newError(KindInvalidStatement, "OBJECT needs an id, x and y")
	}
	xy, err := in.resolveAll(fields[2:])
	if err != nil {
		return err
	}
	in.host.SpawnObject(fields[1], xy[0], xy[1])
	return nil
}

func (in *Interpreter) execEntityRandom(idx int, fields []string) error {
	if len(fields) != 4 {
		return newError(KindInvalidStatement, "ENTITY_RANDOM needs an id, a spawn tile id and a bounds distance")
	}
	dist, err := in.vars.Resolve(fields[3])
	if err != nil {
		return err
	}
	if err := in.host.SpawnRandomEntity(fields[1], fields[2], dist); err != nil {
		in.logger.Printf("script: warning: line %d: %v", idx+1, err)
	}
	return nil
}

func (in *Interpreter) execStructure(ctx context.Context, idx int, fields []string) error {
	if len(fields) != 3 {
		return newError(KindInvalidStatement, "STRUCTURE needs an id and a bounds distance")
	}
	dist, err := in.vars.Resolve(fields[2])
	if err != nil {
		return err
	}
	if err := in.host.PlaceStructure(ctx, fields[1], dist); err != nil {
		in.logger.Printf("script: warning: line %d: %v", idx+1, err)
	}
	return nil
}

func (in *Interpreter) resolveAll(tokens []string) ([]int, error) {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := in.vars.Resolve(tok)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// maxLineSize bounds a single script line.
const maxLineSize = 1 << 20

// Load reads a script into lines.
func Load(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "script: read")
	}
	return lines, nil
}

// Parse is Load for in-memory sources.
func Parse(src []byte) ([]string, error) {
	return Load(bytes.NewReader(src))
}
