// Package replay applies line-oriented operation scripts to a
// graph-structured parse stack. Scripts drive the gss binary and make
// stack shapes reproducible outside a parser.
//
// Script syntax, one operation per line ('#' starts a comment):
//
//	size BYTES CHARS ROWS COLUMNS
//	push VERSION STATE [pending] [extra] [sym=N]
//	pop VERSION COUNT
//	pop-pending VERSION
//	merge
//	remove VERSION
//
// STATE is a non-negative integer or the word "error".
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/Michael-F-Bryan/tree-sitter/parse"
	"github.com/Michael-F-Bryan/tree-sitter/parse/stack"
)

var log = commonlog.GetLogger("gss.replay")

// Runner owns a stack and applies script operations to it.
type Runner struct {
	stack      *stack.Stack
	leafSize   parse.Length
	nextSymbol parse.SymbolID
}

// NewRunner creates a runner with an empty stack and a default leaf
// size of one byte, one char, one column.
func NewRunner() *Runner {
	return &Runner{
		stack:    stack.New(),
		leafSize: parse.Length{Bytes: 1, Chars: 1, Columns: 1},
	}
}

// Stack returns the runner's stack. It stays owned by the runner.
func (r *Runner) Stack() *stack.Stack {
	return r.stack
}

// Close releases the stack and everything it holds.
func (r *Runner) Close() {
	r.stack.Delete()
	r.stack = nil
}

// Run applies every operation in the script. It stops at the first
// invalid line.
func (r *Runner) Run(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := r.Apply(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

// Apply executes a single script line. Blank lines and comments are
// no-ops.
func (r *Runner) Apply(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	op, args := fields[0], fields[1:]
	switch op {
	case "size":
		return r.applySize(args)
	case "push":
		return r.applyPush(args)
	case "pop":
		return r.applyPop(args)
	case "pop-pending":
		return r.applyPopPending(args)
	case "merge":
		r.stack.Merge()
		log.Debugf("merged; versions=%d", r.stack.VersionCount())
		return nil
	case "remove":
		return r.applyRemove(args)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

func (r *Runner) applySize(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("size takes 4 components, got %d", len(args))
	}
	var components [4]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return fmt.Errorf("bad size component %q", arg)
		}
		components[i] = n
	}
	r.leafSize = parse.Length{
		Bytes:   components[0],
		Chars:   components[1],
		Rows:    components[2],
		Columns: components[3],
	}
	return nil
}

func (r *Runner) applyPush(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("push takes a version and a state")
	}
	version, err := r.version(args[0])
	if err != nil {
		return err
	}
	state, err := parseState(args[1])
	if err != nil {
		return err
	}

	pending := false
	symbol := r.nextSymbol
	opts := []parse.TreeOption{}
	for _, arg := range args[2:] {
		switch {
		case arg == "pending":
			pending = true
		case arg == "extra":
			opts = append(opts, parse.WithExtra())
		case strings.HasPrefix(arg, "sym="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "sym="))
			if err != nil || n < 0 {
				return fmt.Errorf("bad symbol %q", arg)
			}
			symbol = parse.SymbolID(n)
		default:
			return fmt.Errorf("unknown push modifier %q", arg)
		}
	}

	tree := parse.NewLeaf(symbol, r.leafSize, opts...)
	r.stack.Push(version, tree, pending, state)
	tree.Release()
	r.nextSymbol = symbol + 1

	log.Debugf("pushed version=%d state=%d sym=%d pending=%t", version, state, symbol, pending)
	return nil
}

func (r *Runner) applyPop(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("pop takes a version and a count")
	}
	version, err := r.version(args[0])
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 0 {
		return fmt.Errorf("bad pop count %q", args[1])
	}

	result := r.stack.PopCount(version, count)
	logPop("pop", result)
	result.Release()
	return nil
}

func (r *Runner) applyPopPending(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("pop-pending takes a version")
	}
	version, err := r.version(args[0])
	if err != nil {
		return err
	}

	result := r.stack.PopPending(version)
	logPop("pop-pending", result)
	result.Release()
	return nil
}

func (r *Runner) applyRemove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("remove takes a version")
	}
	version, err := r.version(args[0])
	if err != nil {
		return err
	}
	r.stack.RemoveVersion(version)
	log.Debugf("removed version=%d; versions=%d", version, r.stack.VersionCount())
	return nil
}

func (r *Runner) version(arg string) (stack.Version, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n >= r.stack.VersionCount() {
		return 0, fmt.Errorf("bad version %q", arg)
	}
	return stack.Version(n), nil
}

func parseState(arg string) (parse.StateID, error) {
	if arg == "error" {
		return parse.ErrorState, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n >= int(parse.ErrorState) {
		return 0, fmt.Errorf("bad state %q", arg)
	}
	return parse.StateID(n), nil
}

func logPop(op string, result stack.PopResult) {
	for _, slice := range result.Slices {
		symbols := make([]string, len(slice.Trees))
		for i, tree := range slice.Trees {
			symbols[i] = strconv.Itoa(int(tree.Symbol))
		}
		log.Debugf("%s status=%d version=%d trees=[%s]",
			op, result.Status, slice.Version, strings.Join(symbols, " "))
	}
	if len(result.Slices) == 0 {
		log.Debugf("%s status=%d no slices", op, result.Status)
	}
}
