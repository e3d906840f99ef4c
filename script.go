package btreeviz

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/btreeviz/btree"
)

// Command is a single operation of a script.
type Command struct {
	Op       btree.Op
	Value    int
	NewValue int // for updates only
}

var opLetters = map[byte]btree.Op{
	'i': btree.OpInsert,
	'd': btree.OpDelete,
	's': btree.OpSearch,
	'u': btree.OpUpdate,
}

func (c Command) String() string {
	switch c.Op {
	case btree.OpInsert:
		return fmt.Sprintf("i%d", c.Value)
	case btree.OpDelete:
		return fmt.Sprintf("d%d", c.Value)
	case btree.OpSearch:
		return fmt.Sprintf("s%d", c.Value)
	case btree.OpUpdate:
		return fmt.Sprintf("u%d:%d", c.Value, c.NewValue)
	}
	return "?"
}

// Apply executes c on tree. It returns the outcome of the operation; inserts
// always succeed.
func (c Command) Apply(tree *btree.Tree[int]) bool {
	switch c.Op {
	case btree.OpInsert:
		tree.Insert(c.Value)
		return true
	case btree.OpDelete:
		return tree.Delete(c.Value)
	case btree.OpSearch:
		return tree.Search(c.Value)
	case btree.OpUpdate:
		return tree.Update(c.Value, c.NewValue)
	}
	panic(fmt.Sprintf("btreeviz: command with invalid operation %v", c.Op))
}

// ParseScript parses a script of tree operations. Commands are separated by
// white space, commas or semicolons:
//
//	i10    insert 10
//	d10    delete 10
//	s99    search for 99
//	u5:7   update 5 to 7
//
// Values may be negative. Parse errors wrap ErrSyntax.
func ParseScript(script string) ([]Command, error) {
	tokens := strings.FieldsFunc(script, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';'
	})
	cmds := make([]Command, 0, len(tokens))
	for _, tok := range tokens {
		cmd, err := parseCommand(tok)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	tracer().Debugf("parsed script with %d commands", len(cmds))
	return cmds, nil
}

func parseCommand(tok string) (Command, error) {
	op, ok := opLetters[tok[0]|0x20] // lower case
	if !ok || len(tok) < 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrSyntax, tok)
	}
	cmd := Command{Op: op}
	arg := tok[1:]
	var err error
	if op == btree.OpUpdate {
		from, to, found := strings.Cut(arg, ":")
		if !found {
			return Command{}, fmt.Errorf("%w: update %q needs old:new", ErrSyntax, tok)
		}
		if cmd.Value, err = strconv.Atoi(from); err == nil {
			cmd.NewValue, err = strconv.Atoi(to)
		}
	} else {
		cmd.Value, err = strconv.Atoi(arg)
	}
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q: %v", ErrSyntax, tok, err)
	}
	return cmd, nil
}

// Run applies all commands to tree, in order, and returns their outcomes.
func Run(tree *btree.Tree[int], cmds []Command) []bool {
	results := make([]bool, len(cmds))
	for i, cmd := range cmds {
		results[i] = cmd.Apply(tree)
		tracer().P("cmd", cmd).Debugf("-> %v", results[i])
	}
	return results
}

// Inserts returns a script inserting values in order.
func Inserts(values []int) []Command {
	cmds := make([]Command, len(values))
	for i, v := range values {
		cmds[i] = Command{Op: btree.OpInsert, Value: v}
	}
	return cmds
}
