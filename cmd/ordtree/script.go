package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/urfave/cli/v2"
)

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "apply operations to one tree and print the results",
	ArgsUsage: `<op>...`,
	Description: `Operations:
   +V      insert V
   -V      delete V, prints true or false
   ?V      prints whether V exists
   >V      prints the successor of V, or "none"
   <V      prints the predecessor of V, or "none"
   min     prints the minimum, or "none"
   max     prints the maximum, or "none"
   len     prints the number of values
   dump    prints the values in order
   shape   prints the links of the tree

   Put -- before the operations when the first one is a delete, so -V isn't read as a flag.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "name of the tree in dump output",
			Value: "tree",
		},
	},
	Action: func(cctx *cli.Context) error {
		kind := cctx.String("kind")
		if err := checkKind(kind); err != nil {
			return err
		}
		logger := configLogger(cctx)
		ops := cctx.Args().Slice()
		if kind == kindWord {
			tree := Trees.NewOrdered[string](uint32(len(ops))).Named(cctx.String("name"))
			return runScript(cctx.App.Writer, logger, tree, parseWord, ops)
		}
		tree := Trees.NewOrdered[int](uint32(len(ops))).Named(cctx.String("name"))
		return runScript(cctx.App.Writer, logger, tree, parseInt, ops)
	},
}

func printOptional[T any](w io.Writer, v T, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w, "none")
		return err
	}
	_, err := fmt.Fprintln(w, v)
	return err
}

// runScript applies ops in order and stops at the first malformed one.
func runScript[T cmp.Ordered](w io.Writer, logger *slog.Logger, tree *Trees.OrderedTree[T, uint32], parse func(string) (T, error), ops []string) error {
	for _, op := range ops {
		var err error
		switch op {
		case "min":
			v, ok := tree.Minimum()
			logger.Info("minimum", "value", v, "found", ok)
			err = printOptional(w, v, ok)
		case "max":
			v, ok := tree.Maximum()
			logger.Info("maximum", "value", v, "found", ok)
			err = printOptional(w, v, ok)
		case "len":
			_, err = fmt.Fprintln(w, tree.Size())
		case "dump":
			err = tree.Dump(w)
		case "shape":
			_, err = io.WriteString(w, tree.Shape())
		default:
			if len(op) < 2 || !strings.ContainsRune(valueOps, rune(op[0])) {
				return fmt.Errorf("unknown operation %q", op)
			}
			var v T
			if v, err = parse(op[1:]); err != nil {
				return fmt.Errorf("parsing operation %q: %w", op, err)
			}
			err = applyValueOp(w, logger, tree, op[0], v)
		}
		if err != nil {
			return fmt.Errorf("writing result of %q: %w", op, err)
		}
	}
	return nil
}

// valueOps are the op codes followed by a value.
const valueOps = "+-?><"

func applyValueOp[T cmp.Ordered](w io.Writer, logger *slog.Logger, tree *Trees.OrderedTree[T, uint32], code byte, v T) error {
	switch code {
	case '+':
		tree.Insert(v)
		logger.Info("inserted", "value", v, "size", tree.Size())
		return nil
	case '-':
		ok := tree.Remove(v)
		if ok {
			logger.Info("deleted", "value", v, "size", tree.Size())
		} else {
			logger.Info("not found in tree, nothing deleted", "value", v)
		}
		_, err := fmt.Fprintln(w, ok)
		return err
	case '?':
		ok := tree.Has(v)
		logger.Info("exists", "value", v, "found", ok)
		_, err := fmt.Fprintln(w, ok)
		return err
	case '>':
		s, ok := tree.Successor(v)
		logger.Info("successor", "of", v, "value", s, "found", ok)
		return printOptional(w, s, ok)
	case '<':
		p, ok := tree.Predecessor(v)
		logger.Info("predecessor", "of", v, "value", p, "found", ok)
		return printOptional(w, p, ok)
	}
	panic("unreachable: op code " + string(code))
}
