package main

import (
	"cmp"
	"fmt"
	"io"

	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/urfave/cli/v2"
)

var cmdShape = &cli.Command{
	Name:      "shape",
	Usage:     "insert values in the given order and print the links of the tree",
	ArgsUsage: `<value>...`,
	Action: func(cctx *cli.Context) error {
		kind := cctx.String("kind")
		if err := checkKind(kind); err != nil {
			return err
		}
		args := cctx.Args().Slice()
		if kind == kindWord {
			return printShape(cctx.App.Writer, args, parseWord)
		}
		return printShape(cctx.App.Writer, args, parseInt)
	},
}

func printShape[T cmp.Ordered](w io.Writer, args []string, parse func(string) (T, error)) error {
	tree := Trees.NewOrdered[T](uint32(len(args)))
	for _, a := range args {
		v, err := parse(a)
		if err != nil {
			return fmt.Errorf("parsing value %q: %w", a, err)
		}
		tree.Insert(v)
	}
	_, err := io.WriteString(w, tree.Shape())
	return err
}
