package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/urfave/cli/v2"
)

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "build trees three ways from the same random values and cross check them",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of random values",
			Value:   15,
			EnvVars: []string{"ORDTREE_COUNT"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed, 0 picks one from the clock",
			EnvVars: []string{"ORDTREE_SEED"},
		},
	},
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	logger := configLogger(cctx)
	kind := cctx.String("kind")
	if err := checkKind(kind); err != nil {
		return err
	}
	n := cctx.Int("count")
	if n < 0 {
		return fmt.Errorf("count must not be negative, got %d", n)
	}
	seed := cctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting demo", "kind", kind, "count", n, "seed", seed)

	if kind == kindWord {
		return demo(cctx.App.Writer, logger, randomWords(seed, n))
	}
	return demo(cctx.App.Writer, logger, randomInts(seed, n))
}

// demo inserts vs one by one, as a slice and as a sequence, then checks
// every value is found in all three trees.
func demo[T cmp.Ordered](w io.Writer, logger *slog.Logger, vs []T) error {
	manual := Trees.NewOrdered[T](uint32(len(vs))).Named("one by one")
	for _, v := range vs {
		manual.Insert(v)
		logger.Debug("inserted", "tree", manual.Name(), "value", v)
	}
	fromSlice := Trees.NewOrdered[T](uint32(len(vs))).Named("from slice")
	fromSlice.InsertAll(vs...)
	fromSeq := Trees.NewOrdered[T](uint32(len(vs))).Named("from sequence")
	fromSeq.InsertSeq(slices.Values(vs))

	errorCount := 0
	for _, v := range vs {
		if !(manual.Has(v) && fromSlice.Has(v) && fromSeq.Has(v)) {
			logger.Warn("value missing", "value", v)
			errorCount++
		}
	}
	for _, t := range []*Trees.OrderedTree[T, uint32]{manual, fromSlice, fromSeq} {
		if t.Corrupt() {
			logger.Error("tree is corrupt", "tree", t.Name())
			errorCount++
		}
	}
	logger.Info("demo finished", "error_count", errorCount, "height", fromSlice.Height())

	if _, err := fmt.Fprintf(w, "error_count: %d\n", errorCount); err != nil {
		return err
	}
	if err := fromSlice.Dump(w); err != nil {
		return err
	}
	if errorCount > 0 {
		return fmt.Errorf("%d inconsistencies between the trees", errorCount)
	}
	return nil
}
