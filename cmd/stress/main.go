// Stress harness for the shared variant: many goroutines hammer one
// source signal feeding a derived chain, then the invariants are checked
// once everything joins. The final value must be exactly one of the sent
// values (never torn) and every dirty counter must be back at zero.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/DexerMatters/reactivity/derive"
	"github.com/DexerMatters/reactivity/shared"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	goroutinesKey = "goroutines"
	sendsKey      = "sends"
	depthKey      = "depth"
)

func main() {
	cmd := &cli.Command{
		Name:  "stress",
		Usage: "Hammer one shared signal graph from many goroutines",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  goroutinesKey,
				Usage: "Number of concurrent senders",
				Value: 16,
			},
			&cli.UintFlag{
				Name:  sendsKey,
				Usage: "Sends per goroutine",
				Value: 10_000,
			},
			&cli.UintFlag{
				Name:  depthKey,
				Usage: "Derived chain depth below the source",
				Value: 8,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	goroutines := int(cmd.Uint(goroutinesKey))
	sends := int(cmd.Uint(sendsKey))
	depth := int(cmd.Uint(depthKey))
	if goroutines < 1 || sends < 1 || depth < 1 {
		return fmt.Errorf("goroutines, sends and depth must all be at least 1")
	}

	src := shared.New(0)
	var last derive.Dep[int] = src
	chain := make([]*shared.Signal[int], 0, depth)
	for i := 0; i < depth; i++ {
		s := derive.SyncDriven1(last, func(v int) int { return v + 1 }, nil)
		chain = append(chain, s)
		last = s
	}

	log.Printf("stressing: %d goroutines x %s sends, chain depth %d",
		goroutines, humanize.Comma(int64(sends)), depth)

	start := time.Now()
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < sends; i++ {
				src.Update(g*sends + i)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	final := src.Get()
	inRange := final >= 0 && final < goroutines*sends

	residual := 0
	for _, s := range chain {
		residual += s.Dirty()
	}
	tail := chain[len(chain)-1].Get()

	total := int64(goroutines) * int64(sends)
	rate := int64(float64(total) / elapsed.Seconds())

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"metric", "value"})
	tbl.Append([]string{"total sends", humanize.Comma(total)})
	tbl.Append([]string{"elapsed", elapsed.String()})
	tbl.Append([]string{"sends/sec", humanize.Comma(rate)})
	tbl.Append([]string{"final source value", humanize.Comma(int64(final))})
	tbl.Append([]string{"final tail value", humanize.Comma(int64(tail))})
	tbl.Append([]string{"residual dirty", humanize.Comma(int64(residual))})
	tbl.Render()

	if !inRange {
		return fmt.Errorf("final value %d is not one of the sent values", final)
	}
	if residual != 0 {
		return fmt.Errorf("residual dirty count %d after all waves settled", residual)
	}
	return nil
}
