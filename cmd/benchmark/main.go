package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/DexerMatters/reactivity/derive"
	"github.com/DexerMatters/reactivity/shared"
	"github.com/DexerMatters/reactivity/solo"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkSolo(true)
	benchmarkShared(true)
}

func addOne(v int) int {
	return v + 1
}

func benchmarkSolo(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("solo signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := solo.New(1)
			for i := 0; i < w; i++ {
				var last derive.Dep[int] = src
				for j := 0; j < h; j++ {
					last = derive.Driven1(last, addOne, nil)
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Update(src.Get() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkShared(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("shared signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := shared.New(1)
			for i := 0; i < w; i++ {
				var last derive.Dep[int] = src
				for j := 0; j < h; j++ {
					last = derive.SyncDriven1(last, addOne, nil)
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Update(src.Get() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
