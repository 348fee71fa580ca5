// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Command hlbench runs a glider for a fixed number of generations and
// reports the wall-clock time of each run, in the spirit of the
// teacher's benchs/main.go micro-benchmark driver.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jimblandy/golly-sub005"
	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	var rule string
	var steps uint64
	var increment uint64
	var maxNodes int
	var jobs int

	root := &cobra.Command{
		Use:   "hlbench",
		Short: "Benchmark the golly HashLife engine against a glider pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("cpu: %s (%d logical cores, AVX2=%v)\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, cpuid.CPU.Supports(cpuid.AVX2))

			var g errgroup.Group
			results := make([]time.Duration, jobs)
			for i := 0; i < jobs; i++ {
				i := i
				g.Go(func() error {
					d, err := runOnce(rule, steps, increment, maxNodes)
					results[i] = d
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for i, d := range results {
				fmt.Printf("run %d: %s\n", i, d)
			}
			return nil
		},
	}
	root.Flags().StringVar(&rule, "rule", "B3/S23", "rule string")
	root.Flags().Uint64Var(&steps, "steps", 1024, "total generations to advance")
	root.Flags().Uint64Var(&increment, "increment", 1, "generations per Step call")
	root.Flags().IntVar(&maxNodes, "max-nodes", 0, "soft node ceiling before auto-GC (0 = unlimited)")
	root.Flags().IntVar(&jobs, "jobs", 1, "independent concurrent runs")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runOnce(rule string, steps, increment uint64, maxNodes int) (time.Duration, error) {
	e := golly.NewEngine(golly.WithMaxNodes(maxNodes))
	if err := e.SetRule(rule); err != nil {
		return 0, err
	}
	// Glider: a minimal, well-known spaceship.
	cells := [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, c := range cells {
		e.SetCell(c[0], c[1], 1)
	}
	e.SetIncrement(golly.NatFromUint64(increment))

	start := time.Now()
	for done := uint64(0); done < steps; done += increment {
		if err := e.Step(); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}
