// Command bench drives the container benchmark shims and prints
// wall-clock timings per operation.
//
// Usage:
//
//	go run ./cmd/bench vector -n 100000
//	go run ./cmd/bench hashmap -n 1000000 --reserve --custom
//	go run ./cmd/bench all -n 100000 --repeat 5
//
// Statistics belong to go test -bench; this command exists for quick
// wall-clock comparisons at sizes of your choosing.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/go-container-benchmarks/internal/driver"
)

var (
	flagN       int
	flagRepeat  int
	flagReserve bool
	flagCustom  bool
)

func main() {
	root := &cobra.Command{
		Use:   "bench",
		Short: "Container benchmark driver",
		Long: "bench times the container shims (vector, deque, sortedmap, hashmap,\n" +
			"hashset, pqueue, binheap, bitvector, hashing) over generated inputs\n" +
			"and prints per-operation wall-clock results.",
	}
	root.PersistentFlags().IntVarP(&flagN, "count", "n", 100_000, "number of elements per run")
	root.PersistentFlags().IntVar(&flagRepeat, "repeat", 1, "number of full passes over the suite")
	root.PersistentFlags().BoolVar(&flagReserve, "reserve", false, "pre-reserve capacity before bulk inserts")
	root.PersistentFlags().BoolVar(&flagCustom, "custom", false, "use the pluggable-hash map backing")

	for name, suite := range suites {
		root.AddCommand(subjectCommand(name, suite))
	}
	root.AddCommand(allCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func subjectCommand(name string, suite func()) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: "Benchmark the " + name + " shim",
		Run: func(cmd *cobra.Command, args []string) {
			runSuite(name, suite)
		},
	}
}

func allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Benchmark every shim",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range suiteOrder {
				runSuite(name, suites[name])
			}
		},
	}
}

// runSuite runs one subject's suite flagRepeat times, printing progress
// between passes and stopping early on Ctrl-C.
func runSuite(name string, suite func()) {
	fmt.Printf("%s (n=%d, reserve=%v)\n", name, flagN, flagReserve)
	intr := driver.SharedInterrupt()
	prog := driver.NewProgress(time.Second, 1)
	for pass := 0; pass < flagRepeat; pass++ {
		if intr.Stopped() {
			fmt.Println("  interrupted")
			return
		}
		suite()
		if flagRepeat > 1 && prog.Tick() {
			fmt.Printf("  pass %d/%d\n", pass+1, flagRepeat)
		}
	}
}

// timeOp times a single bulk call and prints its per-element cost.
func timeOp(name string, n int, f func()) {
	start := time.Now()
	f()
	d := time.Since(start)
	fmt.Printf("  %-28s %12v  %10.2f ns/elem\n", name, d, float64(d.Nanoseconds())/float64(n))
}

// ============================================================================
// Input generation
//
// Deterministic seed: runs are comparable across invocations.
// ============================================================================

func rng() *rand.Rand {
	return rand.New(rand.NewPCG(0xbadc0ffee, 0x1234))
}

// shuffledRange returns a permutation of 0..n-1.
func shuffledRange(n int) []int {
	return rng().Perm(n)
}

// disjointKeys returns a shuffled n..2n-1, guaranteed absent from any
// container built over shuffledRange(n).
func disjointKeys(n int) []int {
	out := rng().Perm(n)
	for i := range out {
		out[i] += n
	}
	return out
}

// insertionIndices returns a scripted positional-insert sequence:
// indices[i] is a valid position in a container that already holds i
// elements.
func insertionIndices(n int) []int {
	r := rng()
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(i + 1)
	}
	return out
}

// removalIndices returns a scripted positional-removal sequence for a
// container starting at n elements: indices[i] is a valid position in a
// container that has n-i elements left.
func removalIndices(n int) []int {
	r := rng()
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(n - i)
	}
	return out
}

// randomIndices returns n positions uniformly drawn from [0, limit).
func randomIndices(n, limit int) []int {
	r := rng()
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(limit)
	}
	return out
}

// randomBools returns n coin flips.
func randomBools(n int) []bool {
	r := rng()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.IntN(2) == 1
	}
	return out
}
