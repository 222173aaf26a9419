// Command complexbench times the batch kernels of each strategy.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"time"

	algocomplex "github.com/cwbudde/algo-complex"
	"github.com/cwbudde/algo-complex/internal/cpu"
)

const (
	modeMul   = "mul"
	modeAdd   = "add"
	modeScale = "scale"
)

type benchResult struct {
	strategy algocomplex.KernelStrategy
	nsPerOp  float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "64,1024,16384,262144", "comma-separated sizes")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		mode     = flag.String("mode", modeMul, "benchmark mode: mul, add, scale, all")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	defer algocomplex.SetKernelStrategy(algocomplex.KernelAuto)

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s avx2=%v neon=%v iters=%d warmup=%d\n",
		features.Architecture, features.HasAVX2, features.HasNEON, *iters, *warmup)
	fmt.Printf("%8s  %6s  %10s  %12s  %10s\n", "size", "mode", "kernel", "ns/op", "ns/elem")

	for _, n := range sizes {
		for _, runMode := range resolveModes(*mode) {
			results := benchmarkSize(rnd, n, *iters, *warmup, runMode)

			sort.Slice(results, func(i, j int) bool {
				return results[i].nsPerOp < results[j].nsPerOp
			})

			for _, res := range results {
				fmt.Printf("%8d  %6s  %10s  %12.1f  %10.3f\n",
					n, runMode, res.strategy, res.nsPerOp, res.nsPerOp/float64(n))
			}
		}
	}
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int, mode string) []benchResult {
	a := make([]algocomplex.Complex, n)
	b := make([]algocomplex.Complex, n)

	for i := range a {
		a[i] = algocomplex.New(rnd.Float64(), rnd.Float64())
		b[i] = algocomplex.New(rnd.Float64(), rnd.Float64())
	}

	dst := make([]algocomplex.Complex, n)

	strategies := []algocomplex.KernelStrategy{
		algocomplex.KernelGeneric,
		algocomplex.KernelUnrolled,
	}

	results := make([]benchResult, 0, len(strategies))

	for _, strategy := range strategies {
		algocomplex.SetKernelStrategy(strategy)

		ok := true

		for i := 0; i < warmup; i++ {
			if err := runMode(dst, a, b, mode); err != nil {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		runtime.GC()

		start := time.Now()

		for i := 0; i < iters; i++ {
			if err := runMode(dst, a, b, mode); err != nil {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		elapsed := time.Since(start)

		results = append(results, benchResult{
			strategy: strategy,
			nsPerOp:  float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	algocomplex.SetKernelStrategy(algocomplex.KernelAuto)

	return results
}

func runMode(dst, a, b []algocomplex.Complex, mode string) error {
	switch mode {
	case modeAdd:
		return algocomplex.AddSlices(dst, a, b)
	case modeScale:
		return algocomplex.ScaleSlice(dst, a, 0.5)
	default:
		return algocomplex.MulSlices(dst, a, b)
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeMul, modeAdd, modeScale}
	case modeMul, modeAdd, modeScale:
		return []string{mode}
	default:
		return []string{modeMul}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
