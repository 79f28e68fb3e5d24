// benchmark.go
// A reusable benchmarking module for Genome Forge
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// Result captures one benchmarked run for callers that want the numbers
// instead of (or as well as) the printed report.
type Result struct {
	Label          string
	Elapsed        time.Duration
	AllocMB        float64
	TotalAllocMB   float64
	PeakHeapMB     float64
	GCCycles       uint32
	CPUCores       int
	GoroutineDelta int
}

// Run wraps any function to measure its runtime and memory usage.
func Run(label string, f func()) Result {
	fmt.Printf("[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Println("[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	host, err := os.Hostname()
	if err == nil {
		fmt.Println("[Benchmark] Hostname:", host)
	}
	fmt.Println("[Benchmark] Go Version:", runtime.Version())
	fmt.Printf("[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	numCPU := runtime.NumCPU()
	startGoroutines := runtime.NumGoroutine()

	// Run benchmarked function
	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	res := Result{
		Label:          label,
		Elapsed:        elapsed,
		AllocMB:        float64(memEnd.Alloc-memStart.Alloc) / 1024.0 / 1024.0,
		TotalAllocMB:   float64(memEnd.TotalAlloc-memStart.TotalAlloc) / 1024.0 / 1024.0,
		PeakHeapMB:     float64(memEnd.HeapAlloc) / 1024.0 / 1024.0,
		GCCycles:       memEnd.NumGC - memStart.NumGC,
		CPUCores:       numCPU,
		GoroutineDelta: endGoroutines - startGoroutines,
	}

	// Report resource usage
	fmt.Printf("[Benchmark] Time Elapsed: %v\n", res.Elapsed)
	fmt.Printf("[Benchmark] Memory Used: %.2f MB\n", res.AllocMB)
	fmt.Printf("[Benchmark] Total Allocated: %.2f MB\n", res.TotalAllocMB)
	fmt.Printf("[Benchmark] Peak Heap: %.2f MB\n", res.PeakHeapMB)
	fmt.Printf("[Benchmark] GC Cycles: %d\n", res.GCCycles)
	fmt.Printf("[Benchmark] CPU Cores: %d\n", res.CPUCores)
	fmt.Printf("[Benchmark] Goroutines Started: %d → %d\n", startGoroutines, endGoroutines)
	fmt.Println("[Benchmark] ----------------------------------------")

	return res
}
