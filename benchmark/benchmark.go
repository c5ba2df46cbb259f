// benchmark.go
// Measures execution time and memory usage of any wrapped command

package benchmark

import (
	"log"
	"os"
	"runtime"
	"time"
)

// Report is the resource usage of one wrapped run.
type Report struct {
	Label           string
	Elapsed         time.Duration
	MemUsedMB       float64
	TotalAllocMB    float64
	PeakHeapMB      float64
	GCCycles        uint32
	CPUCores        int
	GoroutinesStart int
	GoroutinesEnd   int
}

const mb = 1024.0 * 1024.0

// Run executes f, logs its resource usage with a [Benchmark] prefix and
// returns both the usage report and f's error.
func Run(label string, f func() error) (Report, error) {
	logger := log.New(os.Stderr, "[Benchmark] ", 0)
	logger.Printf("Running: %s", label)
	logger.Println("Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		logger.Println("Hostname:", host)
	}
	logger.Println("Go Version:", runtime.Version())
	logger.Printf("OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	rep := Report{Label: label, CPUCores: runtime.NumCPU(), GoroutinesStart: runtime.NumGoroutine()}
	start := time.Now()

	err := f()

	rep.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	rep.GoroutinesEnd = runtime.NumGoroutine()
	rep.MemUsedMB = (float64(memEnd.Alloc) - float64(memStart.Alloc)) / mb
	rep.TotalAllocMB = float64(memEnd.TotalAlloc-memStart.TotalAlloc) / mb
	rep.PeakHeapMB = float64(memEnd.HeapAlloc) / mb
	rep.GCCycles = memEnd.NumGC - memStart.NumGC

	logger.Printf("Time Elapsed: %v", rep.Elapsed)
	logger.Printf("Memory Used: %.2f MB", rep.MemUsedMB)
	logger.Printf("Total Allocated: %.2f MB", rep.TotalAllocMB)
	logger.Printf("Peak Heap: %.2f MB", rep.PeakHeapMB)
	logger.Printf("GC Cycles: %d", rep.GCCycles)
	logger.Printf("CPU Cores: %d", rep.CPUCores)
	logger.Printf("Goroutines Started: %d → %d", rep.GoroutinesStart, rep.GoroutinesEnd)
	logger.Println("----------------------------------------")
	return rep, err
}
