package cmd

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/spiffcs/punchcard/internal/log"
)

// ProfileOptions names the output files for each profile. Empty paths
// disable the corresponding profile.
type ProfileOptions struct {
	CPU   string
	Mem   string
	Trace string
}

// Profiler manages CPU, memory, and trace profiling of batch parsing.
type Profiler struct {
	opts      ProfileOptions
	cpuFile   *os.File
	traceFile *os.File
}

// NewProfiler creates a new profiler.
func NewProfiler(opts ProfileOptions) *Profiler {
	return &Profiler{opts: opts}
}

// Start begins CPU profiling and execution tracing if configured.
func (p *Profiler) Start() error {
	if p.opts.CPU != "" {
		f, err := os.Create(p.opts.CPU)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			closeFile(f, "CPU profile")
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		p.cpuFile = f
		log.Debug("cpu profiling started", "path", p.opts.CPU)
	}

	if p.opts.Trace != "" {
		f, err := os.Create(p.opts.Trace)
		if err != nil {
			p.stopCPU()
			return fmt.Errorf("could not create trace: %w", err)
		}
		if err := trace.Start(f); err != nil {
			closeFile(f, "trace")
			p.stopCPU()
			return fmt.Errorf("could not start trace: %w", err)
		}
		p.traceFile = f
		log.Debug("execution trace started", "path", p.opts.Trace)
	}

	return nil
}

// Stop ends all profiling and writes the memory profile if configured.
func (p *Profiler) Stop() {
	if p.traceFile != nil {
		trace.Stop()
		closeFile(p.traceFile, "trace")
		p.traceFile = nil
	}

	p.stopCPU()

	if p.opts.Mem == "" {
		return
	}
	f, err := os.Create(p.opts.Mem)
	if err != nil {
		log.Warn("could not create memory profile", "error", err)
		return
	}
	defer closeFile(f, "memory profile")

	runtime.GC() // Get up-to-date statistics
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Warn("could not write memory profile", "error", err)
	}
}

func (p *Profiler) stopCPU() {
	if p.cpuFile == nil {
		return
	}
	pprof.StopCPUProfile()
	closeFile(p.cpuFile, "CPU profile")
	p.cpuFile = nil
}

func closeFile(f *os.File, what string) {
	if err := f.Close(); err != nil {
		log.Warn("could not close "+what+" file", "error", err)
	}
}
