package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and execution trace when the tick rate drops
type Profiler struct {
	mu          sync.Mutex
	capturing   bool
	lastCapture time.Time
	started     time.Time

	dir       string
	threshold float64       // capture when the measured TPS falls below this
	grace     time.Duration // ignore drops right after startup
	cooldown  time.Duration
	duration  time.Duration
}

// NewProfiler writes captures into dir. An empty dir disables profiling.
func NewProfiler(dir string, tps int) (*Profiler, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile dir: %w", err)
	}
	return &Profiler{
		started:   time.Now(),
		dir:       dir,
		threshold: float64(tps) * 0.9,
		grace:     3 * time.Second,
		cooldown:  10 * time.Second,
		duration:  5 * time.Second,
	}, nil
}

// Observe checks a measured tick rate and starts a capture on a drop.
// It reports whether a capture was started.
func (p *Profiler) Observe(tps float64, now time.Time) bool {
	if p == nil || !p.shouldCapture(tps, now) {
		return false
	}
	reason := fmt.Sprintf("tps%.0f", tps)
	log.Printf("[Profiler] Tick rate dropped to %.1f, capturing %s", tps, p.duration)
	if err := p.CaptureProfile(reason, now); err != nil {
		log.Printf("[Profiler] Warning: %v", err)
		return false
	}
	return true
}

func (p *Profiler) shouldCapture(tps float64, now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if tps <= 0 || tps >= p.threshold || p.capturing {
		return false
	}
	if now.Sub(p.started) < p.grace {
		return false
	}
	return p.lastCapture.IsZero() || now.Sub(p.lastCapture) >= p.cooldown
}

// CaptureProfile records a CPU profile and a trace in the background
func (p *Profiler) CaptureProfile(reason string, now time.Time) error {
	p.mu.Lock()
	if p.capturing {
		p.mu.Unlock()
		return errors.New("already profiling")
	}
	p.capturing = true
	p.lastCapture = now
	p.mu.Unlock()

	base := filepath.Join(p.dir, fmt.Sprintf("drop-%s-%s", now.Format("20060102-150405"), reason))
	go func() {
		defer func() {
			p.mu.Lock()
			p.capturing = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := capture(base+".cpu.prof", p.duration, pprof.StartCPUProfile, pprof.StopCPUProfile); err != nil {
				log.Printf("[Profiler] CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := capture(base+".trace", p.duration, trace.Start, trace.Stop); err != nil {
				log.Printf("[Profiler] Trace: %v", err)
			}
		}()
		wg.Wait()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Printf("[Profiler] Saved %s.* (alloc %d KB, sys %d KB, gc %d); view with: go tool pprof -http=:8080 %s.cpu.prof",
			base, m.Alloc/1024, m.Sys/1024, m.NumGC, base)
	}()
	return nil
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

func capture(path string, d time.Duration, start func(w io.Writer) error, stop func()) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := start(f); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	time.Sleep(d)
	stop()
	return nil
}
