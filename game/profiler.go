package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	errCaptureCooldown = errors.New("profile capture on cooldown")
	errCaptureRunning  = errors.New("profile capture already running")
)

// Profiler writes a CPU profile and an execution trace when the frame rate
// stalls. Captures run on a goroutine and never touch simulation state.
type Profiler struct {
	mu        sync.Mutex
	capturing bool
	lastStart time.Time

	dir      string
	cooldown time.Duration
	duration time.Duration
}

// NewProfiler creates a profiler writing into dir.
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		dir:      dir,
		cooldown: 30 * time.Second,
		duration: 5 * time.Second,
	}
}

// Capturing reports whether a capture is in progress.
func (p *Profiler) Capturing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

// Capture starts a background capture tagged with reason.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.capturing {
		return errCaptureRunning
	}
	if !p.lastStart.IsZero() && time.Since(p.lastStart) < p.cooldown {
		return errCaptureCooldown
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("profile dir: %w", err)
	}
	p.capturing = true
	p.lastStart = time.Now()
	base := fmt.Sprintf("stall-%s-%s", p.lastStart.Format("20060102-150405"), reason)

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
			if err := p.cpuProfile(base); err != nil {
				log.Printf("profiler: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.trace(base); err != nil {
				log.Printf("profiler: %v", err)
			}
		}()
		wg.Wait()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Printf("profiler: %s done (heap %d KB, %d GCs); inspect with go tool pprof -http=:8080 %s",
			base, m.HeapAlloc/1024, m.NumGC, filepath.Join(p.dir, base+".cpu.prof"))
	}()
	return nil
}

func (p *Profiler) cpuProfile(base string) error {
	f, err := os.Create(filepath.Join(p.dir, base+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.duration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) trace(base string) error {
	f, err := os.Create(filepath.Join(p.dir, base+".trace"))
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer f.Close()
	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.duration)
	trace.Stop()
	return nil
}

// FrameMonitor measures the frame rate over half-second windows and reports
// stalls below a threshold once the warmup has passed.
type FrameMonitor struct {
	Threshold float64
	Warmup    float64

	fps     float64
	frames  int
	window  float64
	elapsed float64
}

// NewFrameMonitor creates a monitor flagging windows below threshold FPS.
func NewFrameMonitor(threshold float64) *FrameMonitor {
	return &FrameMonitor{Threshold: threshold, Warmup: 3, fps: 60}
}

// FPS returns the rate measured over the last complete window.
func (m *FrameMonitor) FPS() float64 {
	return m.fps
}

// Tick records one frame of dt seconds. It returns true when a window just
// closed below the threshold.
func (m *FrameMonitor) Tick(dt float64) bool {
	m.elapsed += dt
	m.window += dt
	m.frames++
	if m.window < 0.5 {
		return false
	}
	m.fps = float64(m.frames) / m.window
	m.frames, m.window = 0, 0
	return m.elapsed >= m.Warmup && m.fps < m.Threshold
}
