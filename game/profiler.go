package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"
)

// ErrProfiling is returned when a capture is requested while one is running
var ErrProfiling = errors.New("already profiling")

// Profiler captures CPU profiles on demand without blocking the frame loop
type Profiler struct {
	mu          sync.Mutex
	isProfiling bool
	profilesDir string
	duration    time.Duration
	logger      *log.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, duration time.Duration, logger *log.Logger) *Profiler {
	if logger == nil {
		logger = log.Default()
	}
	return &Profiler{
		profilesDir: dir,
		duration:    duration,
		logger:      logger,
	}
}

// Profiling reports whether a capture is in progress
func (p *Profiler) Profiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Capture starts a CPU profile in the background and returns its path
func (p *Profiler) Capture(reason string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return "", ErrProfiling
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create profiles dir: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(p.profilesDir, fmt.Sprintf("snake-%s-%s.cpu.prof", timestamp, reason))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to start CPU profile: %w", err)
	}

	p.isProfiling = true
	go func() {
		time.Sleep(p.duration)
		pprof.StopCPUProfile()
		file.Close()

		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()

		p.logger.Printf("CPU profile saved to: %s (view with: go tool pprof -http=:8080 %s)", path, path)
	}()

	return path, nil
}
