package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	logDateLayout    = "2006-01-02"
	maxRetentionDays = 7
)

// dailyLog mirrors the standard logger to stdout and a per-day file under dir,
// pruning files older than the retention window whenever the day rolls over.
type dailyLog struct {
	dir       string
	retention int

	mu   sync.Mutex
	day  string
	file *os.File
}

func setupLogger() (func(), error) {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "storage/logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	dl := &dailyLog{dir: dir, retention: retentionDays(os.Getenv("LOG_RETENTION_DAYS"))}
	if err := dl.rotate(time.Now()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go dl.watch(ctx)
	return func() {
		cancel()
		dl.mu.Lock()
		_ = dl.file.Close()
		dl.mu.Unlock()
	}, nil
}

func retentionDays(raw string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || parsed <= 0 {
		return maxRetentionDays
	}
	if parsed > maxRetentionDays {
		return maxRetentionDays
	}
	return parsed
}

func (dl *dailyLog) watch(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			if err := dl.rotate(now); err != nil {
				log.Printf("log rotate: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// rotate opens the file for now's date if it is not already open.
func (dl *dailyLog) rotate(now time.Time) error {
	day := now.Format(logDateLayout)
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if day == dl.day {
		return nil
	}
	name := filepath.Join(dl.dir, fmt.Sprintf("club-%s.log", day))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
	if dl.file != nil {
		_ = dl.file.Close()
	}
	dl.file = file
	dl.day = day
	pruneLogs(dl.dir, now.AddDate(0, 0, -(dl.retention-1)))
	return nil
}

func pruneLogs(dir string, cutoff time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoffDay := cutoff.Format(logDateLayout)
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !strings.HasPrefix(name, "club-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		day := strings.TrimSuffix(strings.TrimPrefix(name, "club-"), ".log")
		if _, err := time.Parse(logDateLayout, day); err != nil {
			continue
		}
		if day < cutoffDay {
			_ = os.Remove(filepath.Join(dir, name))
		}
	}
}
