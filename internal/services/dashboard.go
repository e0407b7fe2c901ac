package services

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/store"

	"github.com/gorilla/websocket"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const maxHistory = 500

// hostUsage fills the host resource fields of a sample. Readings that fail
// leave their fields at zero.
func hostUsage(sample *models.DashboardSample, diskPath string) {
	if memStat, err := mem.VirtualMemory(); err == nil {
		sample.SystemMemoryTotal = int64(memStat.Total)
		sample.SystemMemoryUsed = int64(memStat.Total - memStat.Available)
	}
	diskStat, err := disk.Usage(diskPath)
	if err != nil {
		diskStat, err = disk.Usage("/")
	}
	if err == nil {
		sample.DiskTotalBytes = int64(diskStat.Total)
		sample.DiskUsedBytes = int64(diskStat.Used)
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if perc, err := proc.CPUPercent(); err == nil {
			sample.ProcessCpuLoad = perc / 100.0
		}
	}
	if sys, err := cpu.Percent(0, false); err == nil && len(sys) > 0 {
		sample.SystemCpuLoad = sys[0] / 100.0
	}
}

type DashboardStats struct {
	stats    store.Stats
	clock    Clock
	diskPath string
}

func NewDashboardStats(stats store.Stats, clock Clock, diskPath string) *DashboardStats {
	if clock == nil {
		clock = RealClock{}
	}
	if diskPath == "" {
		diskPath = "/"
	}
	return &DashboardStats{stats: stats, clock: clock, diskPath: diskPath}
}

// Capture aggregates the counters with host usage and stores the sample.
func (d *DashboardStats) Capture(ctx context.Context) (models.DashboardSample, error) {
	counts, err := d.stats.Counts(ctx)
	if err != nil {
		return models.DashboardSample{}, WrapError(err, "capture counts")
	}
	sample := models.DashboardSample{DashboardCounts: counts, CapturedAt: d.clock.Now()}
	hostUsage(&sample, d.diskPath)
	if err := d.stats.SaveSample(ctx, sample); err != nil {
		return models.DashboardSample{}, WrapError(err, "save sample")
	}
	return sample, nil
}

func (d *DashboardStats) History(ctx context.Context, limit int) ([]models.DashboardSample, error) {
	if limit <= 0 {
		limit = 120
	}
	if limit > maxHistory {
		limit = maxHistory
	}
	items, err := d.stats.LatestSamples(ctx, limit)
	if err != nil {
		log.Printf("dashboard history: %v", err)
		return nil, ErrBackendUnavailable
	}
	return items, nil
}

const dashboardWriteWait = 5 * time.Second

// DashboardConn is the part of a websocket connection the hub writes to.
type DashboardConn interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v interface{}) error
	Close() error
}

var _ DashboardConn = (*websocket.Conn)(nil)

// DashboardHub fans dashboard samples out to connected admin sockets.
type DashboardHub struct {
	mu      sync.Mutex
	clients map[DashboardConn]bool
	ch      chan models.DashboardSample
}

func NewDashboardHub() *DashboardHub {
	return &DashboardHub{
		clients: map[DashboardConn]bool{},
		ch:      make(chan models.DashboardSample, 16),
	}
}

func (h *DashboardHub) Run(ctx context.Context) {
	for {
		select {
		case sample := <-h.ch:
			h.send(sample)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// send writes outside the lock; a client that misses the write deadline is dropped.
func (h *DashboardHub) send(sample models.DashboardSample) {
	h.mu.Lock()
	conns := make([]DashboardConn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(dashboardWriteWait))
		if err := conn.WriteJSON(sample); err != nil {
			h.Remove(conn)
			_ = conn.Close()
		}
	}
}

func (h *DashboardHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// Broadcast drops the sample when the queue is full.
func (h *DashboardHub) Broadcast(sample models.DashboardSample) {
	select {
	case h.ch <- sample:
	default:
	}
}

func (h *DashboardHub) Add(conn DashboardConn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *DashboardHub) Remove(conn DashboardConn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *DashboardHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
