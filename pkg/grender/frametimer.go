package grender

// Frame time bookkeeping for the render loop. The display stage has no
// notion of a "slow frame" failure, only degraded throughput, so all we
// do is record durations and let the host log the percentiles.

import (
	"fmt"
	"time"

	"github.com/codahale/hdrhistogram"
)

type FrameTimer struct {
	hist *hdrhistogram.Histogram
}

func NewFrameTimer() *FrameTimer {
	// 10us .. 10s, microsecond units
	return &FrameTimer{hist: hdrhistogram.New(10, 10*1000*1000, 3)}
}

func (ft *FrameTimer) Record(d time.Duration) {
	ft.hist.RecordValue(d.Microseconds())
}

// Time wraps one frame render; use as `defer ft.Time()()`.
func (ft *FrameTimer) Time() func() {
	start := time.Now()
	return func() { ft.Record(time.Since(start)) }
}

func (ft *FrameTimer) String() string {
	if ft.hist.TotalCount() == 0 {
		return "no frames rendered"
	}
	return fmt.Sprintf("%d frames: p50 %.1fms, p99 %.1fms, max %.1fms",
		ft.hist.TotalCount(),
		float64(ft.hist.ValueAtQuantile(50))/1000.0,
		float64(ft.hist.ValueAtQuantile(99))/1000.0,
		float64(ft.hist.Max())/1000.0)
}
