package debug

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 求解指标,由事件面在每次求解时更新,serve 命令经 /metrics 暴露
var (
	SolvesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beesim_solves_total",
		Help: "累计求解次数",
	})

	EventsCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beesim_value_events_coalesced_total",
		Help: "进入合并窗口的数值变化事件数",
	})

	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "beesim_solve_duration_us",
		Help:    "单次求解耗时(微秒)",
		Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	})
)
