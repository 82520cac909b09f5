package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/debug"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/event"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/load"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/solver"
	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "beesim",
		Short:        "交互式电路构建器的求解与调试入口",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				charmlog.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
	root.AddCommand(newSolveCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newServeCmd())
	return root
}

// newSolveCmd 载入文档求解一次并输出结果
func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <doc.yaml>",
		Short: "载入工作区文档并求解一次",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load.Load(args[0])
			if err != nil {
				return err
			}
			res := solver.Solve(g)
			logSummary(res)
			for _, id := range res.Graph.SortedIDs() {
				comp := res.Graph.Components[id]
				charmlog.Info("元件",
					"kind", comp.Kind.String(),
					"I", fmt.Sprintf("%.6g", comp.Current),
					"V", fmt.Sprintf("%.6g", comp.Voltage),
					"flowing", comp.Animated(),
					"overloaded", comp.Overloaded)
			}
			return nil
		},
	}
}

// newWatchCmd 监视文档变化并持续重解
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <doc.yaml>",
		Short: "监视文档变化,每次写入后重新求解",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := load.NewWatcher(args[0])
			if err != nil {
				return err
			}
			surface := event.NewSurface(watcher.Graph(), 0)
			surface.Subscribe(func(res solver.Result) { logSummary(res) })
			watcher.OnChange(func(g *types.Graph) {
				surface.Replace(g)
				surface.Push(event.Event{Type: event.StructuralChange})
			})
			stop, err := watcher.Watch()
			if err != nil {
				return err
			}
			defer stop()
			surface.Resolve()
			charmlog.Info("监视中", "path", args[0])
			<-cmd.Context().Done()
			return nil
		},
	}
}

// newServeCmd 启动调试网页与指标端点
func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve <doc.yaml>",
		Short: "发布求解曲线、连接图与指标的调试页面",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := load.NewWatcher(args[0])
			if err != nil {
				return err
			}
			record := debug.NewRecord()
			surface := event.NewSurface(watcher.Graph(), 0)
			surface.Subscribe(record.Update)
			surface.Subscribe(func(res solver.Result) { logSummary(res) })
			watcher.OnChange(func(g *types.Graph) {
				surface.Replace(g)
				surface.Push(event.Event{Type: event.StructuralChange})
			})
			stop, err := watcher.Watch()
			if err != nil {
				return err
			}
			defer stop()
			surface.Resolve()

			mux := http.NewServeMux()
			mux.HandleFunc("/", (&debug.Charts{Record: record}).Handler)
			mux.HandleFunc("/record", func(w http.ResponseWriter, _ *http.Request) {
				if err := record.Render(w); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
				}
			})
			mux.Handle("/metrics", promhttp.Handler())

			srv := &http.Server{Addr: addr, Handler: mux}
			go func() {
				<-cmd.Context().Done()
				srv.Close()
			}()
			charmlog.Info("调试页面", "addr", addr)
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8090", "监听地址")
	return cmd
}

func logSummary(res solver.Result) {
	s := res.Summary
	if !s.Active() {
		charmlog.Info("电路不活动", "Vsrc", s.VSrc)
		return
	}
	charmlog.Info("求解完成",
		"Vsrc", fmt.Sprintf("%.6g", s.VSrc),
		"Itot", fmt.Sprintf("%.6g", s.ITot),
		"Req", fmt.Sprintf("%.6g", s.REq),
		"Ptot", fmt.Sprintf("%.6g", s.PTot))
}
