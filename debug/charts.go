package debug

import (
	"io"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	*Record
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	// 初始化连接图
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "电路节点信息",
			Subtitle: "电路连接节点网络图",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
	)
	lineV := newLine("电压曲线", "各元件电压随求解序号变化曲线")
	lineA := newLine("电流曲线", "各元件电流随求解序号变化曲线")

	// 初始化元件与节点
	nodeSet := map[string]struct{}{}
	graphNodes := make([]opts.GraphNode, 0, len(c.Labels))
	for _, lb := range c.Labels {
		graphNodes = append(graphNodes, opts.GraphNode{
			Name:     lb,
			Category: 0,
			Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
		})
	}
	graphLink := make([]opts.GraphLink, 0, len(c.Links))
	for _, link := range c.Links {
		if _, ok := nodeSet[link[1]]; !ok {
			nodeSet[link[1]] = struct{}{}
			graphNodes = append(graphNodes, opts.GraphNode{
				Name:     link[1],
				Category: 1,
				Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
			})
		}
		graphLink = append(graphLink, opts.GraphLink{
			Source: link[0],
			Target: link[1],
		})
	}
	graph.AddSeries("电路列表", graphNodes, graphLink,
		charts.WithGraphChartOpts(opts.GraphChart{
			Categories: []*opts.GraphCategory{
				{Name: "元件", ItemStyle: &opts.ItemStyle{Color: "#c71979b7"}},
				{Name: "节点", ItemStyle: &opts.ItemStyle{Color: "#1987c7b7"}},
			},
			Roam:               opts.Bool(true),
			Force:              &opts.GraphForce{Repulsion: 80},
			FocusNodeAdjacency: opts.Bool(true),
		}))

	// 电压电流信息
	lineV.SetXAxis(c.Seq)
	lineA.SetXAxis(c.Seq)
	labels := append([]string{}, c.Labels...)
	sort.Strings(labels)
	for _, lb := range labels {
		lineV.AddSeries(lb, lineData(c.Voltage[lb]))
		lineA.AddSeries(lb, lineData(c.Current[lb]))
	}

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		graph,
		lineV,
		lineA,
	)
	return page.Render(w)
}

// newLine 统一的曲线图配置
func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithAnimation(true),
	)
	return line
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i].Value = v
	}
	return items
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	c.Render(w)
}
