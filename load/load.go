// Package load 负责工作区文档的载入与保存。
// 文档为YAML格式,元件类型名通过注册表解析,
// 载入得到的图满足求解器假定的结构不变量。
package load

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"

	// 触发元件类型注册
	_ "github.com/psyco6h7h-lab/BEE-sim-sub000/element"
)

// Document 工作区文档
type Document struct {
	Components []ComponentDoc `yaml:"components"` // 元件列表
}

// ComponentDoc 文档中的单个元件
// at 为两个端子的工作区坐标 [ax, ay, bx, by]。
type ComponentDoc struct {
	Kind   string     `yaml:"kind"`             // 类型名称
	At     [4]float64 `yaml:"at"`               // 端子坐标
	Value  float64    `yaml:"value,omitempty"`  // 元件值
	Closed *bool      `yaml:"closed,omitempty"` // 开关状态,缺省为闭合
}

// Parse 解析文档内容
func Parse(data []byte) (*types.Graph, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析工作区文档失败: %w", err)
	}
	g := types.NewGraph()
	for i, cd := range doc.Components {
		kind := types.GetNameKind(cd.Kind)
		if kind == types.KindUnknown {
			return nil, fmt.Errorf("未知元件类型定义: #%d %q", i, cd.Kind)
		}
		if cd.Value < 0 {
			return nil, fmt.Errorf("元件值不得为负: #%d %s %v", i, cd.Kind, cd.Value)
		}
		comp := types.NewComponent(kind,
			types.Point{X: cd.At[0], Y: cd.At[1]},
			types.Point{X: cd.At[2], Y: cd.At[3]},
			cd.Value)
		if kind == types.KindSwitch && cd.Closed != nil {
			comp.SwitchClosed = *cd.Closed
		}
		g.Add(comp)
	}
	return g, nil
}

// Load 载入工作区文档
func Load(path string) (*types.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取工作区文档失败 %s: %w", path, err)
	}
	return Parse(data)
}

// Export 导出文档内容,按元件ID排序保证确定性
func Export(g *types.Graph) ([]byte, error) {
	doc := Document{}
	for _, id := range g.SortedIDs() {
		comp := g.Components[id]
		cd := ComponentDoc{
			Kind: comp.Kind.String(),
			At: [4]float64{
				comp.Terminals[0].X, comp.Terminals[0].Y,
				comp.Terminals[1].X, comp.Terminals[1].Y,
			},
			Value: comp.Value,
		}
		if comp.Kind == types.KindSwitch {
			closed := comp.SwitchClosed
			cd.Closed = &closed
		}
		doc.Components = append(doc.Components, cd)
	}
	return yaml.Marshal(doc)
}

// Save 保存工作区文档
func Save(path string, g *types.Graph) error {
	data, err := Export(g)
	if err != nil {
		return fmt.Errorf("导出工作区文档失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入工作区文档失败 %s: %w", path, err)
	}
	return nil
}
