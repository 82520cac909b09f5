package types

import "fmt"

// Kind 元件类型
type Kind uint8

// 电路元件类型常量定义
const (
	KindUnknown   Kind = iota // 未知类型
	KindBattery               // 电池
	KindResistor              // 电阻
	KindBulb                  // 灯泡
	KindSwitch                // 开关
	KindCapacitor             // 电容
	KindInductor              // 电感
	KindWire                  // 导线
)

// KindModel 元件行为接口
// 每种元件以查表方式提供直流等效电阻与显示量后处理,
// 七种类型为封闭集合,不使用继承扩展。
type KindModel interface {
	Name() string                          // 文档中使用的标识符
	Resistance(comp *Component) float64    // 直流等效电阻
	PostPass(comp *Component)              // 显示量后处理
}

// kindTable 元件映射
var kindTable = map[Kind]struct {
	Name  string
	Model KindModel
}{
	KindUnknown: {Name: "unknown", Model: nil},
}

var mapName = map[string]Kind{
	"unknown": KindUnknown,
}

// String 返回元件类型的字符串表示
func (k Kind) String() string {
	if kt, ok := kindTable[k]; ok {
		return kt.Name
	}
	return "unknown"
}

// Model 获取元件行为
func (k Kind) Model() KindModel {
	if kt, ok := kindTable[k]; ok {
		return kt.Model
	}
	return nil
}

// GetNameKind 通过名称获取类型
func GetNameKind(name string) Kind {
	return mapName[name]
}

// Register 注册元件类型
func Register(k Kind, model KindModel) Kind {
	if _, ok := kindTable[k]; ok {
		panic(fmt.Errorf("指定元件类型已经注册: %s:%d", model.Name(), k))
	}
	mapName[model.Name()] = k
	kindTable[k] = struct {
		Name  string
		Model KindModel
	}{
		Name:  model.Name(),
		Model: model,
	}
	return k
}
