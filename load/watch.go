package load

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/psyco6h7h-lab/BEE-sim-sub000/types"
)

// Watcher 监视工作区文档变化并热重载
type Watcher struct {
	path     string
	mu       sync.RWMutex
	current  *types.Graph
	onChange []func(*types.Graph)
}

// NewWatcher 创建监视器并完成首次载入
func NewWatcher(path string) (*Watcher, error) {
	g, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Watcher{path: path, current: g}, nil
}

// Graph 当前(最新)的图
func (w *Watcher) Graph() *types.Graph {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange 注册重载回调
func (w *Watcher) OnChange(fn func(*types.Graph)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Watch 启动后台监视,文档写入时重载
// 解析失败时保留旧图继续运行;调用返回的 stop 函数清理。
func (w *Watcher) Watch() (stop func(), err error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("创建文档监视失败: %w", err)
	}
	if err := fw.Add(w.path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("监视文档失败 %s: %w", w.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer fw.Close()
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					g, err := Load(w.path)
					if err != nil {
						// 保留旧图
						continue
					}
					w.mu.Lock()
					w.current = g
					callbacks := make([]func(*types.Graph), len(w.onChange))
					copy(callbacks, w.onChange)
					w.mu.Unlock()
					for _, fn := range callbacks {
						fn(g)
					}
				}
			case <-fw.Errors:
				// 忽略监视错误
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}
