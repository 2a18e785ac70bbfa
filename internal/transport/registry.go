package transport

import (
	"fmt"
	"sync"
)

var (
	// factories 存储所有已注册的 Factory
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register 注册一个 Factory
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if factory == nil {
		panic("transport: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("transport: Register called twice for factory " + name)
	}
	factories[name] = factory
}

// GetFactory 获取指定名称的 Factory
func GetFactory(name string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("transport factory %s not found", name)
	}
	return factory, nil
}

// ListFactories 列出所有已注册的 Factory 名称
func ListFactories() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// UnregisterAll 清空所有已注册的 Factory (用于测试)
func UnregisterAll() {
	mu.Lock()
	defer mu.Unlock()
	factories = make(map[string]Factory)
}
