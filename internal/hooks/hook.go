package hooks

import (
	"sort"
	"sync"
)

// DefaultPriority 默认回调优先级
const DefaultPriority = 10

type entry[F any] struct {
	priority int
	seq      int
	fn       F
}

type chain[F any] struct {
	mu      sync.RWMutex
	seq     int
	entries []entry[F]
}

func (c *chain[F]) add(priority int, fn F) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.entries = append(c.entries, entry[F]{priority: priority, seq: c.seq, fn: fn})
	sort.SliceStable(c.entries, func(i, j int) bool {
		if c.entries[i].priority != c.entries[j].priority {
			return c.entries[i].priority < c.entries[j].priority
		}
		return c.entries[i].seq < c.entries[j].seq
	})
}

func (c *chain[F]) snapshot() []F {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fns := make([]F, 0, len(c.entries))
	for _, e := range c.entries {
		fns = append(fns, e.fn)
	}
	return fns
}

func (c *chain[F]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Filter 值过滤器：每个回调接收上一回调的结果并返回新值
type Filter[V any, A any] struct {
	chain chain[func(V, A) V]
}

// Add 注册过滤回调，priority 越小越先执行
func (f *Filter[V, A]) Add(priority int, fn func(V, A) V) {
	if f == nil || fn == nil {
		return
	}
	f.chain.add(priority, fn)
}

// Apply 依次执行全部回调
func (f *Filter[V, A]) Apply(value V, arg A) V {
	if f == nil {
		return value
	}
	for _, fn := range f.chain.snapshot() {
		value = fn(value, arg)
	}
	return value
}

// Len 已注册回调数量
func (f *Filter[V, A]) Len() int {
	if f == nil {
		return 0
	}
	return f.chain.len()
}

// Action 动作钩子：按优先级依次执行，无返回值
type Action[A any] struct {
	chain chain[func(A)]
}

// Add 注册动作回调
func (a *Action[A]) Add(priority int, fn func(A)) {
	if a == nil || fn == nil {
		return
	}
	a.chain.add(priority, fn)
}

// Do 触发动作
func (a *Action[A]) Do(arg A) {
	if a == nil {
		return
	}
	for _, fn := range a.chain.snapshot() {
		fn(arg)
	}
}

// Len 已注册回调数量
func (a *Action[A]) Len() int {
	if a == nil {
		return 0
	}
	return a.chain.len()
}
