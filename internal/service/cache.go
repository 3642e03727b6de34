package service

import "sync"

// listCache 缓存某个集合最近一次的完整查询结果。
// 每次写操作后调用 invalidate，保证后续读取一定回源，
// 管理端在自己的写入之后不会看到过期数据。
type listCache[T any] struct {
	mu    sync.Mutex
	items []T
	valid bool
}

// get 返回缓存内容；缓存失效时调用 load 回源并填充。
// 返回的切片由调用方只读使用，不应原地修改。
func (c *listCache[T]) get(load func() ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid {
		return c.items, nil
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	c.items = items
	c.valid = true
	return items, nil
}

// invalidate 丢弃缓存内容，下一次读取将重新查询数据库。
func (c *listCache[T]) invalidate() {
	c.mu.Lock()
	c.items = nil
	c.valid = false
	c.mu.Unlock()
}
