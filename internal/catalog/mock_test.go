package catalog

import (
	"sync"
	"time"

	"sjsage522/courseadvisor/services/cache"
)

// MockCacheService implements a simple in-memory cache for testing
type MockCacheService struct {
	mu    sync.Mutex
	cache  map[string][]byte
	sets   int
	getErr error
}

func NewMockCacheService() *MockCacheService {
	return &MockCacheService{
		cache: make(map[string][]byte),
	}
}

func (m *MockCacheService) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if val, ok := m.cache[key]; ok {
		return val, nil
	}
	return nil, cache.ErrMiss
}

func (m *MockCacheService) Set(key string, value []byte, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[key] = value
	m.sets++
	return nil
}

func (m *MockCacheService) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, key)
	return nil
}

const catalogFixture = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Computer Science and Engineering (CSE)</title></head>
<body>
<h2>Courses</h2>
<p class="course-name">CSE 8A. Introduction to Programming and Computational Problem-Solving I (4)</p>
<p class="course-descriptions">Introductory course for students interested in computer science and programming.</p>
<p class="course-name">CSE 100. Advanced Data Structures (4)</p>
<p class="course-descriptions">High-performance data structures and supporting algorithms.</p>
<p class="course-name">CSE 101. Design and Analysis of Algorithms (4)</p>
<p class="course-descriptions">Design and analysis of efficient algorithms with emphasis of nonnumerical algorithms.</p>
</body>
</html>
`
