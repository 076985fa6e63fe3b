package performance

import (
	"context"
	"sync"
)

// DAO gives access to the raw monthly records.
type DAO interface {
	// PerformanceByMonth returns the sum of all values recorded for yearMonth.
	PerformanceByMonth(ctx context.Context, yearMonth string) (float32, error)
	// CountPerformanceByMonth returns how many positive values were recorded.
	CountPerformanceByMonth(ctx context.Context, yearMonth string) (int, error)
}

// Writer is implemented by DAOs that can store new records.
type Writer interface {
	Insert(ctx context.Context, r Record) error
}

// MockData is the sample set the demo application starts with.
func MockData() []Record {
	return []Record{
		NewRecord(75.3, "2023-01"),
		NewRecord(55.5, "2023-03"),
		NewRecord(85.5, "2023-04"),
		NewRecord(65.5, "2023-06"),
		NewRecord(95.5, "2023-07"),
		NewRecord(45.5, "2023-08"),
		NewRecord(82.55, "2023-10"),
		NewRecord(64.8, "2023-12"),
	}
}

// MockDAO keeps records in memory.
type MockDAO struct {
	mu   sync.RWMutex
	data []Record
}

func NewMockDAO(records ...Record) *MockDAO {
	return &MockDAO{data: append([]Record(nil), records...)}
}

func (m *MockDAO) PerformanceByMonth(_ context.Context, yearMonth string) (float32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result float32
	for _, r := range m.data {
		if r.YearMonth == yearMonth {
			result += r.Performance
		}
	}
	return result, nil
}

func (m *MockDAO) CountPerformanceByMonth(_ context.Context, yearMonth string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result int
	for _, r := range m.data {
		if r.YearMonth == yearMonth && r.Performance > 0 {
			result++
		}
	}
	return result, nil
}

func (m *MockDAO) Insert(_ context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append(m.data, r)
	return nil
}
