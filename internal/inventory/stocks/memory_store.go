package stocks

import (
	"context"
	"sort"
	"sync"

	"github.com/Erasmo-Dev/Cervejaria/pkg/models"
)

// MemoryStore keeps stock items in process memory. One mutex guards every
// operation, so MutateQuantity is atomic with respect to other calls.
type MemoryStore struct {
	mu     sync.Mutex
	items  map[int]models.StockItem
	nextID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:  make(map[int]models.StockItem),
		nextID: 1,
	}
}

func (s *MemoryStore) Insert(_ context.Context, item models.StockItem) (*models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.findByName(item.Name); found {
		return nil, ErrDuplicateKey
	}

	item.ID = s.nextID
	s.nextID++
	s.items[item.ID] = item

	return &item, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id int) (*models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *MemoryStore) FindByName(_ context.Context, name string) (*models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, found := s.findByName(name)
	if !found {
		return nil, nil
	}
	return &item, nil
}

// FindAll returns the items ordered by id.
func (s *MemoryStore) FindAll(_ context.Context) ([]models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.StockItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}

func (s *MemoryStore) MutateQuantity(ctx context.Context, id int, fn func(current models.StockItem) (int, error)) (*models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}

	quantity, err := fn(item)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	s.items[id] = item

	return &item, nil
}

func (s *MemoryStore) findByName(name string) (models.StockItem, bool) {
	for _, item := range s.items {
		if item.Name == name {
			return item, true
		}
	}
	return models.StockItem{}, false
}
