package store

import (
	"container/list"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"station-report/internal/report/model"
)

var ErrNotFound = errors.New("report not found")

// Store — загруженные отчёты в памяти: LRU с TTL, живёт вместе с процессом.
type Store struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
	now     func() time.Time
}

type entry struct {
	id        string
	report    model.Report
	expiresAt time.Time
}

func New(maxSize int, ttl time.Duration) *Store {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &Store{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
		now:     time.Now,
	}
}

// Put сохраняет отчёт под новым id.
func (s *Store) Put(rep model.Report) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(id, rep)
	return id
}

func (s *Store) Get(id string) (model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[id]
	if !ok {
		return model.Report{}, ErrNotFound
	}
	e := elem.Value.(*entry)
	if s.expired(e) {
		s.remove(elem)
		return model.Report{}, ErrNotFound
	}
	s.lru.MoveToFront(elem)
	return e.report, nil
}

// Replace вызывает load и заменяет отчёт только при успехе: ошибка разбора
// оставляет прежние данные нетронутыми. load идёт без блокировки, поэтому
// запись, удалённую или вытесненную за это время, не воскрешаем.
func (s *Store) Replace(id string, load func() (model.Report, error)) (model.Report, error) {
	if _, err := s.Get(id); err != nil {
		return model.Report{}, err
	}
	rep, err := load()
	if err != nil {
		return model.Report{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	elem, ok := s.items[id]
	if !ok {
		return model.Report{}, ErrNotFound
	}
	if s.expired(elem.Value.(*entry)) {
		s.remove(elem)
		return model.Report{}, ErrNotFound
	}
	s.set(id, rep)
	return rep, nil
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	elem, ok := s.items[id]
	if !ok {
		return false
	}
	s.remove(elem)
	return true
}

func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}

// CleanExpired удаляет просроченные записи, возвращает их число.
func (s *Store) CleanExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for elem := s.lru.Back(); elem != nil; {
		prev := elem.Prev()
		if s.expired(elem.Value.(*entry)) {
			s.remove(elem)
			n++
		}
		elem = prev
	}
	return n
}

func (s *Store) set(id string, rep model.Report) {
	e := &entry{id: id, report: rep}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	if elem, ok := s.items[id]; ok {
		elem.Value = e
		s.lru.MoveToFront(elem)
		return
	}
	s.items[id] = s.lru.PushFront(e)
	for s.lru.Len() > s.maxSize {
		s.remove(s.lru.Back())
	}
}

func (s *Store) expired(e *entry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

func (s *Store) remove(elem *list.Element) {
	s.lru.Remove(elem)
	delete(s.items, elem.Value.(*entry).id)
}
