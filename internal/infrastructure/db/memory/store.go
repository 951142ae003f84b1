// Package memory is a process-local store used for development and tests.
// It enforces the same unique and foreign-key rules as the SQL schema.
package memory

import (
	"sort"
	"sync"

	"github.com/petowners/petregistry/internal/core/domain"
)

// Store holds every table behind one lock so cross-entity checks (breed in
// use, unique email) see a consistent view.
type Store struct {
	mu        sync.RWMutex
	users     map[int64]domain.User
	addresses map[int64]domain.Address
	breeds    map[int64]domain.Breed
	pets      map[int64]domain.Pet
	seq       map[string]int64
}

func NewStore() *Store {
	return &Store{
		users:     make(map[int64]domain.User),
		addresses: make(map[int64]domain.Address),
		breeds:    make(map[int64]domain.Breed),
		pets:      make(map[int64]domain.Pet),
		seq:       make(map[string]int64),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Addresses returns the address repository view of the store.
func (s *Store) Addresses() *AddressRepository { return &AddressRepository{s: s} }

// Breeds returns the breed repository view of the store.
func (s *Store) Breeds() *BreedRepository { return &BreedRepository{s: s} }

// Pets returns the pet repository view of the store.
func (s *Store) Pets() *PetRepository { return &PetRepository{s: s} }

// next returns the next id for table. Callers hold the write lock.
func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
