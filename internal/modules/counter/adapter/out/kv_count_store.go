package out

import (
	"context"

	"pushpal/internal/modules/counter/domain"
	counterout "pushpal/internal/modules/counter/port/out"
	"pushpal/internal/platform/kv"
)

type KVCountStore struct {
	store kv.Store
}

func NewKVCountStore(store kv.Store) counterout.CountStore {
	return &KVCountStore{store: store}
}

// LoadCount returns zero for a missing key. A non-nil error still comes
// with the zero fallback.
func (s *KVCountStore) LoadCount(ctx context.Context) (domain.Tally, error) {
	n, err := kv.IntOr(ctx, s.store, domain.KeyCount, 0)
	return domain.NewTally(n), err
}

func (s *KVCountStore) SaveCount(ctx context.Context, count domain.Tally) error {
	return kv.SetInt(ctx, s.store, domain.KeyCount, count.Int())
}
