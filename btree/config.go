package btree

import (
	"cmp"
	"fmt"
)

// MinOrder is the smallest legal minimum degree of a tree.
const MinOrder = 2

// Config configures a B-tree.
type Config[K cmp.Ordered] struct {
	// Order is the minimum degree t. Nodes hold at most 2t-1 keys.
	Order int
	// MaxKeys may be given instead of Order. It is converted with
	// OrderForMaxKeys. If both are set, Order wins.
	MaxKeys int
	// Compare orders keys. Defaults to cmp.Compare.
	Compare func(a, b K) int
	// Observer is notified at every checkpoint. May be nil.
	Observer StepObserver[K]
}

// OrderForMaxKeys derives a minimum degree from a desired maximum number of
// keys per node m, i.e. ceil((m+1)/2). The effective maximum of the resulting
// tree is 2*order-1, which is m for odd m and m+1 for even m.
//
// m = 1 yields order 1, which New will reject.
func OrderForMaxKeys(m int) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: max keys per node must be >= 1, is %d", ErrInvalidConfig, m)
	}
	return (m + 2) / 2, nil
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Order == 0 && cfg.MaxKeys > 0 {
		cfg.Order, _ = OrderForMaxKeys(cfg.MaxKeys)
	}
	if cfg.Compare == nil {
		cfg.Compare = cmp.Compare[K]
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Order == 0 && cfg.MaxKeys != 0 {
		if _, err := OrderForMaxKeys(cfg.MaxKeys); err != nil {
			return err
		}
	}
	cfg = cfg.normalized()
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order must be >= %d, is %d", ErrInvalidConfig, MinOrder, cfg.Order)
	}
	return nil
}
