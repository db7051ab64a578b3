// Package db provides the transaction boundary shared by repositories.
package db

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type txKey struct{}

// txState is the transaction bound to a context plus the callbacks
// deferred until it commits.
type txState struct {
	tx    *gorm.DB
	mu    sync.Mutex
	hooks []func()
}

// TransactionManager runs units of work in a single database transaction.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction calls fn with a context carrying the transaction. Repositories
// resolve it through GetTxFromContext. A returned error rolls everything back.
// Callbacks registered with AfterCommit run once the outermost transaction commits.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	state := &txState{}
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state.tx = tx
		return fn(context.WithValue(ctx, txKey{}, state))
	})
	if err != nil {
		return err
	}

	state.mu.Lock()
	hooks := state.hooks
	state.hooks = nil
	state.mu.Unlock()
	for _, hook := range hooks {
		hook()
	}
	return nil
}

// GetTxFromContext returns the transaction bound to ctx, or defaultDB scoped to ctx.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		return state.tx
	}
	return defaultDB.WithContext(ctx)
}

// InTransaction reports whether ctx carries an open transaction.
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*txState)
	return ok
}

// AfterCommit defers fn until the transaction in ctx commits. It is dropped on
// rollback. Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	state, ok := ctx.Value(txKey{}).(*txState)
	if !ok {
		fn()
		return
	}
	state.mu.Lock()
	state.hooks = append(state.hooks, fn)
	state.mu.Unlock()
}
