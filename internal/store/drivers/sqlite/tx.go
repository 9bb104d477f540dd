package sqlite

import (
	"context"
	"database/sql"

	"github.com/pp8817/Sucat-Server/internal/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Close() error { return nil } // nothing to close; the outer DB stays open

// Ping is a no-op for transactions. The connection is already established
// when the transaction is created, so we just return nil.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) WithTx(ctx context.Context, fn func(store.Store) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations(ctx context.Context) error {
	return nil // migrations run before any transaction starts
}

func (t *txStore) Users() store.Users                 { return &usersRepo{q: t.tx} }
func (t *txStore) RefreshTokens() store.RefreshTokens { return &refreshTokensRepo{q: t.tx} }
func (t *txStore) Friendships() store.Friendships     { return &friendshipsRepo{q: t.tx} }
func (t *txStore) ChatRooms() store.ChatRooms         { return &chatRoomsRepo{q: t.tx} }
func (t *txStore) ChatMessages() store.ChatMessages   { return &chatMessagesRepo{q: t.tx} }
