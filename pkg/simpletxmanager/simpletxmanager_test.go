package simpletxmanager_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/simpletxmanager"
)

func newMock(t *testing.T) (*simpletxmanager.TransactionManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return simpletxmanager.NewTransactionManager(db), mock
}

func TestDoSerializable_RetriesOnSerializationConflict(t *testing.T) {
	// Конфликт сериализации приходит из репозитория обернутым в несколько
	// слоев (%w); повтор должен сработать по всей цепочке
	manager, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	conflict := fmt.Errorf("usecase: failed to get bookings: %w",
		fmt.Errorf("repo: GetByLinkAndDate - execute query: %w", &pq.Error{Code: "40001"}))

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return conflict
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesOnCommitConflict(t *testing.T) {
	// При SERIALIZABLE конфликт может проявиться только на COMMIT
	manager, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_NoRetryOnOtherError(t *testing.T) {
	manager, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	bizErr := errors.New("slot not available")

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return bizErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, bizErr)
	assert.Equal(t, 1, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterRetries(t *testing.T) {
	manager, mock := newMock(t)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	conflict := fmt.Errorf("repo: execute insert: %w", &pq.Error{Code: "40001"})

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return conflict
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
