package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '101' for key 'PRIMARY'"}, KindConstraint},
		{"mysql fk child", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, KindConstraint},
		{"mysql fk parent", &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}, KindConstraint},
		{"mysql gone away", &mysql.MySQLError{Number: 2006, Message: "MySQL server has gone away"}, KindConnectivity},
		{"invalid conn", mysql.ErrInvalidConn, KindConnectivity},
		{"gorm duplicated", gorm.ErrDuplicatedKey, KindConstraint},
		{"gorm fk", fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated), KindConstraint},
		{"sqlite unique", errors.New("UNIQUE constraint failed: rooms.room_no"), KindConstraint},
		{"postgres fk", errors.New(`ERROR: insert or update on table "bills" violates foreign key constraint`), KindConstraint},
		{"missing key", errMissingKey, KindInvalid},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := wrapError("save", "Room", tc.err)

			var pe *PersistenceError
			if assert.True(t, errors.As(err, &pe)) {
				assert.Equal(t, tc.want, pe.Kind)
				assert.Equal(t, "save", pe.Op)
				assert.Equal(t, "Room", pe.Entity)
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestWrapErrorPassesThroughClassified(t *testing.T) {
	nf := &NotFoundError{Entity: "Bill", ID: uint(3)}
	assert.Same(t, nf, wrapError("delete", "Customer", nf))

	pe := &PersistenceError{Op: "save", Entity: "Room", Kind: KindInvalid, Err: errMissingKey}
	var got *PersistenceError
	assert.True(t, errors.As(wrapError("update", "Customer", fmt.Errorf("outer: %w", pe)), &got))
	assert.Same(t, pe, got)

	assert.NoError(t, wrapError("save", "Room", nil))
}

func TestWrapErrorRecordNotFound(t *testing.T) {
	err := wrapError("find", "Client", gorm.ErrRecordNotFound)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConstraint(err))
}

func TestNotFoundErrorMatching(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &NotFoundError{Entity: "Room", ID: uint(101)})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "lookup: Room 101: record not found")
}
