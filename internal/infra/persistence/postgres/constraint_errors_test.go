package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert failed")
	}

	assert.True(t, isUniqueConstraintViolation(wrapped(pgCodeUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(wrapped(pgCodeForeignKeyViolation)))
	assert.True(t, isNotNullConstraintViolation(wrapped(pgCodeNotNullViolation)))
	assert.True(t, isCheckConstraintViolation(wrapped(pgCodeCheckViolation)))

	assert.False(t, isUniqueConstraintViolation(wrapped(pgCodeForeignKeyViolation)))
	assert.False(t, isNotNullConstraintViolation(errors.New("null value somewhere")))
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults", page: 0, perPage: 0, wantPage: 1, wantPerPage: 15},
		{name: "passthrough", page: 3, perPage: 20, wantPage: 3, wantPerPage: 20},
		{name: "capped", page: 1, perPage: 1000, wantPage: 1, wantPerPage: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := normalizePage(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}
