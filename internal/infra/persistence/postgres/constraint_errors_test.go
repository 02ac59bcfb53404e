package postgres

import (
	"testing"

	"pagecast/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyConstraint(t *testing.T) {
	tests := map[string]struct {
		err  error
		want constraintKind
	}{
		"nil":         {nil, constraintNone},
		"gorm dup":    {errors.Wrap(gorm.ErrDuplicatedKey, "create"), constraintUnique},
		"pg unique":   {errors.New(`ERROR: duplicate key value violates unique constraint "idx_generated_pages_live_path" (SQLSTATE 23505)`), constraintUnique},
		"sqlite":      {errors.New("UNIQUE constraint failed: generated_pages.file_path"), constraintUnique},
		"pg not null": {errors.New(`ERROR: null value in column "business_id" violates not-null constraint (SQLSTATE 23502)`), constraintNotNull},
		"sqlite null": {errors.New("NOT NULL constraint failed: generated_pages.title"), constraintNotNull},
		"unrelated":   {errors.New("connection reset by peer"), constraintNone},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyConstraint(tt.err))
		})
	}
}
