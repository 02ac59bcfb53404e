package postgres

import (
	"strings"

	"pagecast/internal/errors"

	"gorm.io/gorm"
)

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintNotNull
)

// SQLSTATE codes and driver phrases per constraint. SQLite has no codes, so
// the phrases cover the test database.
var constraintMarkers = map[constraintKind][]string{
	constraintUnique:  {"23505", "duplicate key", "unique constraint"},
	constraintNotNull: {"23502", "null value", "not null"},
}

func classifyConstraint(err error) constraintKind {
	if err == nil {
		return constraintNone
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return constraintUnique
	}

	msg := strings.ToLower(err.Error())
	for _, kind := range []constraintKind{constraintUnique, constraintNotNull} {
		for _, marker := range constraintMarkers[kind] {
			if strings.Contains(msg, marker) {
				return kind
			}
		}
	}

	return constraintNone
}

// isUniqueConstraintViolation is true when a write collided with the live
// file path index or a primary key.
func isUniqueConstraintViolation(err error) bool {
	return classifyConstraint(err) == constraintUnique
}

func isNotNullConstraintViolation(err error) bool {
	return classifyConstraint(err) == constraintNotNull
}
