package sqlite

import (
	"github.com/Masterminds/squirrel"
)

// Shared statement builder for dynamic queries; SQLite uses ? placeholders.
var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
