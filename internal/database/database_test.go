package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySQL(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		operation string
		table     string
	}{
		{"select", `SELECT * FROM "events" WHERE id = $1`, "select", "events"},
		{"insert", `INSERT INTO "users" ("name") VALUES ($1)`, "insert", "users"},
		{"update", `UPDATE "comments" SET content = $1`, "update", "comments"},
		{"delete", `DELETE FROM event_participants WHERE id = $1`, "delete", "event_participants"},
		{"first from wins", `SELECT events.*, (SELECT COUNT(*) FROM x) FROM "events"`, "select", "x"},
		{"empty", "", "other", "unknown"},
		{"no table", "BEGIN", "begin", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operation, table := classifySQL(tt.sql)
			assert.Equal(t, tt.operation, operation)
			assert.Equal(t, tt.table, table)
		})
	}
}
