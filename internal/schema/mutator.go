// Package schema builds table DDL statements from an in-memory table shape
// and hands them, one statement per operation, to an injected executor.
package schema

import (
	"context"
	"fmt"
	"strings"

	"db_table_schema_mutator/internal/db"
)

// Field is one column definition: a name plus the raw SQL type and modifier
// tokens that follow it, in render order.
type Field struct {
	Name  string
	Types []string
}

// Mutator owns the identity of a single table: its name, its ordered column
// list and its raw constraint fragments. Every operation builds exactly one
// statement from that state and passes it to the executor; the state is
// touched only after the executor accepted the statement, so the in-memory
// shape always matches the last statement the store acknowledged.
//
// A Mutator serves one sequential migration flow. It has no internal
// locking; concurrent use of one instance is unsupported.
type Mutator struct {
	table       string
	fields      []Field
	constraints []string
	exec        db.Executor
}

// NewMutator binds a mutator to a table. The field order is preserved: it
// decides the column order of the generated CREATE TABLE. Constraints are
// appended verbatim after the columns and never mutated afterwards.
func NewMutator(exec db.Executor, table string, fields []Field, constraints ...string) *Mutator {
	m := &Mutator{
		table:       table,
		fields:      make([]Field, 0, len(fields)),
		constraints: constraints,
		exec:        exec,
	}
	for _, f := range fields {
		m.fields = append(m.fields, Field{Name: f.Name, Types: append([]string(nil), f.Types...)})
	}
	return m
}

// Table returns the current table name; Rename changes it.
func (m *Mutator) Table() string { return m.table }

// Create issues the CREATE TABLE statement for the current column list and
// constraints. A mutator with neither fields nor constraints has nothing to
// render between the parentheses and fails before any executor call.
func (m *Mutator) Create(ctx context.Context) error {
	if len(m.fields) == 0 && len(m.constraints) == 0 {
		return opError("failed to create table", "no fields or constraints defined")
	}
	clauses := make([]string, 0, len(m.fields)+len(m.constraints))
	for _, f := range m.fields {
		clauses = append(clauses, f.Name+" "+strings.Join(f.Types, " "))
	}
	clauses = append(clauses, m.constraints...)

	stmt := fmt.Sprintf("CREATE TABLE %s (\n  %s\n);", m.table, strings.Join(clauses, ",\n  "))
	if _, err := m.exec.Execute(ctx, stmt); err != nil {
		return wrap("failed to create table", err)
	}
	return nil
}

// Drop issues DROP TABLE IF EXISTS. A table that is already gone is a
// store-level no-op, so repeated calls are harmless.
func (m *Mutator) Drop(ctx context.Context) error {
	stmt := fmt.Sprintf("DROP TABLE IF EXISTS %s", m.table)
	if _, err := m.exec.Execute(ctx, stmt); err != nil {
		return wrap("failed to drop table", err)
	}
	return nil
}

func (m *Mutator) Truncate(ctx context.Context) error {
	stmt := fmt.Sprintf("TRUNCATE TABLE %s", m.table)
	if _, err := m.exec.Execute(ctx, stmt); err != nil {
		return wrap("failed to truncate table", err)
	}
	return nil
}

// AddColumn alters the table and, once the store accepted it, appends the
// field to the column list. A name already present fails before any
// executor call: the column list must never hold two entries with one name,
// and the store would reject the duplicate ALTER anyway.
func (m *Mutator) AddColumn(ctx context.Context, name string, types []string) error {
	op := fmt.Sprintf("failed to add column %s", name)
	if len(types) == 0 {
		return opError(op, "no type tokens given")
	}
	if m.indexOf(name) >= 0 {
		return opError(op, fmt.Sprintf("column %s already defined", name))
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.table, name, strings.Join(types, " "))
	if _, err := m.exec.Execute(ctx, stmt); err != nil {
		return wrap(op, err)
	}
	m.fields = append(m.fields, Field{Name: name, Types: append([]string(nil), types...)})
	return nil
}

// DropColumn alters the table and removes the field from the column list.
// Dropping a name not in the list still issues the ALTER; the local removal
// is then a no-op.
func (m *Mutator) DropColumn(ctx context.Context, name string) error {
	stmt := fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", m.table, name)
	if _, err := m.exec.Execute(ctx, stmt); err != nil {
		return wrap(fmt.Sprintf("failed to drop column %s", name), err)
	}
	if i := m.indexOf(name); i >= 0 {
		m.fields = append(m.fields[:i], m.fields[i+1:]...)
	}
	return nil
}

// Rename issues ALTER TABLE ... RENAME TO and, on success, retargets the
// mutator: every later statement uses the new name.
func (m *Mutator) Rename(ctx context.Context, newName string) error {
	stmt := fmt.Sprintf("ALTER TABLE %s RENAME TO %s", m.table, newName)
	if _, err := m.exec.Execute(ctx, stmt); err != nil {
		return wrap(fmt.Sprintf("failed to rename table to %s", newName), err)
	}
	m.table = newName
	return nil
}

// Exists checks the catalog's table registry for the current table name.
// The name is interpolated into the statement text, not bound: table names
// come from migration code, and the bound-parameter path stays exclusive to
// Raw. Any result that does not carry a truthy "exists" in its first row
// reads as false.
func (m *Mutator) Exists(ctx context.Context) (bool, error) {
	res, err := m.exec.Execute(ctx, m.catalogStatement())
	if err != nil {
		return false, wrap("failed to check table existence", err)
	}
	if len(res.Rows) == 0 {
		return false, nil
	}
	return truthy(res.Rows[0]["exists"]), nil
}

// catalogStatement shapes the registry check per engine. MySQL rejects an
// empty select list and names unaliased columns after the whole expression,
// so it needs SELECT 1 plus a quoted alias; Postgres already names the bare
// EXISTS column "exists".
func (m *Mutator) catalogStatement() string {
	if e, ok := m.exec.(interface{ Engine() string }); ok && e.Engine() == "mysql" {
		return fmt.Sprintf(
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = '%s') AS `exists`",
			m.table,
		)
	}
	return fmt.Sprintf(
		"SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = '%s')",
		m.table,
	)
}

// truthy reads the engine's boolean: pgx yields bool, mysql yields the
// integer 1/0 (or its text form, depending on protocol).
func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case string:
		return v == "1"
	}
	return false
}

// Raw passes an arbitrary statement and its parameters through to the
// executor and returns its result unmodified.
func (m *Mutator) Raw(ctx context.Context, query string, params ...any) (db.Result, error) {
	res, err := m.exec.Execute(ctx, query, params...)
	if err != nil {
		return db.Result{}, wrap("failed to execute raw sql", err)
	}
	return res, nil
}

// FieldDefinitions returns a copy of the current column list as a name to
// type-token mapping.
func (m *Mutator) FieldDefinitions() map[string][]string {
	defs := make(map[string][]string, len(m.fields))
	for _, f := range m.fields {
		defs[f.Name] = append([]string(nil), f.Types...)
	}
	return defs
}

func (m *Mutator) indexOf(name string) int {
	for i, f := range m.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
