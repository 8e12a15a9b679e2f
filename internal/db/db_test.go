package db

import (
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	tables := []string{"employees", "payments", "chat_sessions", "chat_turns"}
	for _, table := range tables {
		var count int
		err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var enabled int
	if err := d.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled); err != nil {
		t.Fatalf("reading foreign_keys pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatal("expected foreign_keys pragma to be on")
	}

	_, err = d.Exec(`INSERT INTO chat_turns (id, session_id, message, response) VALUES ('t1', 'no-such-session', 'hi', 'hello')`)
	if err == nil {
		t.Error("expected FK violation for turn with unknown session")
	}

	// ON DELETE CASCADE removes a session's turns with it.
	if _, err := d.Exec(`INSERT INTO chat_sessions (id) VALUES ('s1')`); err != nil {
		t.Fatalf("inserting session: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO chat_turns (id, session_id, message, response) VALUES ('t2', 's1', 'hi', 'hello')`); err != nil {
		t.Fatalf("inserting turn: %v", err)
	}
	if _, err := d.Exec(`DELETE FROM chat_sessions WHERE id = 's1'`); err != nil {
		t.Fatalf("deleting session: %v", err)
	}
	var count int
	if err := d.QueryRow(`SELECT COUNT(*) FROM chat_turns`).Scan(&count); err != nil {
		t.Fatalf("counting turns: %v", err)
	}
	if count != 0 {
		t.Errorf("expected cascade to remove turns, %d left", count)
	}
}

func TestStatusConstraints(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	_, err = d.Exec(`INSERT INTO employees (id, name, status) VALUES ('e1', 'Alice', 'retired')`)
	if err == nil {
		t.Error("expected CHECK violation for unknown employee status")
	}

	_, err = d.Exec(`INSERT INTO payments (id, amount, status) VALUES ('p1', 100, 'refunded')`)
	if err == nil {
		t.Error("expected CHECK violation for unknown payment status")
	}
}
