package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitSQL(t *testing.T) {
	in := "-- comment\nCREATE TABLE a (id INT);\n\nCREATE TABLE b (id INT);\n"
	got := splitSQL(in)
	want := []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSQL() = %q, want %q", got, want)
	}
}

func TestExtractTables(t *testing.T) {
	path := filepath.Join("..", "..", "migrations", "0001_init.sql")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("migration not found: %v", err)
	}
	got, err := extractTables(path)
	if err != nil {
		t.Fatalf("extractTables() error = %v", err)
	}
	want := []string{"estimates", "lookup_usage"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractTables() = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	got := summarize([]Result{{Status: statusPass}, {Status: statusPass}, {Status: statusSkip}})
	if got[statusPass] != 2 || got[statusSkip] != 1 || got[statusFail] != 0 {
		t.Errorf("summarize() = %v", got)
	}
}
