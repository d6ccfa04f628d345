package airline

import (
	"errors"
	"sort"
	"testing"
)

func TestList_SortedByName(t *testing.T) {
	list := List()
	if len(list) == 0 {
		t.Fatal("expected airlines")
	}
	if !sort.SliceIsSorted(list, func(i, j int) bool { return list[i].Name < list[j].Name }) {
		t.Errorf("list is not sorted by name")
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	list := List()
	list[0].Name = "mutated"
	for _, a := range List() {
		if a.Name == "mutated" {
			t.Fatal("List must not expose internal state")
		}
	}
}

func TestList_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range List() {
		if len(a.ID) != 2 {
			t.Errorf("airline %q has invalid id %q", a.Name, a.ID)
		}
		if seen[a.ID] {
			t.Errorf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestGet(t *testing.T) {
	a, err := Get(" qr ")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if a.Name != "Qatar Airways" {
		t.Errorf("Get(qr) = %+v", a)
	}

	if _, err := Get("ZZ"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLogoURL(t *testing.T) {
	if got := LogoURL("QR", 32); got != "https://pics.avs.io/32/32/QR.png" {
		t.Errorf("LogoURL() = %q", got)
	}
	if got := LogoURL("BA", 0); got != "https://pics.avs.io/48/48/BA.png" {
		t.Errorf("LogoURL() default size = %q", got)
	}
}
