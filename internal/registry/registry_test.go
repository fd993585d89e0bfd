package registry

import (
	"testing"

	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/pattern"
)

func testFactory(cfg config.AmbientConfig) pattern.Pattern {
	return pattern.NewWave(pattern.DefaultWaveConfig())
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-wave", "Test Wave", testFactory)

	if !Exists("test-wave") {
		t.Fatal("Exists() should report the registered pattern")
	}

	p, err := Create("test-wave", config.Default())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if p == nil {
		t.Fatal("Create() returned a nil pattern")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-wave" && info.Title == "Test Wave" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered pattern")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-pattern", config.Default()); err == nil {
		t.Error("Create() with an unknown ID should fail")
	}
	if Exists("no-such-pattern") {
		t.Error("Exists() should be false for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()

	Register("dup", "Dup", testFactory)
	Register("dup", "Dup", testFactory)
}

func TestListIsSorted(t *testing.T) {
	Register("zz-last", "Last", testFactory)
	Register("aa-first", "First", testFactory)

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID > infos[i].ID {
			t.Fatalf("List() is not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}
