package commandregistry

import (
	"reflect"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
)

func TestNew(t *testing.T) {
	reg := New(command.BuiltinActions())
	if reg == nil {
		t.Fatal("New() returned nil")
	}
	if _, ok := reg.(*Registry); !ok {
		t.Errorf("New() did not return a *Registry, got %T", reg)
	}

	for _, action := range command.BuiltinActions() {
		got, ok := reg.Resolve(string(action))
		if !ok || got != action {
			t.Errorf("Resolve(%q) = %q, %v; want identity mapping", action, got, ok)
		}
	}
}

func TestNew_CopiesBuiltins(t *testing.T) {
	builtins := []command.Action{command.ActionAdd, command.ActionList}
	reg := New(builtins)
	builtins[0] = command.ActionExit

	reg.Seed()
	if _, ok := reg.Resolve("add"); !ok {
		t.Error("mutating the caller's slice changed the seeded builtins")
	}
	if _, ok := reg.Resolve("exit"); ok {
		t.Error("exit should not be seeded")
	}
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		action     command.Action
		wantAction command.Action
	}{
		{name: "new alias", word: "a", action: command.ActionAdd, wantAction: command.ActionAdd},
		{name: "rebind built-in word", word: "list", action: command.ActionFind, wantAction: command.ActionFind},
		{name: "word with symbols", word: "ls!", action: command.ActionList, wantAction: command.ActionList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New([]command.Action{command.ActionAdd, command.ActionList, command.ActionFind})
			reg.Register(tt.word, tt.action)

			got, ok := reg.Resolve(tt.word)
			if !ok {
				t.Fatalf("Resolve(%q) found nothing after Register", tt.word)
			}
			if got != tt.wantAction {
				t.Errorf("Resolve(%q) = %q, want %q", tt.word, got, tt.wantAction)
			}
		})
	}
}

func TestRegistry_Register_LastWriteWins(t *testing.T) {
	reg := New([]command.Action{command.ActionAdd, command.ActionDelete})
	reg.Register("x", command.ActionAdd)
	reg.Register("x", command.ActionDelete)

	if got, _ := reg.Resolve("x"); got != command.ActionDelete {
		t.Errorf("Resolve(x) = %q, want %q", got, command.ActionDelete)
	}
}

func TestRegistry_Resolve_IsCaseSensitive(t *testing.T) {
	reg := New([]command.Action{command.ActionAdd})
	for _, word := range []string{"ADD", "Add", "ad", "add ", ""} {
		if action, ok := reg.Resolve(word); ok {
			t.Errorf("Resolve(%q) = %q, want no match", word, action)
		}
	}
}

func TestRegistry_Seed_DropsAliases(t *testing.T) {
	reg := New([]command.Action{command.ActionAdd, command.ActionList})
	reg.Register("a", command.ActionAdd)
	reg.Register("add", command.ActionList)

	reg.Seed()

	if _, ok := reg.Resolve("a"); ok {
		t.Error("alias 'a' survived Seed()")
	}
	if got, _ := reg.Resolve("add"); got != command.ActionAdd {
		t.Errorf("Resolve(add) after Seed() = %q, want %q", got, command.ActionAdd)
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	reg := New([]command.Action{command.ActionList, command.ActionAdd})
	reg.Register("zz", command.ActionList)
	reg.Register("a", command.ActionAdd)

	want := []alias.Alias{
		{Name: "a", Action: command.ActionAdd},
		{Name: "add", Action: command.ActionAdd},
		{Name: "list", Action: command.ActionList},
		{Name: "zz", Action: command.ActionList},
	}
	got := reg.Snapshot()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}

	got[0].Action = command.ActionList
	if action, _ := reg.Resolve("a"); action != command.ActionAdd {
		t.Error("modifying a snapshot changed the registry")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := New(command.BuiltinActions())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			reg.Register("w"+strconv.Itoa(i), command.ActionAdd)
		}(i)
		go func() {
			defer wg.Done()
			reg.Resolve("add")
			reg.Snapshot()
		}()
		go func(i int) {
			defer wg.Done()
			if i%8 == 0 {
				reg.Seed()
			}
		}(i)
	}
	wg.Wait()

	snap := reg.Snapshot()
	if !sort.SliceIsSorted(snap, func(i, j int) bool { return snap[i].Name < snap[j].Name }) {
		t.Error("Snapshot() is not sorted by word")
	}
	if _, ok := reg.Resolve("add"); !ok {
		t.Error("built-in 'add' missing after concurrent access")
	}
}
