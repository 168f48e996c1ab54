package aliasmanagement

import (
	"errors"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
	"github.com/AntonioJCosta/rolodex/internal/core/services/interpreter"
	"github.com/AntonioJCosta/rolodex/internal/core/testutil"
	"github.com/AntonioJCosta/rolodex/internal/repositories/aliasstore"
	"github.com/AntonioJCosta/rolodex/internal/repositories/commandregistry"
)

func newInterpreter() ports.Interpreter {
	builtins := []command.Action{command.ActionAdd, command.ActionList, command.ActionClear}
	parsers := map[command.Action]ports.ArgumentParser{}
	for _, action := range builtins {
		parsers[action] = &testutil.MockArgumentParser{}
	}
	return interpreter.NewService(commandregistry.New(builtins), parsers)
}

func TestNewService(t *testing.T) {
	t.Run("should return a service if dependencies are not nil", func(t *testing.T) {
		svc := NewService(&testutil.MockInterpreter{}, &testutil.MockAliasStore{})
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if interpreter is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil interpreter")
			}
		}()
		_ = NewService(nil, &testutil.MockAliasStore{})
	})

	t.Run("should panic if store is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil store")
			}
		}()
		_ = NewService(&testutil.MockInterpreter{}, nil)
	})
}

func TestService_Restore(t *testing.T) {
	loadErr := errors.New("disk on fire")

	tests := []struct {
		name         string
		saved        []alias.Alias
		loadErr      error
		wantRestored []alias.Alias
		wantSkipped  []alias.Alias
		wantErr      bool
	}{
		{
			name:  "nothing saved",
			saved: []alias.Alias{},
		},
		{
			name: "all recognized",
			saved: []alias.Alias{
				{Name: "ad", Action: command.ActionAdd},
				{Name: "ls", Action: command.ActionList},
			},
			wantRestored: []alias.Alias{
				{Name: "ad", Action: command.ActionAdd},
				{Name: "ls", Action: command.ActionList},
			},
		},
		{
			name: "stale action skipped",
			saved: []alias.Alias{
				{Name: "ad", Action: command.ActionAdd},
				{Name: "rm", Action: command.Action("remove")},
			},
			wantRestored: []alias.Alias{{Name: "ad", Action: command.ActionAdd}},
			wantSkipped:  []alias.Alias{{Name: "rm", Action: command.Action("remove")}},
		},
		{
			name:    "store error",
			loadErr: loadErr,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutil.MockAliasStore{
				GetSavedAliasesFunc: func() ([]alias.Alias, error) { return tt.saved, tt.loadErr },
			}
			in := newInterpreter()
			svc := NewService(in, store)

			got, err := svc.Restore()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Restore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, loadErr) {
					t.Errorf("Restore() error = %v, want it to wrap %v", err, loadErr)
				}
				return
			}
			if !reflect.DeepEqual(got.Restored, tt.wantRestored) {
				t.Errorf("Restore() restored = %v, want %v", got.Restored, tt.wantRestored)
			}
			if !reflect.DeepEqual(got.Skipped, tt.wantSkipped) {
				t.Errorf("Restore() skipped = %v, want %v", got.Skipped, tt.wantSkipped)
			}
			for _, a := range tt.wantRestored {
				res, _ := in.Parse(a.Name)
				if parsed, ok := res.(command.ParsedCommand); !ok || parsed.Action != a.Action {
					t.Errorf("Parse(%q) after Restore() = %#v, want action %q", a.Name, res, a.Action)
				}
			}
		})
	}
}

func TestService_Learn(t *testing.T) {
	saveErr := errors.New("read-only")

	tests := []struct {
		name      string
		candidate string
		pending   string
		saveErr   error
		want      command.Result
		wantSaved []alias.Alias
		wantErr   bool
	}{
		{
			name:      "known candidate is bound and saved",
			candidate: "add",
			pending:   "ad",
			want:      command.NewCommand{Action: command.ActionAdd, Word: "ad"},
			wantSaved: []alias.Alias{{Name: "ad", Action: command.ActionAdd}},
		},
		{
			name:      "unknown candidate is neither bound nor saved",
			candidate: "plus",
			pending:   "ad",
			want:      command.UnknownCommand{Word: "plus"},
		},
		{
			name:      "save failure still reports the bind",
			candidate: "add",
			pending:   "ad",
			saveErr:   saveErr,
			want:      command.NewCommand{Action: command.ActionAdd, Word: "ad"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved []alias.Alias
			store := &testutil.MockAliasStore{
				SaveAliasFunc: func(a alias.Alias) (bool, error) {
					if tt.saveErr != nil {
						return false, tt.saveErr
					}
					saved = append(saved, a)
					return true, nil
				},
			}
			svc := NewService(newInterpreter(), store)

			got, err := svc.Learn(tt.candidate, tt.pending)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Learn() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, tt.saveErr) {
				t.Errorf("Learn() error = %v, want it to wrap %v", err, tt.saveErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Learn() = %#v, want %#v", got, tt.want)
			}
			if !reflect.DeepEqual(saved, tt.wantSaved) {
				t.Errorf("saved aliases = %v, want %v", saved, tt.wantSaved)
			}
		})
	}
}

func TestService_LearnThenRestoreAcrossSessions(t *testing.T) {
	store := aliasstore.NewMemoryStore()

	first := NewService(newInterpreter(), store)
	if _, err := first.Learn("add", "ad"); err != nil {
		t.Fatalf("Learn() unexpected error = %v", err)
	}

	in := newInterpreter()
	second := NewService(in, store)
	result, err := second.Restore()
	if err != nil {
		t.Fatalf("Restore() unexpected error = %v", err)
	}
	if want := []alias.Alias{{Name: "ad", Action: command.ActionAdd}}; !reflect.DeepEqual(result.Restored, want) {
		t.Errorf("Restore() restored = %v, want %v", result.Restored, want)
	}
	res, _ := in.Parse("ad n/Bob")
	if parsed, ok := res.(command.ParsedCommand); !ok || parsed.Action != command.ActionAdd {
		t.Errorf("Parse(ad n/Bob) in new session = %#v, want action add", res)
	}
}

func TestService_RestoreKeepsSavedActionAfterRebind(t *testing.T) {
	store := aliasstore.NewMemoryStore()

	first := NewService(newInterpreter(), store)
	for _, step := range [][2]string{{"clear", "rm"}, {"list", "clear"}, {"rm", "x"}} {
		if _, err := first.Learn(step[0], step[1]); err != nil {
			t.Fatalf("Learn(%q, %q) unexpected error = %v", step[0], step[1], err)
		}
	}

	in := newInterpreter()
	result, err := NewService(in, store).Restore()
	if err != nil {
		t.Fatalf("Restore() unexpected error = %v", err)
	}
	if len(result.Skipped) != 0 {
		t.Errorf("Restore() skipped = %v, want none", result.Skipped)
	}

	want := map[string]command.Action{
		"rm":    command.ActionClear,
		"clear": command.ActionList,
		"x":     command.ActionClear,
	}
	for _, a := range result.Restored {
		if want[a.Name] != a.Action {
			t.Errorf("Restore() reported %v, want action %q", a, want[a.Name])
		}
	}
	for _, a := range in.ListRegistered() {
		if action, ok := want[a.Name]; ok && a.Action != action {
			t.Errorf("%q resolves to %q after Restore(), want %q", a.Name, a.Action, action)
		}
	}
}

func TestService_Forget(t *testing.T) {
	clearErr := errors.New("busy")

	t.Run("success", func(t *testing.T) {
		store := aliasstore.NewMemoryStore()
		if _, err := store.SaveAlias(alias.Alias{Name: "ad", Action: command.ActionAdd}); err != nil {
			t.Fatalf("SaveAlias() unexpected error = %v", err)
		}
		svc := NewService(newInterpreter(), store)
		if err := svc.Forget(); err != nil {
			t.Fatalf("Forget() unexpected error = %v", err)
		}
		if left, _ := store.GetSavedAliases(); len(left) != 0 {
			t.Errorf("store still holds %v after Forget()", left)
		}
	})

	t.Run("store error", func(t *testing.T) {
		store := &testutil.MockAliasStore{ClearAliasesFunc: func() error { return clearErr }}
		svc := NewService(newInterpreter(), store)
		if err := svc.Forget(); !errors.Is(err, clearErr) {
			t.Errorf("Forget() error = %v, want it to wrap %v", err, clearErr)
		}
	})
}

func TestService_ListAliases(t *testing.T) {
	listErr := errors.New("store error")
	want := []alias.Alias{{Name: "ad", Action: command.ActionAdd}}

	tests := []struct {
		name                string
		setupMock           func(m *testutil.MockAliasStore)
		expectedResult      []alias.Alias
		wantErr             bool
		expectedErrorString string
	}{
		{
			name: "success",
			setupMock: func(m *testutil.MockAliasStore) {
				m.GetSavedAliasesFunc = func() ([]alias.Alias, error) { return want, nil }
			},
			expectedResult: want,
		},
		{
			name: "failure - store returns error",
			setupMock: func(m *testutil.MockAliasStore) {
				m.GetSavedAliasesFunc = func() ([]alias.Alias, error) { return nil, listErr }
			},
			wantErr:             true,
			expectedErrorString: "failed to list saved aliases: store error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &testutil.MockAliasStore{}
			tt.setupMock(m)
			svc := NewService(newInterpreter(), m)

			got, err := svc.ListAliases()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListAliases() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err.Error() != tt.expectedErrorString {
				t.Errorf("ListAliases() error = %q, want %q", err.Error(), tt.expectedErrorString)
			}
			if !reflect.DeepEqual(got, tt.expectedResult) {
				t.Errorf("ListAliases() = %v, want %v", got, tt.expectedResult)
			}
		})
	}
}
