package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Makepad-fr/sharelist/internal/model"
)

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "groceries.json")
	doc := model.ListDocument{
		Name:          "Groceries",
		Items:         []model.Item{{Name: "Milk"}, {Name: "Eggs", URL: "https://example.com/eggs"}},
		CustomColumns: []model.ColumnDef{},
	}
	if err := Save(p, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("got %#v, want %#v", got, doc)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Fatal("expected error")
	}
}
