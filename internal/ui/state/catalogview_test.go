package state

import (
	"testing"

	"github.com/atomicstack/script-popup/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New("/scripts",
		catalog.Script{Name: "backup.sh", Category: "db", Path: "/scripts/db/backup.sh"},
		catalog.Script{Name: "restore.sh", Category: "db", Path: "/scripts/db/restore.sh"},
		catalog.Script{Name: "ping.sh", Category: "net", Path: "/scripts/net/ping.sh"},
	)
}

func TestNewCatalogViewSelectsFirstScript(t *testing.T) {
	v := NewCatalogView(testCatalog())
	category, ok := v.SelectedCategory()
	if !ok || category != "db" {
		t.Fatalf("expected db selected, got %q", category)
	}
	script, ok := v.SelectedScript()
	if !ok || script.Name != "backup.sh" {
		t.Fatalf("expected backup.sh selected, got %+v", script)
	}
}

func TestCategoryChangeRepopulatesScripts(t *testing.T) {
	v := NewCatalogView(testCatalog())
	v.NextScript()
	if v.ScriptCursor.Index != 1 {
		t.Fatalf("expected script cursor 1, got %d", v.ScriptCursor.Index)
	}
	if !v.NextCategory() {
		t.Fatalf("expected category change")
	}
	if len(v.Scripts) != 1 || v.Scripts[0].Name != "ping.sh" {
		t.Fatalf("expected net scripts, got %+v", v.Scripts)
	}
	if v.ScriptCursor.Index != 0 {
		t.Fatalf("expected script cursor reset to 0, got %d", v.ScriptCursor.Index)
	}
	v.NextCategory()
	if category, _ := v.SelectedCategory(); category != "db" {
		t.Fatalf("expected wrap to db, got %q", category)
	}
}

func TestScriptNavigationWrapsAndClamps(t *testing.T) {
	v := NewCatalogView(testCatalog())
	v.PrevScript()
	if v.ScriptCursor.Index != 1 {
		t.Fatalf("expected wrap to last script, got %d", v.ScriptCursor.Index)
	}
	v.TopScript()
	if v.ScriptCursor.Index != 0 {
		t.Fatalf("expected top script, got %d", v.ScriptCursor.Index)
	}
	if v.TopScript() {
		t.Fatalf("expected top to clamp")
	}
	v.BottomScript()
	if v.BottomScript() {
		t.Fatalf("expected bottom to clamp")
	}
}

func TestEmptyCatalogHasNoSelection(t *testing.T) {
	v := NewCatalogView(catalog.New(""))
	if _, ok := v.SelectedCategory(); ok {
		t.Fatalf("expected no category")
	}
	if v.ScriptCursor.Index != NoSelection {
		t.Fatalf("expected script cursor none, got %d", v.ScriptCursor.Index)
	}
	if v.NextScript() || v.NextCategory() {
		t.Fatalf("expected no movement")
	}
}

func TestSelectJumpsToScript(t *testing.T) {
	v := NewCatalogView(testCatalog())
	if !v.Select("net", "ping.sh") {
		t.Fatalf("expected select to succeed")
	}
	if category, _ := v.SelectedCategory(); category != "net" {
		t.Fatalf("expected net, got %q", category)
	}
	if script, _ := v.SelectedScript(); script.Name != "ping.sh" {
		t.Fatalf("expected ping.sh, got %q", script.Name)
	}
	if v.Select("missing", "x.sh") {
		t.Fatalf("expected unknown category to fail")
	}
	if category, _ := v.SelectedCategory(); category != "net" {
		t.Fatalf("expected selection unchanged, got %q", category)
	}

	if !v.Select("db", "restore.sh") {
		t.Fatalf("expected select back into db to succeed")
	}
	if v.CategoryCursor.Index != 0 || v.ScriptCursor.Index != 1 {
		t.Fatalf("expected cursors 0/1, got %d/%d", v.CategoryCursor.Index, v.ScriptCursor.Index)
	}
	if v.Select("db", "missing.sh") {
		t.Fatalf("expected unknown script to fail")
	}
	if script, _ := v.SelectedScript(); script.Name != "restore.sh" {
		t.Fatalf("expected script cursor unchanged, got %q", script.Name)
	}
}
