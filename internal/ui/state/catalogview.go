package state

import "github.com/atomicstack/script-popup/internal/catalog"

// CatalogView holds the two browsable panels: the category list and the
// scripts of the selected category. The script cursor is NoSelection only
// when the scripts list is empty.
type CatalogView struct {
	catalog *catalog.Catalog

	Categories []string
	Scripts    []catalog.Script

	CategoryCursor Cursor
	ScriptCursor   Cursor
}

// NewCatalogView selects the first category and its first script.
func NewCatalogView(c *catalog.Catalog) *CatalogView {
	v := &CatalogView{catalog: c, Categories: c.Categories()}
	v.CategoryCursor.Reset(len(v.Categories))
	v.refreshScripts()
	return v
}

// Catalog returns the catalog backing the view.
func (v *CatalogView) Catalog() *catalog.Catalog {
	return v.catalog
}

func (v *CatalogView) refreshScripts() {
	if category, ok := v.SelectedCategory(); ok {
		v.Scripts = v.catalog.Scripts(category)
	} else {
		v.Scripts = nil
	}
	v.ScriptCursor.Reset(len(v.Scripts))
}

// SelectedCategory returns the highlighted category.
func (v *CatalogView) SelectedCategory() (string, bool) {
	if !v.CategoryCursor.Valid(len(v.Categories)) {
		return "", false
	}
	return v.Categories[v.CategoryCursor.Index], true
}

// SelectedScript returns the highlighted script.
func (v *CatalogView) SelectedScript() (catalog.Script, bool) {
	if !v.ScriptCursor.Valid(len(v.Scripts)) {
		return catalog.Script{}, false
	}
	return v.Scripts[v.ScriptCursor.Index], true
}

// NextCategory moves to the following category and repopulates the scripts.
func (v *CatalogView) NextCategory() bool {
	if !v.CategoryCursor.Next(len(v.Categories)) {
		return false
	}
	v.refreshScripts()
	return true
}

// PrevCategory moves to the preceding category and repopulates the scripts.
func (v *CatalogView) PrevCategory() bool {
	if !v.CategoryCursor.Prev(len(v.Categories)) {
		return false
	}
	v.refreshScripts()
	return true
}

// TopCategory jumps to the first category.
func (v *CatalogView) TopCategory() bool {
	if !v.CategoryCursor.Home(len(v.Categories)) {
		return false
	}
	v.refreshScripts()
	return true
}

// BottomCategory jumps to the last category.
func (v *CatalogView) BottomCategory() bool {
	if !v.CategoryCursor.End(len(v.Categories)) {
		return false
	}
	v.refreshScripts()
	return true
}

// NextScript moves down the scripts list, wrapping.
func (v *CatalogView) NextScript() bool {
	return v.ScriptCursor.Next(len(v.Scripts))
}

// PrevScript moves up the scripts list, wrapping.
func (v *CatalogView) PrevScript() bool {
	return v.ScriptCursor.Prev(len(v.Scripts))
}

// TopScript jumps to the first script.
func (v *CatalogView) TopScript() bool {
	return v.ScriptCursor.Home(len(v.Scripts))
}

// BottomScript jumps to the last script.
func (v *CatalogView) BottomScript() bool {
	return v.ScriptCursor.End(len(v.Scripts))
}

// ResetScriptCursor moves the script cursor back to the first entry.
func (v *CatalogView) ResetScriptCursor() {
	v.ScriptCursor.Reset(len(v.Scripts))
}

// Select highlights category and, inside it, the script called name.
// It reports false when either is unknown; the category change still
// applies when only the script is missing.
func (v *CatalogView) Select(category, name string) bool {
	idx := v.catalog.IndexOfCategory(category)
	if idx != v.CategoryCursor.Index {
		if !v.CategoryCursor.Set(idx, len(v.Categories)) {
			return false
		}
		v.refreshScripts()
	}
	for i, s := range v.Scripts {
		if s.Name == name {
			return v.ScriptCursor.Set(i, len(v.Scripts))
		}
	}
	return false
}
