package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

// Tableau lists the recently opened files.
type Tableau struct {
	treeView  *gtk.TreeView
	listStore *gtk.ListStore
	paths     []string
}

const (
	COLUMN_NAME = iota
	COLUMN_DATE
)

func NewWithTreeView(treeView *gtk.TreeView) *Tableau {
	cell1Renderer, _ := gtk.CellRendererTextNew()
	column1, _ := gtk.TreeViewColumnNewWithAttribute("recent files", cell1Renderer, "text", COLUMN_NAME)
	column1.SetExpand(true)
	treeView.AppendColumn(column1)

	cell2Renderer, _ := gtk.CellRendererTextNew()
	column2, _ := gtk.TreeViewColumnNewWithAttribute("opened", cell2Renderer, "text", COLUMN_DATE)
	treeView.AppendColumn(column2)

	listStore, err := gtk.ListStoreNew(glib.TYPE_STRING, glib.TYPE_STRING)
	if err != nil {
		log.Fatal("Unable to create list store:", err)
	}
	treeView.SetModel(listStore)

	return &Tableau{
		treeView:  treeView,
		listStore: listStore,
	}
}

func (tb *Tableau) AddRow(path string, date time.Time) {
	iter := tb.listStore.Append()
	tb.listStore.SetValue(iter, COLUMN_NAME, shortPath(path, glib.GetHomeDir()))
	tb.listStore.SetValue(iter, COLUMN_DATE, date.Format("Jan 02 15:04"))
	tb.paths = append(tb.paths, path)
}

func (tb *Tableau) Clear() {
	tb.listStore.Clear()
	tb.paths = tb.paths[:0]
}

func (tb *Tableau) FromFiles(files RecentFiles) {
	tb.Clear()
	for _, rf := range files {
		tb.AddRow(rf.Path, time.Unix(rf.Time, 0))
	}
}

// OnActivate calls f with the path of a double-clicked row.
func (tb *Tableau) OnActivate(f func(path string)) {
	tb.treeView.Connect("row-activated", func(tv *gtk.TreeView, path *gtk.TreePath, column *gtk.TreeViewColumn) {
		indices := path.GetIndices()
		if len(indices) == 0 || indices[0] >= len(tb.paths) {
			return
		}
		f(tb.paths[indices[0]])
	})
}

func shortPath(path, home string) string {
	if home != "" && strings.HasPrefix(path, home) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
