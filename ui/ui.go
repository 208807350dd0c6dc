package ui

import (
	"context"
	"strings"

	. "github.com/Atlinx/planck-scribe/shared"

	charmlog "github.com/charmbracelet/log"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/Atlinx/planck-scribe/planck"
)

const stylesheet = `
.drop {
	background-color: rgba(0, 0, 0, 0.75);
	color: white;
	padding: 16px;
}
textview {
	font-size: 13px;
}
`

// GTK_STYLE_PROVIDER_PRIORITY_APPLICATION
const styleProviderPriority = 600

// Settings are the values the widgets start with.
type Settings struct {
	Base  planck.Position
	Style planck.LabelStyle
}

// Run builds the window and blocks in the GTK main loop until the window is
// closed or ctx is done.
func Run(ctx context.Context, cancel func(), settings Settings, prefs *Preferences, SinkUI, SinkLoop chan Message) {
	logger := charmlog.FromContext(ctx).WithPrefix("UI")
	logger.Info("start")
	gtk.Init(nil)

	if err := buildUI(); err != nil {
		logger.Fatal("Unable to create window", "err", err)
	}
	mainWin.Connect("destroy", func() {
		logger.Debug("close win, sending quit event")
		select {
		case SinkLoop <- Message{Type: Quit}:
		default:
		}
		cancel()
		gtk.MainQuit()
	})

	recent := NewWithTreeView(recentView)
	recent.FromFiles(prefs.Files())
	recent.OnActivate(func(path string) {
		SinkLoop <- Message{Type: LoadFile, String: path}
	})

	openBtn.Connect("clicked", func() {
		d, _ := gtk.FileChooserDialogNewWith2Buttons("Open MIDI file", mainWin, gtk.FILE_CHOOSER_ACTION_OPEN, "Open", gtk.RESPONSE_ACCEPT, "Cancel", gtk.RESPONSE_CANCEL)
		filter, _ := gtk.FileFilterNew()
		filter.SetName("midi")
		filter.AddPattern("*.mid")
		filter.AddPattern("*.midi")
		filter.AddMimeType("audio/midi")
		d.SetFilter(filter)
		response := d.Run()
		if response == gtk.RESPONSE_ACCEPT {
			SinkLoop <- Message{Type: LoadFile, String: d.GetFilename()}
		}
		d.Destroy()
	})

	reloadBtn.SetSensitive(false)
	reloadBtn.Connect("clicked", func() {
		SinkLoop <- Message{Type: Reload}
	})

	baseCombo.SetActive(BaseKeyIndex(settings.Base))
	baseCombo.Connect("changed", func() {
		p, err := planck.ParsePosition(baseCombo.GetActiveText())
		if err != nil {
			logger.Error(err)
			return
		}
		prefs.BaseKey = p.String()
		SinkLoop <- Message{Type: SetBase, Number: BaseKeyIndex(p)}
	})

	positionChb.SetActive(settings.Style == planck.LabelPosition)
	positionChb.Connect("toggled", func() {
		prefs.Positions = positionChb.GetActive()
		SinkLoop <- Message{Type: SetStyle, Boolean: positionChb.GetActive()}
	})

	targetsList := []gtk.TargetEntry{
		targ(gtk.TargetEntryNew("text/uri-list", gtk.TARGET_OTHER_APP, 0)),
		targ(gtk.TargetEntryNew("text/plain", gtk.TARGET_OTHER_APP, 1)),
	}
	// the drop is finished by hand so the data can also be read while hovering
	mainWin.DragDestSet(gtk.DEST_DEFAULT_MOTION|gtk.DEST_DEFAULT_HIGHLIGHT, targetsList, gdk.ACTION_COPY)
	uriList := gdk.GdkAtomIntern("text/uri-list", false)
	// hovering: the preview data was requested for the current drag
	// dropping: the next data received is the drop itself
	hovering, dropping := false, false
	mainWin.Connect("drag-motion", func(self *gtk.Window, ctx *gdk.DragContext, x, y int, t uint) bool {
		if !hovering {
			hovering = true
			dropOverlay.SetText(dropPreview(nil))
			self.DragGetData(ctx, uriList, uint32(t))
		}
		dropOverlay.Show()
		return false
	})
	mainWin.Connect("drag-leave", func(self *gtk.Window, ctx *gdk.DragContext, t uint) {
		hovering = false
		dropOverlay.Hide()
	})
	mainWin.Connect("drag-drop", func(self *gtk.Window, ctx *gdk.DragContext, x, y int, t uint) bool {
		dropping = true
		self.DragGetData(ctx, uriList, uint32(t))
		return true
	})
	mainWin.Connect("drag-data-received", func(self *gtk.Window, ctx *gdk.DragContext, x, y int, data *gtk.SelectionData, m int, t uint) {
		paths := droppedPaths(data.GetData())
		if !dropping {
			dropOverlay.SetText(dropPreview(paths))
			return
		}
		dropping, hovering = false, false
		dropOverlay.Hide()
		path, ok := firstMidi(paths)
		gtk.DragFinish(ctx, ok, false, uint32(t))
		logger.Debug("dropped", "paths", strings.Join(paths, ", "))
		if !ok {
			SinkUI <- Message{Type: Error, String: "Only .mid and .midi files can be opened."}
			return
		}
		SinkLoop <- Message{Type: LoadFile, String: path}
	})

	prov, _ := gtk.CssProviderNew()
	if err := prov.LoadFromData(stylesheet); err != nil {
		logger.Warn(err)
	}
	screen, _ := gdk.ScreenGetDefault()
	gtk.AddProviderForScreen(screen, prov, styleProviderPriority)
	mainWin.ShowAll()
	dropOverlay.Hide()
	pickedLabel.Hide()

	go loop(ctx, SinkUI, logger, prefs, recent)
	gtk.Main()
	logger.Info("stop")
	if err := prefs.Save(); err != nil {
		logger.Warn("could not save preferences", "err", err)
	}
}

func targ(t *gtk.TargetEntry, err error) gtk.TargetEntry {
	return *t
}
