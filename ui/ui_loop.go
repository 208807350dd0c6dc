package ui

import (
	"context"
	"path/filepath"

	. "github.com/Atlinx/planck-scribe/shared"

	"github.com/charmbracelet/log"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

func loop(ctx context.Context, SinkUI chan Message, logger *log.Logger, prefs *Preferences, recent *Tableau) {
	errors := ""
	errorDialog := gtk.MessageDialogNew(mainWin, gtk.DIALOG_MODAL, gtk.MESSAGE_ERROR, gtk.BUTTONS_CLOSE, "Error")
	errorDialog.Connect("response", func() {
		errorDialog.Hide()
		errors = ""
	})

	picked := ""
	for {
		select {
		case <-ctx.Done():
			logger.Debug("chan Done, quitting")
			glib.IdleAdd(func() {
				mainWin.Destroy()
			})
			return
		case msg := <-SinkUI:
			switch msg.Type {
			case Picked:
				picked = msg.String
				path := picked
				glib.IdleAdd(func() {
					pickedLabel.SetText("Picked file: " + path)
					pickedLabel.Show()
					mainWin.SetTitle("Planck Scribe - " + filepath.Base(path))
				})
			case Loaded:
				text := msg.String
				path := picked
				logger.Debug("notes", "count", msg.Number)
				glib.IdleAdd(func() {
					notesBuffer.SetText(text)
					reloadBtn.SetSensitive(true)
					prefs.AddFile(path)
					recent.FromFiles(prefs.Files())
				})
			case Error:
				if len(errors) == 0 {
					errors = msg.String
				} else {
					errors += "\n\n" + msg.String
				}
				text := errors
				glib.IdleAdd(func() {
					errorDialog.FormatSecondaryText("%s", text)
					errorDialog.Show()
				})
			default:
				logger.Warn("unexpected message", "type", msg.Type)
			}
		}
	}
}
