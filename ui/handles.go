package ui

import (
	"github.com/gotk3/gotk3/gtk"

	. "github.com/Atlinx/planck-scribe/shared"
)

var mainWin *gtk.Window
var mainBox *gtk.Box
var headingLabel *gtk.Label
var hintLabel *gtk.Label
var openBtn *gtk.Button
var reloadBtn *gtk.Button
var baseCombo *gtk.ComboBoxText
var positionChb *gtk.CheckButton
var pickedLabel *gtk.Label
var notesScroll *gtk.ScrolledWindow
var notesView *gtk.TextView
var notesBuffer *gtk.TextBuffer
var recentScroll *gtk.ScrolledWindow
var recentView *gtk.TreeView
var dropOverlay *gtk.Label

func buildUI() error {
	var err error
	if mainWin, err = gtk.WindowNew(gtk.WINDOW_TOPLEVEL); err != nil {
		return err
	}
	mainWin.SetTitle("Planck Scribe")
	mainWin.SetDefaultSize(640, 480)

	if mainBox, err = gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 16); err != nil {
		return err
	}
	mainBox.SetMarginTop(16)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(16)
	mainBox.SetMarginEnd(16)

	if headingLabel, err = gtk.LabelNew(""); err != nil {
		return err
	}
	headingLabel.SetMarkup(`<span size="xx-large" weight="bold">Planck Scribe 🎹</span>`)
	if hintLabel, err = gtk.LabelNew("Drag-and-drop MIDI files onto the window!"); err != nil {
		return err
	}
	if dropOverlay, err = gtk.LabelNew(""); err != nil {
		return err
	}
	dc, _ := dropOverlay.GetStyleContext()
	dc.AddClass("drop")

	buttons, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 8)
	if err != nil {
		return err
	}
	buttons.SetHAlign(gtk.ALIGN_CENTER)
	if openBtn, err = gtk.ButtonNewWithLabel("Open MIDI file…"); err != nil {
		return err
	}
	if reloadBtn, err = gtk.ButtonNewWithLabel("Reload"); err != nil {
		return err
	}
	if baseCombo, err = gtk.ComboBoxTextNew(); err != nil {
		return err
	}
	for _, name := range BaseKeyNames() {
		baseCombo.AppendText(name)
	}
	baseCombo.SetTooltipText("key playing the base pitch")
	if positionChb, err = gtk.CheckButtonNewWithLabel("row/column labels"); err != nil {
		return err
	}
	buttons.PackStart(openBtn, false, false, 0)
	buttons.PackStart(reloadBtn, false, false, 0)
	buttons.PackStart(baseCombo, false, false, 0)
	buttons.PackStart(positionChb, false, false, 0)

	if pickedLabel, err = gtk.LabelNew(""); err != nil {
		return err
	}
	pickedLabel.SetLineWrap(true)
	pickedLabel.SetSelectable(true)

	if notesView, err = gtk.TextViewNew(); err != nil {
		return err
	}
	notesView.SetEditable(false)
	notesView.SetCursorVisible(false)
	notesView.SetMonospace(true)
	notesView.SetWrapMode(gtk.WRAP_WORD_CHAR)
	if notesBuffer, err = notesView.GetBuffer(); err != nil {
		return err
	}
	if notesScroll, err = gtk.ScrolledWindowNew(nil, nil); err != nil {
		return err
	}
	notesScroll.SetPolicy(gtk.POLICY_AUTOMATIC, gtk.POLICY_AUTOMATIC)
	notesScroll.SetVExpand(true)
	notesScroll.Add(notesView)

	if recentView, err = gtk.TreeViewNew(); err != nil {
		return err
	}
	if recentScroll, err = gtk.ScrolledWindowNew(nil, nil); err != nil {
		return err
	}
	recentScroll.SetPolicy(gtk.POLICY_NEVER, gtk.POLICY_AUTOMATIC)
	recentScroll.SetSizeRequest(-1, 100)
	recentScroll.Add(recentView)

	mainBox.PackStart(headingLabel, false, false, 0)
	mainBox.PackStart(hintLabel, false, false, 0)
	mainBox.PackStart(dropOverlay, false, false, 0)
	mainBox.PackStart(buttons, false, false, 0)
	mainBox.PackStart(pickedLabel, false, false, 0)
	mainBox.PackStart(notesScroll, true, true, 0)
	mainBox.PackStart(recentScroll, false, true, 0)
	mainWin.Add(mainBox)
	return nil
}
