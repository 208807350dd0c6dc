package music

import (
	"context"
	"fmt"

	. "github.com/Atlinx/planck-scribe/shared"

	charmlog "github.com/charmbracelet/log"

	"github.com/Atlinx/planck-scribe/planck"
)

// Run serves the requests of the UI until ctx is done or a Quit message
// arrives. Every successful request answers with a Loaded message holding
// the new notes text.
func Run(ctx context.Context, state *State, SinkUI, SinkLoop chan Message) {
	logger := charmlog.FromContext(ctx).WithPrefix("loop")
	logger.Info("start")

	send := func(msg Message) {
		select {
		case SinkUI <- msg:
		case <-ctx.Done():
		}
	}
	notify := func() {
		tracks, notes := state.Stats()
		logger.Debug("render", "tracks", tracks, "notes", notes)
		send(Message{Type: Loaded, String: state.Text(), Number: notes})
	}
	fail := func(err error) {
		logger.Error(err)
		send(Message{Type: Error, String: err.Error()})
	}

loopchan:
	for {
		select {
		case <-ctx.Done():
			logger.Debug("context Done")
			break loopchan
		case msg := <-SinkLoop:
			switch msg.Type {
			case Quit:
				break loopchan
			case LoadFile:
				logger.Info("loading", "path", msg.String)
				if !IsMidiPath(msg.String) {
					logger.Warn("not a .mid/.midi path", "path", msg.String)
				}
				if err := state.LoadFile(msg.String); err != nil {
					fail(err)
					continue
				}
				// only files that loaded become the picked file
				send(Message{Type: Picked, String: state.Path()})
				notify()
			case Reload:
				if err := state.Reload(); err != nil {
					fail(err)
					continue
				}
				notify()
			case SetBase:
				base := planck.Position{Row: msg.Number / planck.Cols, Col: msg.Number % planck.Cols}
				if err := state.SetBase(base); err != nil {
					fail(err)
					continue
				}
				logger.Debug("base key", "key", base)
				if state.Path() != "" {
					notify()
				}
			case SetStyle:
				style := planck.LabelLegend
				if msg.Boolean {
					style = planck.LabelPosition
				}
				state.SetStyle(style)
				logger.Debug("label style", "style", style)
				if state.Path() != "" {
					notify()
				}
			default:
				fail(fmt.Errorf("unknown message type: %v", msg.Type))
			}
		}
	}
	logger.Info("stop")
}
