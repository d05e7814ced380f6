package session

import (
	"sync"
	"time"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
)

// State is the per-browser state of the assistant. It is only reachable
// through Session.Update, which holds the session lock.
type State struct {
	Transcript []models.ChatMessage
	Pins       []models.Pin
	Screen     models.Screen
	Pane       *mappane.Pane
}

// Session is one browser's state, shared by all of its requests.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.Mutex
	state State
}

// View is a copy of the session state taken under the lock.
type View struct {
	ID         string
	Transcript []models.ChatMessage
	Pins       []models.Pin
	Screen     models.Screen
	Map        mappane.View
}

func New(id string, mapCfg mappane.Config) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		state: State{
			Screen: models.ScreenHome,
			Pane:   mappane.NewPane(mapCfg),
		},
	}
}

// Update runs fn with exclusive access to the state.
func (s *Session) Update(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		ID:     s.ID,
		Pins:   models.ClonePins(s.state.Pins),
		Screen: s.state.Screen,
		Map:    s.state.Pane.Snapshot(),
	}
	if len(s.state.Transcript) > 0 {
		v.Transcript = make([]models.ChatMessage, len(s.state.Transcript))
		copy(v.Transcript, s.state.Transcript)
	}
	return v
}

// Append adds messages to the end of the transcript.
func (st *State) Append(msgs ...models.ChatMessage) {
	st.Transcript = append(st.Transcript, msgs...)
}

// ReplacePins swaps the whole pin list and refreshes the map markers.
func (st *State) ReplacePins(pins []models.Pin) {
	st.Pins = models.ClonePins(pins)
	st.Pane.Refresh(st.Pins)
}

// ClearTranscript empties the transcript. Pins are untouched.
func (st *State) ClearTranscript() {
	st.Transcript = nil
}

// ClearPins empties the pin list and detaches the markers. The transcript is untouched.
func (st *State) ClearPins() {
	st.ReplacePins(nil)
}
