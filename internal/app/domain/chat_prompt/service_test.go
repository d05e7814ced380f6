package llmchat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/session"
)

// MockGenerator is a mock implementation of the Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, instruction, userText string) (string, error) {
	args := m.Called(ctx, instruction, userText)
	return args.String(0), args.Error(1)
}

func newTestSession() *session.Session {
	return session.New("test-session", mappane.Config{
		APIKey:      "maps-key",
		ScriptURL:   "https://maps.example.com/api/js",
		DefaultZoom: 10,
	})
}

const pinsReply = "Two classics:\n```json\n[{\"lat\":38.6916,\"lng\":-9.216,\"label\":\"Belém Tower\"},{\"latitude\":38.6979,\"longitude\":-9.2065,\"name\":\"Jerónimos\"}]\n```"

func TestSend(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     string
		setupMock func(*MockGenerator)
		check     func(t *testing.T, turn Turn, view session.View)
	}{
		{
			name:  "reply with pins replaces the pin list",
			input: "  What to see in Belém?  ",
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, TravelInstruction(), "What to see in Belém?").Return(pinsReply, nil).Once()
			},
			check: func(t *testing.T, turn Turn, view session.View) {
				assert.False(t, turn.Failed)
				assert.True(t, turn.PinsUpdated)
				require.Len(t, view.Transcript, 2)
				assert.Equal(t, models.RoleUser, view.Transcript[0].Role)
				assert.Equal(t, "What to see in Belém?", view.Transcript[0].Content)
				assert.Equal(t, "Two classics:", view.Transcript[1].Content)
				assert.True(t, view.Transcript[1].Markdown)
				require.Len(t, view.Pins, 2)
				assert.Equal(t, "Jerónimos", view.Pins[1].Label)
				assert.Equal(t, view.Pins, turn.Pins)
			},
		},
		{
			name:  "reply without pins keeps the previous pins",
			input: "Any food tips?",
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, mock.Anything, "Any food tips?").Return("Try *pastéis de nata*.", nil).Once()
			},
			check: func(t *testing.T, turn Turn, view session.View) {
				assert.False(t, turn.PinsUpdated)
				require.Len(t, view.Pins, 1)
				assert.Equal(t, "Existing", view.Pins[0].Label)
				assert.Equal(t, "Try *pastéis de nata*.", view.Transcript[1].Content)
			},
		},
		{
			name:  "invalid payload keeps the previous pins and drops the block",
			input: "Where?",
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, mock.Anything, "Where?").Return("Here\n```json\n[{oops\n```", nil).Once()
			},
			check: func(t *testing.T, turn Turn, view session.View) {
				assert.False(t, turn.PinsUpdated)
				require.Len(t, view.Pins, 1)
				assert.Equal(t, "Here", view.Transcript[1].Content)
			},
		},
		{
			name:  "failure appends the fixed error message",
			input: "Hello",
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, mock.Anything, "Hello").Return("", errors.New("connection refused")).Once()
			},
			check: func(t *testing.T, turn Turn, view session.View) {
				assert.True(t, turn.Failed)
				require.Len(t, view.Transcript, 2)
				assert.Equal(t, models.RoleAssistant, view.Transcript[1].Role)
				assert.Equal(t, models.ChatErrorMessage, view.Transcript[1].Content)
				assert.False(t, view.Transcript[1].Markdown)
				require.Len(t, view.Pins, 1)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := new(MockGenerator)
			tc.setupMock(gen)
			service := NewService(gen, zap.NewNop())

			sess := newTestSession()
			sess.Update(func(st *session.State) {
				st.ReplacePins([]models.Pin{{Lat: 1, Lng: 1, Label: "Existing"}})
			})

			turn, err := service.Send(ctx, sess, tc.input)
			require.NoError(t, err)
			assert.Len(t, turn.Messages, 2)

			tc.check(t, turn, sess.Snapshot())
			gen.AssertExpectations(t)
		})
	}
}

func TestSendBlankInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		gen := new(MockGenerator)
		service := NewService(gen, zap.NewNop())
		sess := newTestSession()

		turn, err := service.Send(context.Background(), sess, input)

		assert.ErrorIs(t, err, models.ErrEmptyMessage)
		assert.Empty(t, turn.Messages)
		assert.Empty(t, sess.Snapshot().Transcript)
		gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestSendRefreshesMountedMap(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(pinsReply, nil)
	service := NewService(gen, zap.NewNop())

	sess := newTestSession()
	sess.Update(func(st *session.State) { st.Pane.Enter(st.Pins) })

	_, err := service.Send(context.Background(), sess, "Belém")
	require.NoError(t, err)

	view := sess.Snapshot()
	assert.Len(t, view.Map.Markers, 2)
	assert.Equal(t, 1, view.Map.InstancesCreated)
	assert.Equal(t, 2, view.Map.Refreshes)
}

func TestClearKeepsTheOtherList(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(pinsReply, nil)
	service := NewService(gen, zap.NewNop())

	t.Run("clearing the transcript keeps pins", func(t *testing.T) {
		sess := newTestSession()
		_, err := service.Send(context.Background(), sess, "Belém")
		require.NoError(t, err)

		service.ClearTranscript(sess)
		view := sess.Snapshot()
		assert.Empty(t, view.Transcript)
		assert.Len(t, view.Pins, 2)
	})

	t.Run("clearing pins keeps the transcript", func(t *testing.T) {
		sess := newTestSession()
		_, err := service.Send(context.Background(), sess, "Belém")
		require.NoError(t, err)

		service.ClearPins(sess)
		view := sess.Snapshot()
		assert.Len(t, view.Transcript, 2)
		assert.Empty(t, view.Pins)
	})
}
