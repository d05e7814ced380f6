package screens

import (
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/session"
)

// Router switches a session between screens and keeps the map pane in step.
type Router struct {
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{logger: logger}
}

// Navigate makes to the current screen. Leaving the map unmounts the pane;
// entering it mounts the pane, creating the map instance the first time.
// Must be called inside Session.Update.
func (r *Router) Navigate(st *session.State, to models.Screen) error {
	to, err := models.ParseScreen(string(to))
	if err != nil {
		return err
	}

	from := st.Screen
	if from == models.ScreenMap && to != models.ScreenMap {
		st.Pane.Leave()
	}
	if to == models.ScreenMap {
		if created := st.Pane.Enter(st.Pins); created {
			r.logger.Debug("Map instance created", zap.Int("pins", len(st.Pins)))
		}
	}
	st.Screen = to

	if from != to {
		r.logger.Debug("Screen changed", zap.String("from", string(from)), zap.String("to", string(to)))
	}
	return nil
}
