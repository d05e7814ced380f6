package mappane

import (
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
)

// Instance is the map widget bound to the map screen.
type Instance struct {
	ID        uuid.UUID
	Center    models.LatLng
	Zoom      float64
	CreatedAt time.Time
}

// Marker is a pin attached to the instance.
type Marker struct {
	ID  int
	Pin models.Pin
}

// Pane follows one session's map through screen switches. It is not safe for
// concurrent use; the owning session serializes access.
type Pane struct {
	cfg          Config
	instance     *Instance
	mounted      bool
	markers      []Marker
	nextMarkerID int
	created      int
	refreshes    int
}

// View is a copy of the pane state for rendering.
type View struct {
	Instance         *Instance
	Mounted          bool
	Markers          []Marker
	InstancesCreated int
	Refreshes        int
}

func NewPane(cfg Config) *Pane {
	return &Pane{cfg: cfg}
}

// Enter mounts the pane. The instance is created on the first entry only;
// later entries reuse it and refresh the markers. It reports whether an
// instance was created.
func (p *Pane) Enter(pins []models.Pin) bool {
	created := false
	if p.instance == nil {
		p.instance = &Instance{
			ID:        uuid.New(),
			Center:    CenterOf(pins, p.cfg.DefaultCenter),
			Zoom:      p.cfg.DefaultZoom,
			CreatedAt: time.Now().UTC(),
		}
		p.created++
		created = true
	}
	p.mounted = true
	p.Refresh(pins)
	return created
}

// Leave unmounts the pane. The instance and its markers are kept.
func (p *Pane) Leave() {
	p.mounted = false
}

// Refresh detaches every marker, then attaches one per pin. Before the
// instance exists there is nothing to attach to and the call is a no-op.
func (p *Pane) Refresh(pins []models.Pin) {
	if p.instance == nil {
		return
	}
	p.markers = nil
	for _, pin := range pins {
		p.nextMarkerID++
		p.markers = append(p.markers, Marker{ID: p.nextMarkerID, Pin: pin})
	}
	p.refreshes++
}

func (p *Pane) Mounted() bool {
	return p.mounted
}

func (p *Pane) Snapshot() View {
	v := View{
		Mounted:          p.mounted,
		InstancesCreated: p.created,
		Refreshes:        p.refreshes,
	}
	if p.instance != nil {
		inst := *p.instance
		v.Instance = &inst
	}
	if len(p.markers) > 0 {
		v.Markers = make([]Marker, len(p.markers))
		copy(v.Markers, p.markers)
	}
	return v
}
