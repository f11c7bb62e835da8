package sink

import (
	"encoding/json"

	"github.com/matzehuels/cupstack/pkg/tower"
)

// Snapshot is the serializable description of a tower at one point in time.
type Snapshot struct {
	Session    string            `json:"session,omitempty"`
	Width      int               `json:"width"`
	MaxHeight  int               `json:"max_height"`
	Height     int               `json:"height"`
	OK         bool              `json:"ok"`
	Visible    bool              `json:"visible"`
	Items      []tower.Item      `json:"items"`
	LidedCups  []int             `json:"lided_cups"`
	Cups       []tower.CupInfo   `json:"cups"`
	Placements []tower.Placement `json:"placements"`
}

// NewSnapshot captures the state of t. session identifies the run the
// snapshot belongs to and may be empty.
func NewSnapshot(t *tower.Tower, session string) Snapshot {
	return Snapshot{
		Session:    session,
		Width:      t.Width(),
		MaxHeight:  t.MaxHeight(),
		Height:     t.Height(),
		OK:         t.Ok(),
		Visible:    t.Visible(),
		Items:      t.StackingItems(),
		LidedCups:  t.LidedCups(),
		Cups:       t.Cups(),
		Placements: t.Layout(),
	}
}

// RenderJSON exports a snapshot as a pretty-printed JSON document.
func RenderJSON(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
