package tower

// Option configures a [Tower].
type Option func(*Tower)

// DefaultPalette cycles through cup colors by cup number.
var DefaultPalette = []string{"red", "blue", "green", "yellow", "magenta"}

// DefaultLidColor is the color of lids added without an explicit color.
const DefaultLidColor = "black"

// WithCanvas sets the canvas the tower draws on while visible.
func WithCanvas(c Canvas) Option {
	return func(t *Tower) {
		if c != nil {
			t.canvas = c
		}
	}
}

// WithNotifier sets the receiver of user-facing failure messages.
func WithNotifier(n Notifier) Option {
	return func(t *Tower) {
		if n != nil {
			t.notifier = n
		}
	}
}

// WithGeometry sets the unit-to-pixel mapping and display bound.
func WithGeometry(g Geometry) Option {
	return func(t *Tower) {
		if g.Scale > 0 {
			t.geom = g
		}
	}
}

// WithPalette sets the colors [Tower.PushCup] picks from.
func WithPalette(colors []string) Option {
	return func(t *Tower) {
		if len(colors) > 0 {
			t.palette = append([]string(nil), colors...)
		}
	}
}

// WithLidColor sets the color of lids added by [Tower.PushLid] and [Tower.Cover].
func WithLidColor(color string) Option {
	return func(t *Tower) {
		if color != "" {
			t.lidColor = color
		}
	}
}

// WithLiddedColor sets the wall color of covered cups.
func WithLiddedColor(color string) Option {
	return func(t *Tower) {
		if color != "" {
			t.liddedColor = color
		}
	}
}
