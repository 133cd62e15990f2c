package scene

import (
	"io"
	"time"

	"github.com/chrissnell/moonify/internal/riseset"
	"github.com/chrissnell/moonify/internal/timeline"
	"github.com/chrissnell/moonify/pkg/responseformat"
)

// Phase is the illumination shown on the disc.
type Phase struct {
	Illumination float64 `json:"illumination"`
	Fraction     float64 `json:"fraction"`
	Name         string  `json:"name"`
	Waxing       bool    `json:"waxing"`
	LitFraction  float64 `json:"litFraction"`
	LitFrom      string  `json:"litFrom"`
}

// Point is a trajectory vertex on the timeline strip.
type Point struct {
	Minute int     `json:"minute"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Sky is the backdrop gradient.
type Sky struct {
	Period string `json:"period"`
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

// Frame is everything the rendering layer needs for one selected instant.
type Frame struct {
	Time      time.Time `json:"time"`
	Day       string    `json:"day"`
	Minute    int       `json:"minute"`
	Second    int       `json:"second"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`

	BodyVisible  bool     `json:"bodyVisible"`
	Visibility   string   `json:"visibility"`
	BodyX        float64  `json:"bodyX"`
	BodyY        float64  `json:"bodyY"`
	BodyDiameter float64  `json:"bodyDiameter"`
	BodyColor    string   `json:"bodyColor"`
	ClipFraction *float64 `json:"clipFraction"`
	HorizonY     float64  `json:"horizonY"`
	AltitudeDeg  float64  `json:"altitude"`
	AzimuthDeg   float64  `json:"azimuth"`
	Direction    string   `json:"direction"`
	Phase        Phase    `json:"phase"`

	RiseMarker     *timeline.Marker `json:"riseMarker"`
	SetMarker      *timeline.Marker `json:"setMarker"`
	HourTicks      []timeline.Tick  `json:"hourTicks"`
	HighlightBands []timeline.Band  `json:"highlightBands"`
	Wraps          bool             `json:"wraps"`
	Offset         float64          `json:"offset"`
	CursorX        []float64        `json:"cursorX"`

	Trajectory     []Point          `json:"trajectory"`
	Extremum       riseset.Extremum `json:"extremum"`
	MaxAltitudeDeg float64          `json:"maxAltitude"`
	RiseSetSource  string           `json:"riseSetSource"`
	Sky            Sky              `json:"sky"`
}

// Encode writes f as "json" or "msgpack".
func Encode(w io.Writer, f Frame, format string) error {
	fm, err := responseformat.ParseFormat(format)
	if err != nil {
		return err
	}
	return (&responseformat.Formatter{Indent: true}).Write(w, f, fm)
}
