package scene

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/chrissnell/moonify/internal/ephemeris"
	"github.com/chrissnell/moonify/internal/mapper"
	"github.com/chrissnell/moonify/internal/sampler"
	"github.com/chrissnell/moonify/internal/timeline"
	"github.com/chrissnell/moonify/pkg/lunar"
)

var errBadObserver = errors.New("bad observer")

// overnightSource rises at 20:30 UTC, peaks at 30° at 01:00 and sets at 05:30.
type overnightSource struct{}

func (overnightSource) PositionAt(t time.Time, lat, _ float64) (ephemeris.Position, error) {
	if lat > 90 {
		return ephemeris.Position{}, errBadObserver
	}
	t = t.UTC()
	m := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60
	x := math.Mod(m-1230+1440, 1440)

	var alt float64
	if x <= 540 {
		alt = 30 * math.Sin(math.Pi*x/540)
	} else {
		alt = -20 * math.Sin(math.Pi*(x-540)/900)
	}
	return ephemeris.Position{
		AltitudeRad:  ephemeris.Radians(alt),
		AzimuthRad:   ephemeris.Radians(m / 4),
		Illumination: 0.5,
	}, nil
}

// directSource also answers rise/set directly, one minute off the samples.
type directSource struct{ overnightSource }

func (directSource) RiseSetTimes(day time.Time, _, _ float64) (ephemeris.RiseSet, error) {
	y, mo, d := day.Date()
	rise := time.Date(y, mo, d, 20, 31, 0, 0, time.UTC)
	set := time.Date(y, mo, d, 5, 29, 0, 0, time.UTC)
	return ephemeris.RiseSet{Rise: &rise, Set: &set}, nil
}

func firstQuarter(time.Time) lunar.Phase {
	return lunar.Phase{Fraction: 0.25, Illumination: 0.5, Waxing: true, Name: "First Quarter"}
}

func newComposer(src ephemeris.Source) (*Composer, *sampler.Cache) {
	cache := sampler.NewCache(sampler.New(src, sampler.DefaultStep, nil), 4, nil)
	return NewComposer(src, cache, DefaultConfig(), nil, WithPhaseFunc(firstQuarter)), cache
}

var testDay = sampler.Day{Year: 2024, Month: time.March, Day: 1, Loc: time.UTC}

func request(minute int) Request {
	return Request{
		Instant: timeline.InstantAt(testDay, minute, 0),
		Lat:     45,
		Lon:     -93,
		Strip:   mapper.Viewport{Width: 1440, Height: 40},
		Panel:   mapper.Viewport{Width: 300, Height: 200},
	}
}

func TestComposeAtPeak(t *testing.T) {
	c, _ := newComposer(overnightSource{})

	f, err := c.Compose(request(60))
	if err != nil {
		t.Fatal(err)
	}

	if !f.BodyVisible || f.Visibility != "visible" {
		t.Errorf("body not visible at peak: %+v", f)
	}
	if f.BodyColor != "#fffafa" {
		t.Errorf("colour at peak = %s, want the high anchor", f.BodyColor)
	}
	if math.Abs(f.MaxAltitudeDeg-30) > 1e-9 {
		t.Errorf("max altitude = %v", f.MaxAltitudeDeg)
	}
	if f.ClipFraction != nil {
		t.Errorf("clip fraction set above the horizon: %v", *f.ClipFraction)
	}
	if f.RiseSetSource != "sampled" {
		t.Errorf("rise/set source = %s", f.RiseSetSource)
	}

	if f.RiseMarker == nil || f.RiseMarker.Label != "20:30:00" {
		t.Errorf("rise marker = %+v", f.RiseMarker)
	}
	if f.SetMarker == nil || f.SetMarker.Label != "05:30:00" {
		t.Errorf("set marker = %+v", f.SetMarker)
	}
	if len(f.HighlightBands) != 2 || len(f.HourTicks) != 25 {
		t.Errorf("bands = %d, ticks = %d", len(f.HighlightBands), len(f.HourTicks))
	}
	if len(f.CursorX) != 1 || f.CursorX[0] != 60 {
		t.Errorf("cursor = %v", f.CursorX)
	}
	if len(f.Trajectory) != 288 {
		t.Errorf("trajectory has %d points", len(f.Trajectory))
	}
	if f.Phase.LitFraction != 0.5 || f.Phase.LitFrom != "right" || f.Phase.Illumination != 0.5 {
		t.Errorf("phase = %+v", f.Phase)
	}
	if f.Sky.Period == "" || !strings.HasPrefix(f.Sky.Top, "#") {
		t.Errorf("sky = %+v", f.Sky)
	}
}

func TestComposeHiddenBody(t *testing.T) {
	c, _ := newComposer(overnightSource{})

	f, err := c.Compose(request(720))
	if err != nil {
		t.Fatal(err)
	}
	if f.BodyVisible || f.Visibility != "hidden" {
		t.Errorf("body visible at noon: %+v", f)
	}
	if f.AltitudeDeg >= 0 {
		t.Errorf("altitude = %v", f.AltitudeDeg)
	}
}

func TestComposeReusesSamples(t *testing.T) {
	c, cache := newComposer(overnightSource{})

	for _, m := range []int{0, 100, 1439} {
		if _, err := c.Compose(request(m)); err != nil {
			t.Fatal(err)
		}
	}
	if hits, misses := cache.Stats(); misses != 1 || hits != 2 {
		t.Errorf("cache hits/misses = %d/%d, want 2/1", hits, misses)
	}
}

func TestComposePrefersDirectRiseSet(t *testing.T) {
	c, _ := newComposer(directSource{})

	f, err := c.Compose(request(60))
	if err != nil {
		t.Fatal(err)
	}
	if f.RiseSetSource != "direct" {
		t.Fatalf("rise/set source = %s", f.RiseSetSource)
	}
	if f.RiseMarker.Label != "20:31:00" || f.SetMarker.Label != "05:29:00" {
		t.Errorf("markers = %s / %s", f.RiseMarker.Label, f.SetMarker.Label)
	}

	noDirect := DefaultConfig()
	noDirect.UseDirectRiseSet = false
	src := directSource{}
	c2 := NewComposer(src, sampler.NewCache(sampler.New(src, 5, nil), 1, nil), noDirect, nil)
	f2, err := c2.Compose(request(60))
	if err != nil {
		t.Fatal(err)
	}
	if f2.RiseSetSource != "sampled" || f2.RiseMarker.Label != "20:30:00" {
		t.Errorf("direct disabled: source %s, rise %s", f2.RiseSetSource, f2.RiseMarker.Label)
	}
}

func TestComposeSourceFailure(t *testing.T) {
	c, _ := newComposer(overnightSource{})

	req := request(60)
	req.Lat = 120
	_, err := c.Compose(req)
	if err == nil {
		t.Fatal("expected an error")
	}

	var se *ephemeris.SourceError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a SourceError", err)
	}
	if !errors.Is(err, errBadObserver) {
		t.Errorf("cause lost: %v", err)
	}
}

func TestComposeZeroViewport(t *testing.T) {
	c, _ := newComposer(overnightSource{})

	req := request(60)
	req.Strip, req.Panel = mapper.Viewport{}, mapper.Viewport{}
	f, err := c.Compose(req)
	if err != nil {
		t.Fatal(err)
	}
	if f.BodyDiameter != 0 || f.BodyX != 0 || f.BodyY != 0 || f.CursorX[0] != 0 {
		t.Errorf("zero viewport frame = %+v", f)
	}
}

func TestEncode(t *testing.T) {
	c, _ := newComposer(overnightSource{})
	f, err := c.Compose(request(60))
	if err != nil {
		t.Fatal(err)
	}

	var js bytes.Buffer
	if err := Encode(&js, f, "json"); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"riseMarker"`, `"highlightBands"`, `"bodyColor": "#fffafa"`, `"kind": "rise"`} {
		if !strings.Contains(js.String(), key) {
			t.Errorf("JSON missing %s", key)
		}
	}

	var mp bytes.Buffer
	if err := Encode(&mp, f, "msgpack"); err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := msgpack.Unmarshal(mp.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	if m["bodyColor"] != "#fffafa" {
		t.Errorf("msgpack bodyColor = %v", m["bodyColor"])
	}

	if err := Encode(&js, f, "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
