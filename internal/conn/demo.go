package conn

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net"
	"sync"
	"time"

	"raceoverlay/internal/config"
)

var demoDrivers = []string{
	"K. Meyer", "A. Okafor", "J. Lindqvist", "T. Nakamura",
	"R. Duval", "S. Kowalski", "M. Ferreira", "L. Brandt",
}

// demoCar is one synthetic opponent circulating the demo track.
type demoCar struct {
	name   string
	radius float64
	phase  float64
	speed  float64
}

// demoSocket synthesises telemetry frames locally so the whole pipeline can
// run without a server. Frames flow through the same JSON decode path as the
// real transport.
type demoSocket struct {
	start     time.Time
	cars      []demoCar
	closeOnce sync.Once
	closed    chan struct{}
}

// DialDemo ignores the URL and returns a synthetic feed.
func DialDemo(string) (Socket, error) {
	cars := make([]demoCar, config.DemoCarCount)
	for i := range cars {
		cars[i] = demoCar{
			name:   demoDrivers[i%len(demoDrivers)],
			radius: 200 + rand.Float64()*30,
			phase:  rand.Float64() * 2 * math.Pi,
			speed:  0.09 + rand.Float64()*0.04,
		}
	}
	return &demoSocket{
		start:  time.Now(),
		cars:   cars,
		closed: make(chan struct{}),
	}, nil
}

func (d *demoSocket) ReadMessage() ([]byte, error) {
	select {
	case <-d.closed:
		return nil, net.ErrClosed
	case <-time.After(config.DemoInterval):
	}

	t := time.Since(d.start).Seconds()

	// Player laps a 220 m circle; heading is the tangent.
	playerAngle := t * 0.1
	px := 220 * math.Sin(playerAngle)
	py := 220 * math.Cos(playerAngle)

	cars := make([]any, 0, len(d.cars))
	for _, car := range d.cars {
		a := car.phase + t*car.speed
		cars = append(cars, map[string]any{
			"x":    car.radius * math.Sin(a),
			"z":    car.radius * math.Cos(a),
			"name": car.name,
		})
	}

	frame := map[string]any{
		"player": map[string]any{
			"x":           px,
			"z":           py,
			"heading":     math.Mod(playerAngle+math.Pi, 2*math.Pi),
			"lapProgress": math.Mod(t/62.8, 1),
			"delta_ms":    4500 * math.Sin(t*0.21),
		},
		"cars": cars,
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return nil, fmt.Errorf("encode demo frame: %w", err)
	}
	return data, nil
}

func (d *demoSocket) Close() error {
	d.closeOnce.Do(func() { close(d.closed) })
	return nil
}
