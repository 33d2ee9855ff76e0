// Command button-display mirrors a hardware button onto an LED display and
// publishes press/release events to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sweeney/button-display/internal/button"
	"github.com/sweeney/button-display/internal/display"
	"github.com/sweeney/button-display/internal/mirror"
	"github.com/sweeney/button-display/internal/mqtt"
	"github.com/sweeney/button-display/internal/status"
	"github.com/sweeney/button-display/internal/web"
)

func main() {
	poll := flag.Duration("poll", 100*time.Millisecond, "Button polling interval")
	chip := flag.String("chip", button.DefaultChip, "GPIO character device name")
	pin := flag.Int("pin", button.DefaultPin, "BCM pin number for the button")
	displayKind := flag.String("display", "matrix", `Display driver ("matrix", "led" or "off")`)
	matrixRows := flag.String("matrix-rows", pinsString(display.DefaultRowPins), "Comma-separated BCM pins for the matrix rows")
	matrixCols := flag.String("matrix-cols", pinsString(display.DefaultColPins), "Comma-separated BCM pins for the matrix columns")
	ledPin := flag.Int("led-pin", display.DefaultLEDPin, "BCM pin number for the led display")
	broker := flag.String("broker", "tcp://192.168.1.200:1883", "MQTT broker address")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	printState := flag.Bool("print-state", false, "Print current state and exit")
	httpAddr := flag.String("http", ":80", "HTTP status address (empty to disable)")
	wsBroker := flag.String("ws-broker", "=broker", `MQTT websocket URL for live UI ("=broker" derives from --broker, "off" disables)`)

	flag.Parse()

	ws := resolveWSBroker(*wsBroker, *broker)
	if err := run(*poll, *chip, *pin, *displayKind, *matrixRows, *matrixCols, *ledPin, *broker, *heartbeat, *printState, *httpAddr, ws); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(poll time.Duration, chipName string, pin int, displayKind, matrixRows, matrixCols string, ledPin int, broker string, heartbeat time.Duration, printState bool, httpAddr, wsBroker string) error {
	// Build the button accessor chain
	reader := openReader(chipName, pin)
	defer reader.Close()

	// Print state mode
	if printState {
		pressed, err := reader.Read()
		if err != nil {
			return fmt.Errorf("read button: %w", err)
		}
		fmt.Printf("Button: %s\n", stateString(pressed))
		return nil
	}

	// Initialize display
	disp, err := openDisplay(displayKind, chipName, matrixRows, matrixCols, ledPin)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer disp.Close()

	// Initialize MQTT
	publisher := mqtt.NewRealPublisher(broker)
	defer publisher.Close()

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      poll.Milliseconds(),
		HeartbeatMs: heartbeat.Milliseconds(),
		Broker:      broker,
		HTTPAddr:    httpAddr,
		WSBroker:    wsBroker,
		ButtonPin:   pin,
		Display:     displayKind,
	})
	if net := readNetworkInfo(); net != nil {
		tracker.SetNetwork(net)
	}

	// Publish startup event with full status snapshot
	snap := tracker.Snapshot()
	startupEvent := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	} else {
		log.Printf("published startup event")
	}

	// Start HTTP status server
	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	log.Printf("started: poll=%v pin=%d display=%s broker=%s heartbeat=%v", poll, pin, displayKind, broker, heartbeat)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(reader, disp, publisher, publisher, tracker, heartbeat, time.Now, ticker.C, sigCh)
}

func runLoop(reader button.Reader, disp display.Display, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()
	m := mirror.NewMirror(startTime)

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			event := mqtt.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}
			if tracker != nil {
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
				snap := tracker.Snapshot()
				event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
			}
			if err := publisher.PublishSystem(event); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			} else {
				log.Printf("published shutdown event")
			}
			return nil

		case <-tick:
			t := now()
			pressed, err := reader.Read()
			if err != nil {
				// Accessor failures collapse to released; the next tick
				// retries the chain.
				pressed = false
			}

			events := m.Process(mirror.Input{Pressed: pressed, Time: t})
			for _, event := range events {
				log.Printf("event: %s", event.Type)
				if err := publisher.Publish(event); err != nil {
					log.Printf("publish error: %v", err)
					// Don't crash on publish failure
				}
			}

			// Applied every tick, not just on transitions
			if glyph, show := mirror.Render(pressed); show {
				if err := disp.Show(glyph); err != nil {
					log.Printf("display error: %v", err)
				}
			} else {
				if err := disp.Clear(); err != nil {
					log.Printf("display error: %v", err)
				}
			}

			// Check for heartbeat
			if hb := m.CheckHeartbeat(t, heartbeat); hb != nil {
				log.Printf("heartbeat: uptime=%v presses=%d releases=%d",
					hb.Uptime, hb.Counts.Presses, hb.Counts.Releases)

				hbEvent := mqtt.SystemEvent{
					Timestamp: hb.Timestamp,
					Event:     "HEARTBEAT",
				}
				if tracker != nil {
					if mqttStatus != nil {
						tracker.SetMQTTConnected(mqttStatus.IsConnected())
					}
					// Refresh network info for heartbeat
					if net := readNetworkInfo(); net != nil {
						tracker.SetNetwork(net)
					}
					tracker.Update(m.CurrentState(), m.IsBaselined(), m.EventCountsSnapshot())
					snap := tracker.Snapshot()
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
				}
				if err := publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}

			// Update status tracker for HTTP consumers
			if tracker != nil {
				tracker.Update(m.CurrentState(), m.IsBaselined(), m.EventCountsSnapshot())
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
		}
	}
}

// openReader builds the button accessor chain: the character device first,
// then the memory-mapped fallback. A path whose setup fails is skipped; an
// empty chain reads as released.
func openReader(chipName string, pin int) *button.Chain {
	var readers []button.Reader

	if r, err := button.NewLineReader(chipName, pin); err != nil {
		log.Printf("gpio character device unavailable: %v", err)
	} else {
		readers = append(readers, r)
	}

	if r, err := button.NewMemReader(pin); err != nil {
		log.Printf("gpio memory map unavailable: %v", err)
	} else {
		readers = append(readers, r)
	}

	if len(readers) == 0 {
		log.Printf("no working button accessor, every read defaults to released")
	}
	return button.NewChain(readers...)
}

// openDisplay builds the configured display driver.
func openDisplay(kind, chipName, matrixRows, matrixCols string, ledPin int) (display.Display, error) {
	switch kind {
	case "matrix":
		rows, err := parsePins(matrixRows)
		if err != nil {
			return nil, fmt.Errorf("matrix-rows: %w", err)
		}
		cols, err := parsePins(matrixCols)
		if err != nil {
			return nil, fmt.Errorf("matrix-cols: %w", err)
		}
		return display.NewMatrix(chipName, rows, cols)
	case "led":
		return display.NewLED(ledPin)
	case "off":
		return display.Null{}, nil
	default:
		return nil, fmt.Errorf("unknown display driver %q", kind)
	}
}

// pi-helper env var names (written to /run/pi-helper.env).
const (
	envNetworkType       = "NETWORK_TYPE"
	envNetworkIP         = "NETWORK_IP"
	envNetworkStatus     = "NETWORK_STATUS"
	envNetworkGateway    = "NETWORK_GATEWAY"
	envNetworkWifiStatus = "NETWORK_WIFI_STATUS"
	envNetworkWifiSSID   = "NETWORK_WIFI_SSID"
)

func readNetworkInfo() *status.NetworkInfo {
	s := os.Getenv(envNetworkStatus)
	if s == "" {
		return nil
	}
	return &status.NetworkInfo{
		Type:       os.Getenv(envNetworkType),
		IP:         os.Getenv(envNetworkIP),
		Status:     s,
		Gateway:    os.Getenv(envNetworkGateway),
		WifiStatus: os.Getenv(envNetworkWifiStatus),
		SSID:       os.Getenv(envNetworkWifiSSID),
	}
}

func stateString(pressed bool) string {
	if pressed {
		return "PRESSED"
	}
	return "RELEASED"
}

// parsePins parses a comma-separated list of BCM pin numbers.
func parsePins(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	pins := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad pin %q", p)
		}
		pins = append(pins, n)
	}
	if len(pins) == 0 {
		return nil, fmt.Errorf("no pins in %q", s)
	}
	return pins, nil
}

// pinsString renders a pin list as a flag default.
func pinsString(pins []int) string {
	parts := make([]string, len(pins))
	for i, p := range pins {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// resolveWSBroker converts the --ws-broker flag value into a concrete URL.
// "=broker" derives ws://host:9001 from the TCP broker address; "off" disables.
func resolveWSBroker(ws, broker string) string {
	if ws == "off" {
		return ""
	}
	if ws != "=broker" {
		return ws
	}
	u, err := url.Parse(broker)
	if err != nil {
		log.Printf("ws-broker: cannot parse --broker %q: %v", broker, err)
		return ""
	}
	u.Scheme = "ws"
	u.Host = u.Hostname() + ":9001"
	return u.String()
}
