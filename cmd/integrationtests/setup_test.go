package integrationtests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"live-auction/internal/clock"
	"live-auction/internal/config"
	"live-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

// TestServer is a full application behind a real listener, driven by a settable clock.
type TestServer struct {
	App  *server.App
	HTTP *httptest.Server

	now atomic.Int64
}

// Advance moves the server clock forward by d
func (s *TestServer) Advance(d time.Duration) {
	s.now.Add(int64(d))
}

// Now returns the server clock reading
func (s *TestServer) Now() time.Time {
	return time.Unix(0, s.now.Load()).UTC()
}

// SetupTestServer starts the application with the given auctions. With no seeds
// the single auction {id 1, 150, +10, 15 minutes} is used.
func SetupTestServer(t *testing.T, seeds ...config.AuctionSeed) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	cfg.Clock.TickInterval = time.Hour // ticks are exercised by the hub tests
	if len(seeds) == 0 {
		seeds = []config.AuctionSeed{{ID: 1, Title: "Vintage Camera", StartingBid: "150", MinimumIncrement: "10", Duration: 15 * time.Minute}}
	}
	cfg.Auctions = seeds

	ts := &TestServer{}
	ts.now.Store(baseTime.UnixNano())

	app, err := server.NewApp(cfg, clock.Func(ts.Now))
	require.NoError(t, err)
	ts.App = app

	ctx, cancel := context.WithCancel(context.Background())
	hubDone := app.Start(ctx)
	ts.HTTP = httptest.NewServer(app.Router)

	t.Cleanup(func() {
		cancel()
		<-hubDone
		ts.HTTP.Close()
	})
	return ts
}

// Message is an outbound event as a client sees it
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Decode unmarshals the payload into a generic map
func (m Message) Decode(t *testing.T) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, json.Unmarshal(m.Data, &data))
	return data
}

// Connect dials the websocket endpoint and consumes the initial sync
func Connect(t *testing.T, ts *TestServer) (*websocket.Conn, map[string]any) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.HTTP.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })

	msg := ReadMessage(t, conn)
	require.Equal(t, "initialSync", msg.Type)
	return conn, msg.Decode(t)
}

// SendBid writes a placeBid message
func SendBid(t *testing.T, conn *websocket.Conn, auctionID int64, amount float64, bidder string) {
	t.Helper()
	data := map[string]any{"auctionId": auctionID, "bidAmount": amount}
	if bidder != "" {
		data["bidderName"] = bidder
	}
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "placeBid", "data": data}))
}

// ReadMessage returns the next message, failing the test after two seconds
func ReadMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

// ReadType reads messages until one of type typ arrives, skipping time syncs
func ReadType(t *testing.T, conn *websocket.Conn, typ string) map[string]any {
	t.Helper()
	for {
		msg := ReadMessage(t, conn)
		if msg.Type == "timeSync" {
			continue
		}
		require.Equal(t, typ, msg.Type, "unexpected message %s", string(msg.Data))
		return msg.Decode(t)
	}
}

// GetJSON performs a GET against the test server and decodes the body
func GetJSON(t *testing.T, ts *TestServer, path string) (map[string]any, int) {
	t.Helper()

	resp, err := http.Get(ts.HTTP.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body, resp.StatusCode
}
