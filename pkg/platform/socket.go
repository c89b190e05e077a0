package platform

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
)

const (
	// Time allowed to write a control message to the shim.
	writeWait = time.Second
	// Maximum event size accepted from a shim.
	maxMessageSize = 8192

	pingPeriod = 5 * time.Second
	// Number of lost pings tolerated before the shim is considered gone.
	pongWait = pingPeriod * 3
)

// SocketServer accepts out-of-process shims over websocket. Every text or
// binary message is one encoded event and is handed to the bridge; a shim
// that sends a malformed event stays connected.
//
//	bridge := win.Bridge(platform.JsonCodec{})
//	http.Handle("/events", platform.NewSocketServer(bridge))
type SocketServer struct {
	bridge   *Bridge
	upgrader websocket.Upgrader
}

// NewSocketServer creates a handler feeding bridge.
func NewSocketServer(bridge *Bridge) *SocketServer {
	return &SocketServer{bridge: bridge}
}

// ServeHTTP upgrades the request and serves the connection until the shim
// disconnects, the request context ends or the bridge closes.
func (s *SocketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		return
	}
	if err := s.serve(r.Context(), conn); err != nil {
		errors.Report(&errors.Error{
			Op:   "platform.SocketServer.ServeHTTP",
			Kind: errors.KindPlatform,
			Err:  err,
		})
	}
}

func (s *SocketServer) serve(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	group, groupCtx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	group.Go(func() error {
		defer close(done)
		return s.readEvents(conn)
	})
	group.Go(func() error {
		return ping(groupCtx, conn, done)
	})

	err := group.Wait()
	if isClosure(err) || errors.Is(err, ErrClosed) {
		return nil
	}
	return err
}

func (s *SocketServer) readEvents(conn *websocket.Conn) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if isUnexpected(err) {
				return err
			}
			return nil
		}
		err = s.bridge.HandleEvent(data)
		switch {
		case errors.Is(err, ErrClosed):
			closeNormally(conn)
			return ErrClosed
		case errors.Is(err, ErrNotConnected):
			return err
		}
		// Decode failures are already reported by the bridge.
	}
}

func ping(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			closeNormally(conn)
			return nil
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				if isUnexpected(err) {
					return err
				}
				return nil
			}
		}
	}
}

func closeNormally(conn *websocket.Conn) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

func isUnexpected(err error) bool {
	return err != nil && websocket.IsUnexpectedCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}

func isClosure(err error) bool {
	return err != nil && websocket.IsCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}

// DialSocket connects a shim to a SocketServer at url. The returned
// SocketShim sends events encoded with codec; a nil codec uses DefaultCodec.
func DialSocket(ctx context.Context, url string, codec MessageCodec) (*SocketShim, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if codec == nil {
		codec = DefaultCodec
	}
	return &SocketShim{conn: conn, codec: codec}, nil
}

// SocketShim is the shim end of a SocketServer connection.
type SocketShim struct {
	mu    sync.Mutex
	conn  *websocket.Conn
	codec MessageCodec
}

// Send encodes ev and writes it as one message. JSON goes out as a text
// message, anything else as binary.
func (s *SocketShim) Send(ev core.Event) error {
	data, err := EncodeEvent(s.codec, ev)
	if err != nil {
		return err
	}
	kind := websocket.BinaryMessage
	if _, ok := s.codec.(JsonCodec); ok {
		kind = websocket.TextMessage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(kind, data)
}

// SendRaw writes data unchanged. Shims with their own encoder use it.
func (s *SocketShim) SendRaw(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.BinaryMessage, data)
}

// Close sends a normal closure and closes the connection.
func (s *SocketShim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	closeNormally(s.conn)
	return s.conn.Close()
}
