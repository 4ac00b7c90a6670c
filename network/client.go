package network

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1 << 10
	sendBuffer     = 64
)

var errConnClosed = errors.New("connection closed")

// wsConn adapts a websocket connection to the session's Conn interface.
// Sends go through a buffered channel drained by writeLoop, so a slow or
// dead participant can never stall a session's tick loop.
type wsConn struct {
	ws   *websocket.Conn
	out  chan []byte
	dead chan struct{}
	once sync.Once
}

func newWSConn(ws *websocket.Conn) *wsConn {
	return &wsConn{
		ws:   ws,
		out:  make(chan []byte, sendBuffer),
		dead: make(chan struct{}),
	}
}

func (c *wsConn) Send(b []byte) error {
	select {
	case <-c.dead:
		return errConnClosed
	default:
	}
	select {
	case c.out <- b:
		return nil
	default:
		// Drop rather than block: the next tick carries a full snapshot
		// anyway.
		return nil
	}
}

func (c *wsConn) Close() error {
	c.once.Do(func() { close(c.dead) })
	return c.ws.Close()
}

// writeLoop owns all writes to the underlying socket, including keepalive
// pings.
func (c *wsConn) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.dead:
			return
		case b := <-c.out:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, b); err != nil {
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}
