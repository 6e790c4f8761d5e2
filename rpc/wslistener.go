package rpc

import (
	"context"
	"net"
	"net/http"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/coder/websocket"
)

// WebsocketListener adapts accepted websocket connections into a net.Listener
// so the rpc server can serve browser peers and tcp peers the same way.
// Attach it to a TcpServer and route an http endpoint to Handler.
type WebsocketListener struct {
	addr   wsAddr
	cancel context.CancelFunc
	ch     chan *websocket.Conn
	ctx    context.Context

	Logger bslogger.Logger
}

func NewWebsocketListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		addr:   wsAddr{addr: addr},
		cancel: cancel,
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		Logger: bslogger.NewLogger("WebsocketListener", bslogger.Normal, nil),
	}
}

// Handler upgrades http requests to websocket connections and queues them for
// Accept.
func (l *WebsocketListener) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			l.Logger.Warningf("Upgrading connection from %s - %s", r.RemoteAddr, err)
			return
		}

		select {
		case l.ch <- conn:
		case <-l.ctx.Done():
			conn.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case conn := <-l.ch:
		return websocket.NetConn(l.ctx, conn, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
