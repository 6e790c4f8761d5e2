package rpc

import (
	"net"
	"net/rpc"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// TcpServer exposes one rpc object over tcp. The accept loop polls with a
// short deadline so Stop can interrupt it, and extra listeners (such as a
// websocket endpoint) can be attached to serve the same object.
type TcpServer struct {
	address  string
	extra    []net.Listener
	handler  *rpc.Server
	listener *net.TCPListener
	mutex    sync.Mutex
	object   interface{}
	shutdown chan bool

	Logger bslogger.Logger
	Name   string
	WG     *sync.WaitGroup
}

func NewTcpServer(object interface{}, address string, name string) TcpServer {
	return TcpServer{
		address:  address,
		object:   object,
		shutdown: make(chan bool, 1),
		Logger:   bslogger.NewLogger(name, bslogger.Normal, nil),
		Name:     name,
		WG:       &sync.WaitGroup{},
	}
}

func (ts *TcpServer) Run() error {
	ts.WG.Add(1)

	ts.handler = rpc.NewServer()
	err := ts.handler.Register(ts.object)
	if err != nil {
		ts.Logger.Error("Registering object")
		return err
	}

	tcpAddress, err := net.ResolveTCPAddr("tcp", ts.address)
	if err != nil {
		ts.Logger.Errorf("Resolving tcp address %s", ts.address)
		return err
	}

	ts.listener, err = net.ListenTCP("tcp", tcpAddress)
	if err != nil {
		ts.Logger.Errorf("Listening at address %s", ts.address)
		return err
	}

	go func() {
		for {
			select {
			case <-ts.shutdown:
				// Server has been given the signal to shut down
				err := ts.listener.Close()
				if err != nil {
					ts.Logger.Infof("Server closed connection to client - %s", err)
				}
				return
			default:
				// Poll this listener periodically
				ts.listener.SetDeadline(time.Now().Add(1 * time.Second))
			}

			conn, err := ts.listener.Accept()
			if err != nil {
				netErr, ok := err.(net.Error)
				if ok && netErr.Timeout() {
					// Deadline timeout has occurred
					continue
				}
				ts.Logger.Warningf("Listening at address %s - %s", ts.address, err.Error())
				continue
			}

			ts.Logger.Infof("Server opened connection to client at address %s", conn.RemoteAddr())
			go ts.handler.ServeConn(conn)
		}
	}()

	ts.Logger.Infof("Running server at address %s", ts.address)
	return nil
}

// Attach serves rpc connections accepted from an additional listener, such as
// a websocket endpoint, alongside the tcp listener. Call after Run; attached
// listeners are closed by Stop.
func (ts *TcpServer) Attach(listener net.Listener) {
	ts.mutex.Lock()
	ts.extra = append(ts.extra, listener)
	ts.mutex.Unlock()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				// Attached listeners end when closed; nothing to poll
				ts.Logger.Infof("Listener %s closed - %s", listener.Addr(), err)
				return
			}
			ts.Logger.Infof("Server opened connection to client at address %s", conn.RemoteAddr())
			go ts.handler.ServeConn(conn)
		}
	}()

	ts.Logger.Infof("Serving additional listener at address %s", listener.Addr())
}

func (ts *TcpServer) Stop() error {
	ts.Logger.Infof("Shutting down server at address %s", ts.address)
	close(ts.shutdown)

	ts.mutex.Lock()
	for _, listener := range ts.extra {
		if err := listener.Close(); err != nil {
			ts.Logger.Warningf("Closing listener %s - %s", listener.Addr(), err)
		}
	}
	ts.extra = nil
	ts.mutex.Unlock()

	ts.WG.Done()
	return nil
}
