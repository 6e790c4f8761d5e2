package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"FractalVisualizer/misc"
	"FractalVisualizer/rpc"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	Address          string
	WebsocketAddress string
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RemoteSettings", bslogger.Normal, nil)

	if s.Address == "" {
		s.Address = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51000")
		s.logger.Infof("Defaulting server address to %s", s.Address)
	}
	// s.WebsocketAddress defaults to empty, which disables the endpoint

	return nil
}

// Server exposes a Renderer over tcp and, when a websocket address is
// configured, over an http websocket endpoint at /ws serving the same rpc
// object.
type Server struct {
	httpServer *http.Server
	logger     bslogger.Logger
	renderer   *Renderer
	settings   Settings
	wsListener *rpc.WebsocketListener

	TcpServer rpc.TcpServer
}

func NewServer(settings Settings) Server {
	server := Server{
		logger:   bslogger.NewLogger("RenderServer", bslogger.Normal, nil),
		renderer: NewRenderer(),
		settings: settings,
	}
	misc.CheckError(server.settings.Verify(), server.logger, misc.Fatal)
	server.TcpServer = rpc.NewTcpServer(server.renderer, server.settings.Address, "RenderServer")
	return server
}

func (s *Server) Run() error {
	if err := s.TcpServer.Run(); err != nil {
		return err
	}

	if s.settings.WebsocketAddress != "" {
		s.wsListener = rpc.NewWebsocketListener(context.Background(), s.settings.WebsocketAddress+"/ws")

		mux := http.NewServeMux()
		mux.HandleFunc("/ws", s.wsListener.Handler())
		s.httpServer = &http.Server{
			Addr:              s.settings.WebsocketAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				s.logger.Errorf("Websocket endpoint at %s - %s", s.settings.WebsocketAddress, err)
			}
		}()
		s.TcpServer.Attach(s.wsListener)
		s.logger.Infof("Accepting websocket renders at ws://%s/ws", s.settings.WebsocketAddress)
	}

	s.logger.Infof("Accepting renders at %s", s.settings.Address)
	return nil
}

func (s *Server) Stop() error {
	if s.httpServer != nil {
		if err := s.httpServer.Close(); err != nil {
			s.logger.Warningf("Closing websocket endpoint - %s", err)
		}
	}
	return s.TcpServer.Stop()
}

// Render asks the render server at address for a pixel buffer. It dials,
// performs the one call, and disconnects.
func Render(address string, request Request) ([]byte, error) {
	client := rpc.NewTcpClient(address, "RenderClient")
	if err := client.Connect(); err != nil {
		return nil, err
	}
	defer client.Disconnect()

	var reply Reply
	if err := client.Call("Renderer.Render", request, &reply); err != nil {
		return nil, err
	}
	return reply.Pixels, nil
}
