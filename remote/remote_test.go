package remote

import (
	"bytes"
	"context"
	"fmt"
	netrpc "net/rpc"
	"testing"
	"time"

	"FractalVisualizer/fractal"
	"FractalVisualizer/misc"
	"FractalVisualizer/palette"
	"FractalVisualizer/rpc"

	"github.com/coder/websocket"
)

func testServer(t *testing.T) string {
	t.Helper()

	port, err := misc.GetFreePort()
	if err != nil {
		t.Fatalf("GetFreePort failed: %s", err)
	}
	address := fmt.Sprintf("127.0.0.1:%d", port)

	server := NewServer(Settings{Address: address})
	if err := server.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}
	t.Cleanup(func() { server.Stop() })
	return address
}

func TestRemoteRenderMatchesLocal(t *testing.T) {
	address := testServer(t)

	request := Request{
		Width:   16,
		Height:  12,
		View:    fractal.DefaultView(),
		Kind:    fractal.Mandelbrot,
		Palette: palette.Classic,
	}
	remote, err := Render(address, request)
	if err != nil {
		t.Fatalf("Render failed: %s", err)
	}

	local, err := fractal.Render(16, 12, fractal.DefaultView(), fractal.Mandelbrot, fractal.Parameter{}, palette.Classic, nil)
	if err != nil {
		t.Fatalf("local Render failed: %s", err)
	}

	if !bytes.Equal(remote, local) {
		t.Error("remote render differs from local render")
	}
}

func TestRemoteRenderDefaultsGradient(t *testing.T) {
	address := testServer(t)

	// A zero gradient on the wire means the client never set one; the server
	// must substitute the default rather than paint everything black.
	request := Request{
		Width:   8,
		Height:  6,
		View:    fractal.DefaultView(),
		Kind:    fractal.Mandelbrot,
		Palette: palette.UserDefined,
	}
	remote, err := Render(address, request)
	if err != nil {
		t.Fatalf("Render failed: %s", err)
	}

	local, err := fractal.Render(8, 6, fractal.DefaultView(), fractal.Mandelbrot, fractal.Parameter{}, palette.UserDefined, nil)
	if err != nil {
		t.Fatalf("local Render failed: %s", err)
	}

	if !bytes.Equal(remote, local) {
		t.Error("remote render with zero gradient differs from local default gradient render")
	}
}

func TestRemoteRenderRejectsDegenerateSize(t *testing.T) {
	address := testServer(t)

	if _, err := Render(address, Request{Width: 0, Height: 6}); err == nil {
		t.Error("render with zero width should fail")
	}
}

func TestRendererRollCall(t *testing.T) {
	address := testServer(t)

	client := rpc.NewTcpClient(address, "RollCallClient")
	if err := client.Connect(); err != nil {
		t.Fatalf("Connect failed: %s", err)
	}
	defer client.Disconnect()

	var reply bool
	if err := client.Call("Renderer.RollCall", misc.Nothing{}, &reply); err != nil {
		t.Fatalf("Call failed: %s", err)
	}
	if !reply {
		t.Error("RollCall reply = false, want true")
	}
}

func TestWebsocketRender(t *testing.T) {
	tcpPort, err := misc.GetFreePort()
	if err != nil {
		t.Fatalf("GetFreePort failed: %s", err)
	}
	wsPort, err := misc.GetFreePort()
	if err != nil {
		t.Fatalf("GetFreePort failed: %s", err)
	}
	wsAddress := fmt.Sprintf("127.0.0.1:%d", wsPort)

	server := NewServer(Settings{
		Address:          fmt.Sprintf("127.0.0.1:%d", tcpPort),
		WebsocketAddress: wsAddress,
	})
	if err := server.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}
	defer server.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The http server starts in a goroutine; retry the dial until it is up
	var conn *websocket.Conn
	for {
		conn, _, err = websocket.Dial(ctx, fmt.Sprintf("ws://%s/ws", wsAddress), nil)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			t.Fatalf("Dialing websocket endpoint: %s", err)
		case <-time.After(100 * time.Millisecond):
		}
	}

	client := netrpc.NewClient(websocket.NetConn(ctx, conn, websocket.MessageBinary))
	defer client.Close()

	request := Request{
		Width:   8,
		Height:  6,
		View:    fractal.DefaultView(),
		Kind:    fractal.Mandelbrot,
		Palette: palette.Fire,
	}
	var reply Reply
	if err := client.Call("Renderer.Render", request, &reply); err != nil {
		t.Fatalf("Call failed: %s", err)
	}

	local, err := fractal.Render(8, 6, fractal.DefaultView(), fractal.Mandelbrot, fractal.Parameter{}, palette.Fire, nil)
	if err != nil {
		t.Fatalf("local Render failed: %s", err)
	}
	if !bytes.Equal(reply.Pixels, local) {
		t.Error("websocket render differs from local render")
	}
}

func TestSettingsVerifyDefaultsAddress(t *testing.T) {
	settings := Settings{}
	if err := settings.Verify(); err != nil {
		t.Fatalf("Verify failed: %s", err)
	}
	if settings.Address == "" {
		t.Error("Verify left address empty")
	}
}
