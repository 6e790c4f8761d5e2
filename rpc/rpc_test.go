package rpc

import (
	"fmt"
	"testing"
	"time"

	"FractalVisualizer/misc"
)

type Echo struct{}

func (e *Echo) Ping(request string, reply *string) error {
	*reply = request
	return nil
}

func TestTcpServerClientRoundTrip(t *testing.T) {
	port, err := misc.GetFreePort()
	if err != nil {
		t.Fatalf("GetFreePort failed: %s", err)
	}
	address := fmt.Sprintf("127.0.0.1:%d", port)

	server := NewTcpServer(&Echo{}, address, "EchoServer")
	if err := server.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}
	defer server.Stop()

	client := NewTcpClient(address, "EchoClient")
	if err := client.Connect(); err != nil {
		t.Fatalf("Connect failed: %s", err)
	}
	defer client.Disconnect()

	var reply string
	if err := client.Call("Echo.Ping", "hello", &reply); err != nil {
		t.Fatalf("Call failed: %s", err)
	}
	if reply != "hello" {
		t.Errorf("reply = %q, want %q", reply, "hello")
	}
}

func TestTcpClientCallBeforeConnect(t *testing.T) {
	client := NewTcpClient("127.0.0.1:1", "EchoClient")
	var reply string
	if err := client.Call("Echo.Ping", "hello", &reply); err == nil {
		t.Error("Call before Connect should fail")
	}
	if err := client.Disconnect(); err == nil {
		t.Error("Disconnect before Connect should fail")
	}
}

func TestTcpServerStopRefusesNewConnections(t *testing.T) {
	port, err := misc.GetFreePort()
	if err != nil {
		t.Fatalf("GetFreePort failed: %s", err)
	}
	address := fmt.Sprintf("127.0.0.1:%d", port)

	server := NewTcpServer(&Echo{}, address, "EchoServer")
	if err := server.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}
	server.Stop()

	// The accept loop polls with a one second deadline; give it time to
	// observe the shutdown signal and close the listener.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		client := NewTcpClient(address, "EchoClient")
		if err := client.Connect(); err != nil {
			return
		}
		client.Disconnect()
		time.Sleep(100 * time.Millisecond)
	}
	t.Error("server still accepting connections after Stop")
}
