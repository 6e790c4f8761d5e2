package misc

import (
	"net"

	"github.com/BrugadaSyndrome/bslogger"
)

// GetFreePort asks the kernel for an unused tcp port and releases it again.
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}

	port := l.Addr().(*net.TCPAddr).Port

	err = l.Close()
	if err != nil {
		return 0, err
	}

	return port, nil
}

// GetLocalAddress returns the IPv4 address of the first non-loopback
// interface that is up, falling back to loopback when the machine has none.
func GetLocalAddress() string {
	logger := bslogger.NewLogger("Network", bslogger.Normal, nil)

	networkInterfaces, err := net.Interfaces()
	if err != nil {
		logger.Warning("Failed to list network interfaces on this device")
		return "127.0.0.1"
	}

	for _, networkInterface := range networkInterfaces {
		if networkInterface.Flags&net.FlagLoopback != 0 || networkInterface.Flags&net.FlagUp == 0 {
			continue
		}

		addresses, err := networkInterface.Addrs()
		if err != nil {
			continue
		}

		for _, address := range addresses {
			if ip, ok := address.(*net.IPNet); ok {
				if ip4 := ip.IP.To4(); len(ip4) == net.IPv4len {
					return ip4.String()
				}
			}
		}
	}

	logger.Warning("No non-loopback interface with a valid address on this device")
	return "127.0.0.1"
}
