package client

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const defaultPort = "25565"

// resolveAddress resolves a Minecraft server address into a dialable
// host:port pair. If address already carries an explicit port, it is used
// as-is. Otherwise an SRV lookup for _minecraft._tcp.<host> is attempted;
// its target and port are used if found, and the default port 25565
// otherwise.
func resolveAddress(address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		host = address
		port = ""
	}

	if port != "" {
		return net.JoinHostPort(host, port), nil
	}

	_, records, err := net.LookupSRV("minecraft", "tcp", host)
	if err == nil && len(records) > 0 {
		srv := records[0]
		target := strings.TrimSuffix(srv.Target, ".")
		return net.JoinHostPort(target, strconv.Itoa(int(srv.Port))), nil
	}

	return net.JoinHostPort(host, defaultPort), nil
}

// splitHostPort extracts the host and port to report in the Handshake
// packet's ServerAddress/ServerPort fields. These are the address the user
// asked for (for virtual-host routing on the server), not the SRV-resolved
// dial target, so this deliberately does not consult DNS.
func splitHostPort(address string) (string, uint16, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return address, 25565, nil
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	return host, uint16(port), nil
}
