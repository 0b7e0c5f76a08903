// Package client exposes the public workflow for talking to a Minecraft
// Java Edition server: resolving its address, querying its status, logging
// in (offline or online mode), sending packets, and awaiting specific
// packet types while a background goroutine drives the wire.
package client
