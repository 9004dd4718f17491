// Package events provides the UDP completion-event listener/sender pair
// used to simulate external command-completion notifications. It carries no
// correctness obligations for the conversion pipeline.
package events

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// defaultEvents is the canned cycle the demo sender emits.
var defaultEvents = []string{
	"CMD_EXEC_OK: Command A executed successfully",
	"CMD_EXEC_FAIL: Command B failed due to timeout",
	"CMD_EXEC_OK: Command C executed successfully",
}

// Listen binds a UDP socket and logs every received event, classifying
// success and failure markers. It blocks until the socket errors; run it in
// a goroutine.
func Listen(addr string) error {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", addr, err)
	}
	defer conn.Close()

	fmt.Printf("[UDP] Listening for events on %s...\n", addr)

	buf := make([]byte, 1024)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			return fmt.Errorf("reading event: %w", err)
		}
		message := string(buf[:n])
		fmt.Printf("[UDP] Received event: %s\n", message)

		switch {
		case strings.Contains(message, "CMD_EXEC_OK"):
			fmt.Println("[UDP] Success event detected")
		case strings.Contains(message, "CMD_EXEC_FAIL"):
			fmt.Println("[UDP] Warning: failure event detected")
		default:
			// Unrecognized event format, ignore.
		}
	}
}

// Send cycles the canned event list to addr on the given interval. It
// blocks; run it in a goroutine.
func Send(addr string, interval time.Duration) error {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}
	defer conn.Close()

	for {
		for _, event := range defaultEvents {
			if _, err := conn.Write([]byte(event)); err != nil {
				return fmt.Errorf("sending event: %w", err)
			}
			fmt.Printf("[UDP] Sent event: %s\n", event)
			time.Sleep(interval)
		}
	}
}
