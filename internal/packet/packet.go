// File: internal/packet/packet.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Packet records and the trace-file reader. Packets are immutable once
// built and the loaded vector is shared read-only across every worker
// thread for the lifetime of the program.

package packet

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Packet is a parsed 5-tuple. Ports default to 0 when absent in the
// input row.
type Packet struct {
	SrcAddr  uint32
	DstAddr  uint32
	SrcPort  uint32
	DstPort  uint32
	Protocol uint32
}

// ErrMalformedRow is returned for a trace row that cannot supply the
// minimum required set of fields.
var ErrMalformedRow = errors.New("packet: malformed trace row")

// localServerAddr is the fixed literal every constructed packet's
// source address is overridden with; the trace's own src_addr column
// is read but never used.
const localServerAddr uint32 = 0x0a000001 // 10.0.0.1

// LoadTrace reads a packet CSV trace: header row ignored, each data row
// holds protocol, tcp_flags, ip_id, src_addr, src_port, dst_addr,
// dst_port. Only dst_addr, src_port, dst_port and protocol are taken
// from the row; the source address of every constructed packet is
// localServerAddr.
func LoadTrace(path string) ([]Packet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("packet: opening trace %q: %w", path, err)
	}
	defer f.Close()

	var packets []Packet
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			continue // header row, ignored
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("packet: line %d: %w", lineNo, err)
		}
		packets = append(packets, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("packet: reading trace %q: %w", path, err)
	}
	return packets, nil
}

// parseRow splits one trace line into a Packet. A row with all seven
// fields (six commas) is used as-is; a trailing comma with nothing
// after it already splits out as a seventh, empty dst_port field, which
// parseUintField reads as 0. Anything with fewer than six commas is
// malformed.
func parseRow(line string) (Packet, error) {
	fields := strings.Split(line, ",")
	switch {
	case len(fields) < 7:
		return Packet{}, fmt.Errorf("%w: %d fields, want at least 7", ErrMalformedRow, len(fields))
	case len(fields) > 7:
		fields = fields[:7]
	}

	protocol, err := parseUintField(fields[0])
	if err != nil {
		return Packet{}, err
	}
	// fields[1] (tcp_flags) and fields[2] (ip_id) are carried in the
	// trace but are not part of the packet record.
	dstAddr, err := parseIPv4Field(fields[5])
	if err != nil {
		return Packet{}, err
	}
	srcPort, err := parseUintField(fields[4])
	if err != nil {
		return Packet{}, err
	}
	dstPort, err := parseUintField(fields[6])
	if err != nil {
		return Packet{}, err
	}

	return Packet{
		SrcAddr:  localServerAddr,
		DstAddr:  dstAddr,
		SrcPort:  srcPort,
		DstPort:  dstPort,
		Protocol: protocol,
	}, nil
}

func parseUintField(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedRow, s, err)
	}
	return uint32(v), nil
}

func parseIPv4Field(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: invalid IPv4 literal %q", ErrMalformedRow, s)
	}
	var addr uint32
	for _, part := range parts {
		b, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid IPv4 literal %q: %v", ErrMalformedRow, s, err)
		}
		addr = (addr << 8) | uint32(b)
	}
	return addr, nil
}
