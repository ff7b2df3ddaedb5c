package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-binsize/pkg/symbol"
)

// parseNM reads POSIX `nm -P` lines: `name type value size`, with value and
// size printed in the configured radix. Size may be absent. Undefined symbols
// are skipped; blank and malformed lines are tolerated, matching the
// degrade-silently contract of the aggregation core.
func parseNM(raw []byte, radix int) ([]symbol.Symbol, error) {
	var symbols []symbol.Symbol

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	index := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, kind, value, size, ok := splitNMLine(line, radix)
		if !ok {
			continue
		}

		section, ok := sectionForType(kind)
		if !ok {
			continue
		}

		sym := symbol.Symbol{
			ID:      fmt.Sprintf("sym-%d", index),
			Name:    name,
			Section: section,
		}
		if strings.HasPrefix(name, "_Z") {
			sym.Mangled = name
		}
		if value != nil {
			sym.Address = symbol.Addr(*value)
		}
		if size != nil {
			sym.Size = float64(*size)
		}

		symbols = append(symbols, sym)
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dump parser: scan nm output: %w", err)
	}

	return symbols, nil
}

// splitNMLine recovers the `name type value size` fields from the line end
// backwards, so demangled names containing spaces ("Map<int, int>") survive
// intact. Value and size are optional; the type letter is mandatory.
func splitNMLine(line string, radix int) (name string, kind byte, value, size *uint64, ok bool) {
	fields := strings.Fields(line)
	n := len(fields)
	if n < 2 {
		return "", 0, nil, nil, false
	}

	parse := func(s string) *uint64 {
		v, err := strconv.ParseUint(s, radix, 64)
		if err != nil {
			return nil
		}
		return &v
	}

	if n >= 4 && len(fields[n-3]) == 1 {
		if v, s := parse(fields[n-2]), parse(fields[n-1]); v != nil && s != nil {
			return strings.Join(fields[:n-3], " "), fields[n-3][0], v, s, true
		}
	}
	if n >= 3 && len(fields[n-2]) == 1 {
		if v := parse(fields[n-1]); v != nil {
			return strings.Join(fields[:n-2], " "), fields[n-2][0], v, nil, true
		}
	}
	if len(fields[n-1]) == 1 {
		return strings.Join(fields[:n-1], " "), fields[n-1][0], nil, nil, true
	}
	return "", 0, nil, nil, false
}

// sectionForType maps nm type letters onto section identifiers. Undefined
// symbols report no section and are dropped.
func sectionForType(c byte) (string, bool) {
	switch c {
	case 't', 'T', 'w', 'W':
		return ".text", true
	case 'd', 'D', 'v', 'V':
		return ".data", true
	case 'b', 'B', 'c', 'C':
		return ".bss", true
	case 'r', 'R':
		return ".rodata", true
	case 'a', 'A':
		return ".abs", true
	case 'u', 'U':
		return "", false
	default:
		return "", true
	}
}
