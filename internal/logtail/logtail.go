package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one parsed key=value log line.
type Entry struct {
	Time      time.Time
	Level     string
	Message   string
	Component string
	Fields    map[string]string
	Raw       string
}

// Parse splits a key=value formatted line. Lines that carry neither a level
// nor a message come back with only Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	fields := splitFields(line)
	if fields["level"] == "" && fields["msg"] == "" {
		return entry
	}

	entry.Level = strings.ToLower(fields["level"])
	entry.Message = fields["msg"]
	entry.Component = fields["component"]
	if ts := fields["time"]; ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			entry.Time = parsed
		}
	}
	delete(fields, "time")
	delete(fields, "level")
	delete(fields, "msg")
	delete(fields, "component")
	if len(fields) > 0 {
		entry.Fields = fields
	}
	return entry
}

// ParseLines parses each line in order.
func ParseLines(lines []string) []Entry {
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		out = append(out, Parse(line))
	}
	return out
}

func splitFields(line string) map[string]string {
	fields := make(map[string]string)
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			break
		}
		key := rest[:eq]
		if strings.ContainsAny(key, " \t\"") {
			break
		}
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := closingQuote(rest)
			if end < 0 {
				break
			}
			quoted := rest[:end+1]
			unquoted, err := strconv.Unquote(quoted)
			if err != nil {
				unquoted = strings.Trim(quoted, `"`)
			}
			value = unquoted
			rest = rest[end+1:]
		} else {
			end := strings.IndexAny(rest, " \t")
			if end < 0 {
				end = len(rest)
			}
			value = rest[:end]
			rest = rest[end:]
		}
		fields[key] = value
		rest = strings.TrimLeft(rest, " \t")
	}
	return fields
}

// closingQuote returns the index of the quote ending the string that opens
// at s[0], honoring backslash escapes.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
