// Package sshconfig parses SSH-style configuration files to discover the
// address of an OpenSILEX deployment by host alias.
package sshconfig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/opensilex/go-client/util"
)

// Hosts maps a host alias to its lower-cased attribute keys and values.
type Hosts map[string]map[string]string

// DefaultAliases are the aliases probed, in order, when no alias is given.
var DefaultAliases = []string{
	"opensilex", "opensilex-vm", "opensilex-dev", "vm",
	"phis", "phis-vm", "phis-dev", "phis-prod", "phis-test",
}

// restPort is the port OpenSILEX deployments expose the REST API on.
const restPort = "28081"

// Parse reads SSH-config-style text. A line of the form "Host <alias>" opens
// a new entry; following "<key> <value>" lines are stored under it with the
// key lower-cased. Blank lines, comment lines, and attribute lines seen
// before any Host line are skipped.
func Parse(r io.Reader) Hosts {
	hosts := Hosts{}
	current := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if len(line) > 5 && strings.EqualFold(line[:5], "host ") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			current = fields[1]
			hosts[current] = map[string]string{}
			continue
		}

		if current == "" {
			continue
		}
		sep := strings.IndexFunc(line, unicode.IsSpace)
		if sep < 0 {
			continue
		}
		key := strings.ToLower(line[:sep])
		hosts[current][key] = strings.TrimSpace(line[sep:])
	}
	if err := scanner.Err(); err != nil {
		util.Warnf("Error reading SSH config: %v", err)
	}

	return hosts
}

// ParseFile parses the file at path, or ~/.ssh/config when path is empty.
// A missing or unreadable file yields an empty map, never an error.
func ParseFile(path string) Hosts {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			util.Warnf("Could not resolve home directory: %v", err)
			return Hosts{}
		}
		path = filepath.Join(home, ".ssh", "config")
	}

	f, err := os.Open(path)
	if err != nil {
		util.Warnf("SSH config file not found: %s", path)
		return Hosts{}
	}
	defer f.Close()

	return Parse(f)
}

// Hostname returns the address of alias: its hostname attribute, falling back
// to the host attribute, or "" if the alias is unknown.
func (h Hosts) Hostname(alias string) string {
	attrs, ok := h[alias]
	if !ok {
		return ""
	}
	if hostname, ok := attrs["hostname"]; ok {
		return hostname
	}
	return attrs["host"]
}

// BaseURL builds the REST base URL for alias, or "" if the alias cannot be
// resolved to an address.
func (h Hosts) BaseURL(alias string) string {
	hostname := h.Hostname(alias)
	if hostname == "" {
		return ""
	}
	return fmt.Sprintf("http://%s:%s/rest", hostname, restPort)
}

// Resolve returns the base URL for alias, or, when alias is empty, for the
// first of DefaultAliases present in the map.
func (h Hosts) Resolve(alias string) string {
	if alias != "" {
		return h.BaseURL(alias)
	}
	for _, candidate := range DefaultAliases {
		if _, ok := h[candidate]; ok {
			util.Infof("Found SSH host '%s' in config", candidate)
			return h.BaseURL(candidate)
		}
	}
	return ""
}
