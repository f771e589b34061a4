package sshconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `# deployment hosts
Host demo
    HostName 10.0.0.5
    Port 28081

Host phis-prod
    HostName phis.example.org
    User silex
    IdentityFile ~/.ssh/id_phis
`

func TestParse(t *testing.T) {
	hosts := Parse(strings.NewReader(sampleConfig))

	require.Len(t, hosts, 2)
	assert.Equal(t, map[string]string{
		"hostname": "10.0.0.5",
		"port":     "28081",
	}, map[string]string(hosts["demo"]))
	assert.Equal(t, "silex", hosts["phis-prod"]["user"])
}

func TestParse_AttributesBeforeHostIgnored(t *testing.T) {
	hosts := Parse(strings.NewReader("HostName stray.example.org\n\nHost real\n    HostName 1.2.3.4\n"))
	require.Len(t, hosts, 1)
	assert.Equal(t, "1.2.3.4", hosts.Hostname("real"))
}

func TestParse_CommentsAndBlankLines(t *testing.T) {
	hosts := Parse(strings.NewReader("# only comments\n\n   \n# Host commented\n"))
	assert.Empty(t, hosts)
}

func TestHostname_Fallback(t *testing.T) {
	hosts := Parse(strings.NewReader(sampleConfig))
	assert.Equal(t, "10.0.0.5", hosts.Hostname("demo"))
	assert.Equal(t, "", hosts.Hostname("missing"))

	// No hostname attribute: falls back to the host attribute.
	bare := Hosts{"bare": {"host": "192.168.1.20"}}
	assert.Equal(t, "192.168.1.20", bare.Hostname("bare"))
}

func TestParseFile_Missing(t *testing.T) {
	hosts := ParseFile(filepath.Join(t.TempDir(), "no-such-config"))
	assert.Empty(t, hosts)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	hosts := ParseFile(path)
	assert.Equal(t, "10.0.0.5", hosts.Hostname("demo"))
}

func TestBaseURL(t *testing.T) {
	hosts := Parse(strings.NewReader(sampleConfig))

	assert.Equal(t, "http://10.0.0.5:28081/rest", hosts.BaseURL("demo"))
	assert.Equal(t, "", hosts.BaseURL("missing"))
}

func TestResolve_DefaultAliases(t *testing.T) {
	hosts := Parse(strings.NewReader("Host phis-prod\n    HostName phis.example.org\n"))

	assert.Equal(t, "http://phis.example.org:28081/rest", hosts.Resolve(""))
	assert.Equal(t, "http://phis.example.org:28081/rest", hosts.Resolve("phis-prod"))
	assert.Equal(t, "", hosts.Resolve("unknown"))
}
