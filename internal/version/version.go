package version

import "github.com/fatih/color"

// Version information for the cppfqn CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with each numeric component in its own colour.
// Anything after the patch number (pre-release, build metadata) stays plain.
func Colored(enabled bool) string {
	major, rest, ok1 := cut(Version, '.')
	minor, rest, ok2 := cut(rest, '.')
	if !ok1 || !ok2 || !enabled {
		return Version
	}
	patch, suffix := rest, ""
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			patch, suffix = rest[:i], rest[i:]
			break
		}
	}
	paint := func(c *color.Color, s string) string {
		c.EnableColor()
		return c.Sprint(s)
	}
	return paint(versionMajorColor, major) + "." + paint(versionMinorColor, minor) + "." +
		paint(versionPatchColor, patch) + suffix
}

func cut(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
