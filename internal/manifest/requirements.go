package manifest

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseRequirements parses a pip requirements.txt exported with hashes,
// e.g. the output of "poetry export" or "uv export":
//
//	atomicwrites==1.4.1 ; python_version >= "3.9" \
//	    --hash=sha256:81b2c9071a...
//
// Lines ending with a backslash continue on the next line. Comment lines,
// blank lines and pip options (-r, --index-url, ...) are skipped. Entries
// without a pinned version or hash are kept with empty fields so that
// Validate can name them.
func ParseRequirements(raw []byte, runtime, arch string) (*Manifest, error) {
	var entries []Entry

	logical := joinContinuations(string(raw))
	for _, line := range logical {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		entry, err := parseRequirementLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "fail to parse requirement %q", line)
		}

		entries = append(entries, entry)
	}

	return New(entries, runtime, arch), nil
}

func joinContinuations(raw string) []string {
	var logical []string
	var pending strings.Builder

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.HasSuffix(trimmed, "\\") {
			pending.WriteString(strings.TrimSuffix(trimmed, "\\"))
			pending.WriteString(" ")
			continue
		}

		pending.WriteString(trimmed)
		logical = append(logical, pending.String())
		pending.Reset()
	}

	if pending.Len() > 0 {
		logical = append(logical, pending.String())
	}

	return logical
}

func parseRequirementLine(line string) (Entry, error) {
	// Environment markers come after ";" and do not affect identity.
	spec := line
	if idx := strings.Index(spec, ";"); idx >= 0 {
		rest := spec[idx+1:]
		spec = spec[:idx]

		// hashes may appear after the marker
		if h := strings.Index(rest, "--hash="); h >= 0 {
			spec += " " + rest[h:]
		}
	}

	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return Entry{}, errors.New("empty requirement")
	}

	var entry Entry

	name, version, pinned := strings.Cut(fields[0], "==")
	entry.Name = normalizeName(name)
	if pinned {
		entry.Version = strings.TrimSpace(version)
	}

	var hashes []string
	for _, f := range fields[1:] {
		if strings.HasPrefix(f, "--hash=") {
			hashes = append(hashes, strings.TrimPrefix(f, "--hash="))
		}
	}
	entry.Hash = combineHashes(hashes)

	return entry, nil
}

// normalizeName lowercases and collapses the separators PyPI treats as
// equivalent, per PEP 503.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	return name
}
