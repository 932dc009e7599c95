package tycli

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/tyfind/tyfind/internal/ports"
)

// binaryName is the external tool's command name, without platform suffix.
const binaryName = "ty-find"

// exeName returns the binary name with the platform executable suffix.
func exeName() string {
	if runtime.GOOS == "windows" {
		return binaryName + ".exe"
	}
	return binaryName
}

// Candidates returns the fixed, ordered candidate paths probed for the
// ty-find binary, relative to the running executable:
//
//	1. the directory holding the executable
//	2. bin/ under that directory
//	3. bin/ beside that directory's parent
//
// The list is empty when the executable path cannot be determined.
func Candidates() []string {
	exePath, err := os.Executable()
	if err != nil {
		return nil
	}
	dir := filepath.Dir(exePath)
	name := exeName()
	return []string{
		filepath.Join(dir, name),
		filepath.Join(dir, "bin", name),
		filepath.Join(filepath.Dir(dir), "bin", name),
	}
}

// Resolver implements ports.Resolver over an ordered candidate list, with
// an optional PATH fallback. Every Resolve call re-checks the filesystem:
// installation state may change between calls in long-lived hosts, and a
// remembered path must never outlive the file it pointed at.
type Resolver struct {
	candidates []string
	pathLookup bool
	selfPath   string // running executable, skipped as a candidate
}

// NewResolver builds the bridge-side resolver: the fixed candidates, then
// <workspace>/.tyfind/bin when a workspace root is given, then PATH.
func NewResolver(workspace string) *Resolver {
	cands := Candidates()
	if workspace != "" {
		cands = append(cands, filepath.Join(workspace, ".tyfind", "bin", exeName()))
	}
	return newResolver(cands, true)
}

// NewFixedResolver builds the delegation-side resolver: the fixed
// candidates only, never PATH. The delegating shim carries the tool's own
// name, so a PATH lookup could find the shim itself.
func NewFixedResolver() *Resolver {
	return newResolver(Candidates(), false)
}

// NewStaticResolver resolves to one explicit path (a configured override).
// The path is still checked on every call, like any other candidate.
func NewStaticResolver(path string) *Resolver {
	return newResolver([]string{path}, false)
}

func newResolver(candidates []string, pathLookup bool) *Resolver {
	r := &Resolver{candidates: candidates, pathLookup: pathLookup}
	if exePath, err := os.Executable(); err == nil {
		r.selfPath = exePath
	}
	return r
}

// Candidates returns the paths this resolver probes, for diagnostics.
func (r *Resolver) Candidates() []string {
	return append([]string(nil), r.candidates...)
}

// Resolve returns the first candidate that exists as a regular file, or
// falls back to PATH when enabled. A candidate that is the running
// executable itself is skipped: the Go shim is a binary named ty-find, so
// without this guard delegation would recurse forever.
func (r *Resolver) Resolve() (string, error) {
	var self os.FileInfo
	if r.selfPath != "" {
		self, _ = os.Stat(r.selfPath)
	}

	for _, cand := range r.candidates {
		info, err := os.Stat(cand)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if self != nil && os.SameFile(info, self) {
			continue
		}
		return cand, nil
	}

	if r.pathLookup {
		if path, err := exec.LookPath(binaryName); err == nil {
			if info, statErr := os.Stat(path); statErr == nil && !(self != nil && os.SameFile(info, self)) {
				return path, nil
			}
		}
	}

	return "", ports.ErrBinaryNotFound
}
