package packagemanagers

// Reader is the existence check the lockfile probes need.
type Reader interface {
	Has(path string) bool
}

// DetectJS detects the JavaScript package manager used in a project
func DetectJS(r Reader) string {
	switch {
	case r.Has("bun.lockb") || r.Has("bun.lock"):
		return "bun"
	case r.Has(".yarnrc.yml"):
		return "yarn-berry"
	case r.Has("pnpm-lock.yaml"):
		return "pnpm"
	case r.Has("yarn.lock"):
		return "yarn"
	case r.Has("deno.json") || r.Has("deno.jsonc"):
		return "deno"
	default:
		return "npm"
	}
}
