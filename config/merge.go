package config

// Environment variables recognized as configuration overrides. Boolean
// overrides are add-only: a truthy token turns the flag on, anything else
// leaves the merged value untouched.
const (
	EnvSkipQuery        = "SIGMOND_SKIP_QUERY"
	EnvSkipBatch        = "SIGMOND_SKIP_BATCH"
	EnvVerbose          = "SIGMOND_VERBOSE"
	EnvDefaultEnsembles = "DEFAULTENSFILE"
)

// sectionMergeDepth bounds recursive merging. The root and the sections
// (build, libraries, compiler) merge key-wise; anything nested deeper,
// including lists and whole library records, is replaced wholesale by the
// higher precedence layer.
const sectionMergeDepth = 2

// mergeLayer overlays src onto dst, returning dst. Maps merge key-wise
// down to sectionMergeDepth levels; all other values from src win
// outright.
func mergeLayer(dst, src map[string]any) map[string]any {
	return mergeAtDepth(dst, src, 1)
}

// mergeAtDepth merges the map at the given 1-based nesting level. A
// nested map is merged key-wise only while the child level is still
// within sectionMergeDepth; at the cutoff the child replaces wholesale.
func mergeAtDepth(dst, src map[string]any, depth int) map[string]any {
	for key, srcValue := range src {
		if depth < sectionMergeDepth {
			srcMap, srcIsMap := srcValue.(map[string]any)
			dstMap, dstIsMap := dst[key].(map[string]any)
			if srcIsMap && dstIsMap {
				dst[key] = mergeAtDepth(dstMap, srcMap, depth+1)
				continue
			}
		}
		dst[key] = srcValue
	}
	return dst
}

// applyEnvOverrides layers the enumerated environment overrides onto the
// merged tree. Only the three skip/verbose booleans and the default
// ensembles file path are env-overridable; every other key is file or
// default only.
func applyEnvOverrides(tree map[string]any, env Environment) {
	build, ok := tree["build"].(map[string]any)
	if !ok {
		build = make(map[string]any)
		tree["build"] = build
	}

	if truthy(env.Get(EnvSkipQuery)) {
		build["skip_query"] = true
	}
	if truthy(env.Get(EnvSkipBatch)) {
		build["skip_batch"] = true
	}
	if truthy(env.Get(EnvVerbose)) {
		build["verbose"] = true
	}
	if path := env.Get(EnvDefaultEnsembles); path != "" {
		build["default_ensembles_file"] = path
	}
}
