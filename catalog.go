package goGrant

import "sort"

// catalog is the fixed table of predefined cluster privileges. It is built
// once during Build and read-only afterward; lookups take no locks.
type catalog struct {
	entries map[string]*Privilege
	none    *Privilege
	all     *Privilege
	names   []string // sorted catalog keys, for diagnostics
}

// catalogBuilder compiles catalog automatons with a sticky error, so the
// construction sequence below reads as a flat list of named definitions
// instead of fifty error branches.
type catalogBuilder struct {
	engine AutomatonEngine
	err    error
}

func (b *catalogBuilder) patterns(patterns ...string) Matcher {
	if b.err != nil {
		return nil
	}
	m, err := b.engine.Compile(patterns)
	if err != nil {
		b.err = err
		return nil
	}
	return m
}

func (b *catalogBuilder) union(matchers ...Matcher) Matcher {
	if b.err != nil {
		return nil
	}
	return b.engine.Union(matchers)
}

func (b *catalogBuilder) minus(include, exclude Matcher) Matcher {
	if b.err != nil {
		return nil
	}
	return b.engine.Difference(include, exclude)
}

// buildCatalog constructs the predefined privilege table in explicit order:
// shared automatons first, then the entries that compose them. Nothing here
// depends on package initialization order.
func buildCatalog(engine AutomatonEngine) (*catalog, error) {
	b := &catalogBuilder{engine: engine}

	// Shared automatons. Later definitions reference earlier ones.
	manageSecurity := b.patterns("cluster:admin/xpack/security/*")
	manageSAML := b.patterns(
		"cluster:admin/xpack/security/saml/*",
		"cluster:admin/xpack/security/token/invalidate",
		"cluster:admin/xpack/security/token/refresh",
	)
	manageOIDC := b.patterns("cluster:admin/xpack/security/oidc/*")
	manageToken := b.patterns("cluster:admin/xpack/security/token/*")
	manageAPIKey := b.patterns("cluster:admin/xpack/security/api_key/*")
	monitor := b.patterns("cluster:monitor/*")
	monitorML := b.patterns("cluster:monitor/xpack/ml/*")
	monitorDataFrame := b.patterns("cluster:monitor/data_frame/*")
	monitorWatcher := b.patterns("cluster:monitor/xpack/watcher/*")
	monitorRollup := b.patterns("cluster:monitor/xpack/rollup/*")
	allCluster := b.patterns("cluster:*", "indices:admin/template/*")
	manage := b.minus(allCluster, manageSecurity)
	manageML := b.patterns("cluster:admin/xpack/ml/*", "cluster:monitor/xpack/ml/*")
	manageDataFrame := b.patterns("cluster:admin/data_frame/*", "cluster:monitor/data_frame/*")
	manageWatcher := b.patterns("cluster:admin/xpack/watcher/*", "cluster:monitor/xpack/watcher/*")
	transportClient := b.patterns("cluster:monitor/nodes/liveness", "cluster:monitor/state")
	manageIdxTemplates := b.patterns("indices:admin/template/*")
	manageIngestPipelines := b.patterns("cluster:admin/ingest/pipeline/*")
	manageRollup := b.patterns("cluster:admin/xpack/rollup/*", "cluster:monitor/xpack/rollup/*")
	manageCCR := b.patterns(
		"cluster:admin/xpack/ccr/*",
		"cluster:monitor/state",
		"cluster:admin/xpack/security/user/has_privileges",
	)
	readCCR := b.patterns(
		"cluster:monitor/state",
		"cluster:admin/xpack/security/user/has_privileges",
	)
	createSnapshot := b.patterns(
		"cluster:admin/snapshot/create",
		"cluster:admin/snapshot/status",
		"cluster:admin/snapshot/status*",
		"cluster:admin/snapshot/get",
		"cluster:admin/repository/get",
	)
	manageILM := b.patterns("cluster:admin/ilm/*")
	readILM := b.patterns("cluster:admin/ilm/get", "cluster:admin/ilm/operation_mode/get")
	none := b.patterns()

	if b.err != nil {
		return nil, b.err
	}

	entries := map[string]Matcher{
		"none":                          none,
		"all":                           allCluster,
		"monitor":                       monitor,
		"monitor_ml":                    monitorML,
		"monitor_data_frame_transforms": monitorDataFrame,
		"monitor_watcher":               monitorWatcher,
		"monitor_rollup":                monitorRollup,
		"manage":                        manage,
		"manage_ml":                     manageML,
		"manage_data_frame_transforms":  manageDataFrame,
		"manage_token":                  manageToken,
		"manage_watcher":                manageWatcher,
		"manage_index_templates":        manageIdxTemplates,
		"manage_ingest_pipelines":       manageIngestPipelines,
		"transport_client":              transportClient,
		"manage_security":               manageSecurity,
		"manage_saml":                   manageSAML,
		"manage_oidc":                   manageOIDC,
		"manage_api_key":                manageAPIKey,
		"manage_pipeline":               manageIngestPipelines,
		"manage_rollup":                 manageRollup,
		"manage_ccr":                    manageCCR,
		"read_ccr":                      readCCR,
		"create_snapshot":               createSnapshot,
		"manage_ilm":                    manageILM,
		"read_ilm":                      readILM,
	}

	c := &catalog{
		entries: make(map[string]*Privilege, len(entries)),
		names:   make([]string, 0, len(entries)),
	}
	for name, matcher := range entries {
		c.entries[name] = newPrivilege([]string{name}, matcher)
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)

	c.none = c.entries["none"]
	c.all = c.entries["all"]
	return c, nil
}

func (c *catalog) lookup(name string) (*Privilege, bool) {
	p, ok := c.entries[name]
	return p, ok
}

// validNames returns the sorted catalog keys. The returned slice is shared
// and must not be mutated; public callers go through Engine.ValidNames,
// which copies.
func (c *catalog) validNames() []string {
	return c.names
}
