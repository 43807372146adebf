package trail

// AppendOption overrides the depth or type recorded for an appended entry.
// Used when a key is known to start a new semantic level, e.g. opening a
// submenu or entering a dashboard.
type AppendOption func(*appendConfig)

type appendConfig struct {
	depth     int
	depthSet  bool
	entryType string
}

// WithDepth records an explicit nesting depth instead of previous+1.
func WithDepth(depth int) AppendOption {
	return func(c *appendConfig) {
		c.depth = depth
		c.depthSet = true
	}
}

// WithEntryType records an explicit entry type instead of the sequential
// default.
func WithEntryType(entryType string) AppendOption {
	return func(c *appendConfig) {
		c.entryType = entryType
	}
}

// Append pushes key onto the scope's trail, creating the trail if the scope
// is new. Depth defaults to one more than the previous last entry (or 1 on
// an empty trail); type defaults to sequential.
func (s *Store) Append(scopeKey, key string, nav NavType, opts ...AppendOption) {
	cfg := appendConfig{entryType: TypeSequential}
	for _, opt := range opts {
		opt(&cfg)
	}

	s.ensure(scopeKey)
	t := s.trails[scopeKey]
	if !cfg.depthSet {
		cfg.depth = 1
		if len(t) > 0 {
			cfg.depth = s.depthMap[scopeKey][t[len(t)-1]].Depth + 1
		}
	}

	s.trails[scopeKey] = append(t, key)
	s.depthMap[scopeKey][key] = DepthInfo{Depth: cfg.depth, Type: cfg.entryType}
	s.touch(OpAppend, nav, scopeKey)
}

// Pop removes the last entry of the scope's trail, or collapses a whole
// subtree when the entry sits inside a container level.
//
// Walking backward from the end, entries at or beyond the last entry's
// depth are skipped; the first shallower entry decides the outcome. A
// container-typed entry there means the tail is its subtree: the trail is
// truncated from the container inclusive. Anything else is a plain sibling
// pop of the single last entry.
//
// Returns the new last entry (empty if the trail emptied) and whether
// anything was removed. An empty or missing trail is a no-op.
func (s *Store) Pop(scopeKey string, nav NavType) (string, bool) {
	t := s.trails[scopeKey]
	if len(t) == 0 {
		return "", false
	}

	dm := s.depthMap[scopeKey]
	lastDepth := dm[t[len(t)-1]].Depth
	cut := len(t) - 1
	for i := len(t) - 2; i >= 0; i-- {
		di := dm[t[i]]
		if di.Depth >= lastDepth {
			continue
		}
		if IsContainerType(di.Type) {
			cut = i
		}
		break
	}

	for _, k := range t[cut:] {
		delete(dm, k)
	}
	s.trails[scopeKey] = t[:cut]
	s.touch(OpPop, nav, scopeKey)

	if cut == 0 {
		return "", true
	}
	return t[cut-1], true
}

// Reset clears every trail, the depth map, and the context record in one
// step; a reader never observes a partially cleared store. Callers always
// pair Reset with a Create for the destination scope.
func (s *Store) Reset(nav NavType) {
	prev := s.context.Timestamp
	s.trails = make(map[string][]string)
	s.depthMap = make(map[string]map[string]DepthInfo)
	s.order = nil
	s.context = Context{Timestamp: prev}
	s.touch(OpReset, nav, "")
}

// Create initializes an empty trail for the scope if it does not exist.
// No other scope's trail is touched.
func (s *Store) Create(scopeKey string, nav NavType) {
	s.ensure(scopeKey)
	s.touch(OpCreate, nav, scopeKey)
}

// Delete removes the scope's trail and all of its depth-map entries.
// Absent scopes are a no-op; every other scope is unaffected.
func (s *Store) Delete(scopeKey string, nav NavType) {
	if _, ok := s.trails[scopeKey]; !ok {
		return
	}
	delete(s.trails, scopeKey)
	delete(s.depthMap, scopeKey)
	for i, k := range s.order {
		if k == scopeKey {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.touch(OpDelete, nav, scopeKey)
}

// ensure initializes the trail and depth submap for a scope on first use.
func (s *Store) ensure(scopeKey string) {
	if _, ok := s.trails[scopeKey]; ok {
		return
	}
	s.trails[scopeKey] = []string{}
	s.depthMap[scopeKey] = make(map[string]DepthInfo)
	s.order = append(s.order, scopeKey)
}
