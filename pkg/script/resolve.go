package script

// Resolve maps a requested name to a concrete script name. An exact match
// always wins; otherwise the first type (in priority order) whose synonyms
// contain requested supplies its first script in list order.
func Resolve(scripts []Script, requested string) (string, bool) {
	if s, ok := Find(scripts, requested); ok {
		return s.Name, true
	}
	for _, t := range priority {
		if !contains(synonyms[t], requested) {
			continue
		}
		for _, s := range scripts {
			if s.Type == t {
				return s.Name, true
			}
		}
	}
	return "", false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
