package domain

import "sort"

// Entries は JobEntry のスライスです。
type Entries []JobEntry

// ResolveSchemas はジョブ既定のスキーマをエントリに補完したコピーを返します。
func (j BatchJob) ResolveSchemas() Entries {
	out := make(Entries, len(j.Entries))
	for i, e := range j.Entries {
		if e.Schema == "" {
			e.Schema = j.Schema
		}
		out[i] = e
	}
	return out
}

// UniqueSchemas はエントリから重複しないスキーマ名を抽出します。
func (es Entries) UniqueSchemas() []string {
	set := make(map[string]struct{})
	for _, e := range es {
		if e.Schema != "" {
			set[e.Schema] = struct{}{}
		}
	}

	schemas := make([]string, 0, len(set))
	for s := range set {
		schemas = append(schemas, s)
	}
	sort.Strings(schemas)

	return schemas
}
