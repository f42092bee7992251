package project

// Snapshot is the per-type subset of Details kept across type switches.
type Snapshot struct {
	Features    []string `json:"features"`
	TechStack   []string `json:"techStack"`
	UserStories []string `json:"userStories"`
}

// SnapshotKey is the storage key for a type's snapshot.
func SnapshotKey(t Type) string {
	return "project_type_" + string(t)
}

// SnapshotOf copies the collections out of d.
func SnapshotOf(d Details) Snapshot {
	return Snapshot{
		Features:    append([]string{}, d.Features...),
		TechStack:   append([]string{}, d.TechStack...),
		UserStories: append([]string{}, d.UserStories...),
	}
}
