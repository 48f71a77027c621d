// Package helpdesc models the third-party completion-help add-on's describer
// registry: an ordered list of describers the add-on consults to show a
// description next to each completion candidate.
//
// The registry is an explicit collection injected by the host; Install and
// Uninstall are plain add-to/remove-from calls against it, and Uninstall
// leaves the list exactly as it would be had the integration never loaded.
package helpdesc

// Describer maps completion candidates to descriptions. Recognizes decides
// whether the active completion source is one this describer understands.
type Describer interface {
	Recognizes(candidates []string) bool
	Describe(candidate string) (string, bool)
}

// Registry is the add-on's ordered describer list.
type Registry struct {
	describers []Describer
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Add(d Describer) {
	if d == nil {
		return
	}
	r.describers = append(r.describers, d)
}

// Remove deletes the first occurrence of d. Removing an absent describer is
// a no-op.
func (r *Registry) Remove(d Describer) {
	for i, existing := range r.describers {
		if existing == d {
			r.describers = append(r.describers[:i], r.describers[i+1:]...)
			return
		}
	}
}

func (r *Registry) Len() int { return len(r.describers) }

// Describe asks the first describer that recognizes the candidate set.
func (r *Registry) Describe(candidates []string, candidate string) (string, bool) {
	for _, d := range r.describers {
		if !d.Recognizes(candidates) {
			continue
		}
		return d.Describe(candidate)
	}
	return "", false
}
