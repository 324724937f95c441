package domain

// Preferred fighters shown when the page first opens.
const (
	DefaultFighter1 = "Jon Jones"
	DefaultFighter2 = "Anderson Silva"
)

// Selection is what the user picked: two fighters and a feature.
type Selection struct {
	Fighter1 string
	Fighter2 string
	Feature  string
}

// SelectionOptions lists what the selectors can offer for a given selection.
type SelectionOptions struct {
	Fighter1 []string
	Fighter2 []string
	Features []string
}

// DefaultSelection returns the initial selection for a dataset.
func DefaultSelection(names, features []string) Selection {
	return Normalize(Selection{}, names, features)
}

// Normalize replaces empty or unknown picks with defaults. Fighter 2 never
// equals fighter 1 unless the dataset has a single fighter.
func Normalize(sel Selection, names, features []string) Selection {
	out := Selection{Feature: sel.Feature}

	out.Fighter1 = pick(sel.Fighter1, DefaultFighter1, names)
	out.Fighter2 = pick(sel.Fighter2, DefaultFighter2, Fighter2Options(names, out.Fighter1))
	if out.Fighter2 == "" && containsString(names, sel.Fighter2) {
		out.Fighter2 = sel.Fighter2
	}

	if !containsString(features, out.Feature) {
		out.Feature = DefaultFeature(features)
	}
	return out
}

// Fighter2Options is every name except fighter 1.
func Fighter2Options(names []string, fighter1 string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != fighter1 {
			out = append(out, n)
		}
	}
	return out
}

// Options returns the selector contents for sel.
func Options(sel Selection, names, features []string) SelectionOptions {
	return SelectionOptions{
		Fighter1: names,
		Fighter2: Fighter2Options(names, sel.Fighter1),
		Features: features,
	}
}

func pick(chosen, preferred string, options []string) string {
	if chosen != "" && containsString(options, chosen) {
		return chosen
	}
	if containsString(options, preferred) {
		return preferred
	}
	if len(options) > 0 {
		return options[0]
	}
	return ""
}
