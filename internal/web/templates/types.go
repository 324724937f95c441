package templates

// ComparePage is everything the comparison page renders.
type ComparePage struct {
	Selection  SelectionView
	Comparison ComparisonView
	Details    DetailsView
	Fighters   int
}

type SelectionView struct {
	Fighter1        string
	Fighter2        string
	Feature         string
	Fighter1Options []string
	Fighter2Options []string
	Features        []FeatureOption
}

type FeatureOption struct {
	Name  string
	Label string
}

// ComparisonView is the head-to-head block.
type ComparisonView struct {
	Feature string
	Label   string
	Numeric bool
	A       MetricView
	B       MetricView
}

// MetricView is one fighter's metric card.
type MetricView struct {
	Fighter string
	Found   bool
	Value   string
	Delta   string // empty when non-numeric
	Outcome string // better, worse or even
}

type DetailsView struct {
	Columns []string // labels
	Rows    []DetailsRowView
}

type DetailsRowView struct {
	Name  string
	Cells []string
}
