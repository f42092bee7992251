// Package guideline holds the working practices shown alongside the
// generated prompts.
package guideline

// Importance ranks a guideline.
type Importance string

const (
	Critical    Importance = "critical"
	Recommended Importance = "recommended"
	Optional    Importance = "optional"
)

// Guideline is a single practice with supporting tips.
type Guideline struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tips        []string   `json:"tips"`
	Importance  Importance `json:"importance"`
}

// All returns a copy of the guideline catalog.
func All() []Guideline {
	out := make([]Guideline, len(catalog))
	for i, g := range catalog {
		g.Tips = append([]string(nil), g.Tips...)
		out[i] = g
	}
	return out
}

// ByImportance returns the guidelines with the given importance, in catalog order.
func ByImportance(imp Importance) []Guideline {
	out := []Guideline{}
	for _, g := range All() {
		if g.Importance == imp {
			out = append(out, g)
		}
	}
	return out
}

var catalog = []Guideline{
	{
		Title:       "Sequential Development",
		Description: "Follow the development phases in order to ensure a structured and efficient development process.",
		Importance:  Critical,
		Tips: []string{
			"Complete each phase before moving to the next",
			"Validate phase requirements are met",
			"Address dependencies early in the process",
			"Document any phase-specific challenges or decisions",
		},
	},
	{
		Title:       "Iterative Refinement",
		Description: "Review and refine outputs from each prompt before proceeding to ensure quality and consistency.",
		Importance:  Critical,
		Tips: []string{
			"Review prompt outputs thoroughly",
			"Validate against project requirements",
			"Gather feedback early and often",
			"Make incremental improvements",
			"Track changes and their impact",
		},
	},
	{
		Title:       "Continuous Testing",
		Description: "Implement testing throughout the development process to maintain quality and catch issues early.",
		Importance:  Critical,
		Tips: []string{
			"Write tests alongside feature development",
			"Perform unit testing for individual components",
			"Conduct integration testing between phases",
			"Validate user flows and requirements",
			"Automate testing where possible",
		},
	},
	{
		Title:       "Comprehensive Documentation",
		Description: "Maintain detailed documentation throughout the development lifecycle.",
		Importance:  Critical,
		Tips: []string{
			"Document architectural decisions",
			"Keep track of implementation details",
			"Update documentation with changes",
			"Include setup and deployment instructions",
			"Document API endpoints and usage",
		},
	},
	{
		Title:       "Code Quality",
		Description: "Maintain high code quality standards throughout development.",
		Importance:  Recommended,
		Tips: []string{
			"Follow consistent coding standards",
			"Write clean, readable code",
			"Use meaningful variable and function names",
			"Keep functions small and focused",
			"Comment complex logic appropriately",
		},
	},
	{
		Title:       "Performance Optimization",
		Description: "Consider performance implications throughout development.",
		Importance:  Recommended,
		Tips: []string{
			"Optimize resource loading",
			"Implement caching strategies",
			"Monitor and improve response times",
			"Consider scalability in design decisions",
			"Regular performance testing",
		},
	},
}
