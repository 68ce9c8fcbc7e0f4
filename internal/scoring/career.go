// internal/scoring/career.go
package scoring

import "sort"

// careerRule matches when all three of its categories appear in the learner's
// top-three aptitude set, in any order. Rules are evaluated in declaration
// order; the first match wins.
type careerRule struct {
	id      string
	triple  [3]string
	mapping CareerMapping
}

// This table is the single source of truth for career selection. Rule order
// matters: more specific engineering/science combinations sit above the
// broader commerce and humanities ones.
var careerRules = []careerRule{
	{
		id:     "engineering-design",
		triple: [3]string{"Numerical Ability", "Mechanical Reasoning", "Space Relations"},
		mapping: CareerMapping{
			RuleID:         "engineering-design",
			CareerRoles:    "Mechanical Engineer, Product Designer, Robotics Engineer, Automotive Engineer",
			SkillsRequired: "CAD modelling, applied mathematics, physics, prototyping",
			MasteryAreas:   "Engineering mechanics, materials, design thinking",
			Reasoning:      "Strong numerical, mechanical and spatial aptitude is the classic profile of learners who enjoy building and improving physical systems.",
			Club:           "Robotics Club",
			TargetAudience: "Learners who like to understand how things work and make them work better",
			Tagline:        "Design it, build it, improve it",
		},
	},
	{
		id:     "data-science",
		triple: [3]string{"Numerical Ability", "Abstract Reasoning", "Speed and Accuracy"},
		mapping: CareerMapping{
			RuleID:         "data-science",
			CareerRoles:    "Data Scientist, Statistician, Actuary, Machine Learning Engineer",
			SkillsRequired: "Statistics, programming, data visualisation, critical thinking",
			MasteryAreas:   "Mathematics, probability, algorithms",
			Reasoning:      "High numerical and abstract scores with fast accurate processing point to work that turns raw data into decisions.",
			Club:           "Coding Club",
			TargetAudience: "Learners who spot patterns in numbers before anyone else",
			Tagline:        "Find the signal in the noise",
		},
	},
	{
		id:     "software-engineering",
		triple: [3]string{"Numerical Ability", "Abstract Reasoning", "Language Usage and Grammar"},
		mapping: CareerMapping{
			RuleID:         "software-engineering",
			CareerRoles:    "Software Engineer, Systems Analyst, DevOps Engineer",
			SkillsRequired: "Programming, logical decomposition, precise written communication",
			MasteryAreas:   "Computer science fundamentals, discrete mathematics",
			Reasoning:      "Abstract problem solving combined with numerical comfort and precise language maps directly onto writing and reasoning about code.",
			Club:           "Coding Club",
			TargetAudience: "Learners who enjoy puzzles that have to be expressed exactly",
			Tagline:        "Turn logic into products",
		},
	},
	{
		id:     "architecture-spatial",
		triple: [3]string{"Abstract Reasoning", "Space Relations", "Mechanical Reasoning"},
		mapping: CareerMapping{
			RuleID:         "architecture-spatial",
			CareerRoles:    "Architect, Civil Engineer, Interior Designer, Urban Planner",
			SkillsRequired: "Technical drawing, 3D visualisation, structural intuition",
			MasteryAreas:   "Geometry, engineering graphics, design studios",
			Reasoning:      "Spatial and mechanical strength with abstract pattern sense suits disciplines that shape physical space.",
			Club:           "Design Club",
			TargetAudience: "Learners who think in three dimensions",
			Tagline:        "Imagine spaces, then build them",
		},
	},
	{
		id:     "law-communication",
		triple: [3]string{"Verbal Reasoning", "Language Usage and Grammar", "Abstract Reasoning"},
		mapping: CareerMapping{
			RuleID:         "law-communication",
			CareerRoles:    "Lawyer, Journalist, Editor, Policy Analyst",
			SkillsRequired: "Argumentation, research, persuasive writing",
			MasteryAreas:   "Rhetoric, legal reasoning, current affairs",
			Reasoning:      "Strong verbal and written command with structured abstract thinking is the backbone of careers built on argument and language.",
			Club:           "Debate Club",
			TargetAudience: "Learners who win arguments on the merits",
			Tagline:        "Make words carry weight",
		},
	},
	{
		id:     "finance-operations",
		triple: [3]string{"Numerical Ability", "Speed and Accuracy", "Language Usage and Grammar"},
		mapping: CareerMapping{
			RuleID:         "finance-operations",
			CareerRoles:    "Chartered Accountant, Financial Analyst, Operations Manager, Banker",
			SkillsRequired: "Accounting, spreadsheet modelling, attention to detail",
			MasteryAreas:   "Commerce, economics, business mathematics",
			Reasoning:      "Numerical skill with fast, precise processing and clean written work fits detail-critical commercial roles.",
			Club:           "Commerce Club",
			TargetAudience: "Learners who keep the books balanced and the process tight",
			Tagline:        "Precision pays",
		},
	},
	{
		id:     "applied-trades",
		triple: [3]string{"Mechanical Reasoning", "Speed and Accuracy", "Space Relations"},
		mapping: CareerMapping{
			RuleID:         "applied-trades",
			CareerRoles:    "Pilot, Industrial Technician, CNC Programmer, Aviation Maintenance Engineer",
			SkillsRequired: "Instrument handling, procedural discipline, spatial judgement",
			MasteryAreas:   "Applied physics, technical certification tracks",
			Reasoning:      "Mechanical and spatial aptitude with fast accurate execution suits skilled technical operations where errors are costly.",
			Club:           "Aeromodelling Club",
			TargetAudience: "Learners who are happiest with instruments in hand",
			Tagline:        "Skilled hands, sharp eyes",
		},
	},
	{
		id:     "research-science",
		triple: [3]string{"Verbal Reasoning", "Numerical Ability", "Abstract Reasoning"},
		mapping: CareerMapping{
			RuleID:         "research-science",
			CareerRoles:    "Research Scientist, Physician, Biotechnologist, Academic",
			SkillsRequired: "Scientific method, literature review, quantitative analysis",
			MasteryAreas:   "Core sciences, research writing, experimentation",
			Reasoning:      "Balanced strength across verbal, numerical and abstract reasoning is the generalist profile of research and medicine.",
			Club:           "Science Club",
			TargetAudience: "Learners who ask why until the answer holds",
			Tagline:        "Question everything, measure twice",
		},
	},
	{
		id:     "media-communication",
		triple: [3]string{"Verbal Reasoning", "Language Usage and Grammar", "Speed and Accuracy"},
		mapping: CareerMapping{
			RuleID:         "media-communication",
			CareerRoles:    "Content Strategist, Public Relations Specialist, Broadcast Producer",
			SkillsRequired: "Writing to deadline, editing, audience analysis",
			MasteryAreas:   "Mass communication, digital media production",
			Reasoning:      "Verbal fluency and polished mechanics delivered at speed is the working rhythm of media and communications.",
			Club:           "Media Club",
			TargetAudience: "Learners who can write it well and file it on time",
			Tagline:        "Say it clearly, say it first",
		},
	},
	{
		id:     "verbal-spatial-creative",
		triple: [3]string{"Verbal Reasoning", "Abstract Reasoning", "Space Relations"},
		mapping: CareerMapping{
			RuleID:         "verbal-spatial-creative",
			CareerRoles:    "UX Designer, Game Designer, Animator, Creative Director",
			SkillsRequired: "Storyboarding, visual communication, concept development",
			MasteryAreas:   "Design principles, narrative craft, prototyping tools",
			Reasoning:      "Verbal and spatial strengths joined by abstract pattern sense suit roles that tell stories through visual experiences.",
			Club:           "Design Club",
			TargetAudience: "Learners who sketch the idea while explaining it",
			Tagline:        "Ideas you can see",
		},
	},
}

// fallbackCareerMapping is returned whenever no rule's triple is fully
// contained in the top-three set.
var fallbackCareerMapping = CareerMapping{
	RuleID:         "explorer-default",
	CareerRoles:    "Open profile: management, liberal arts, interdisciplinary programs",
	SkillsRequired: "Broad foundations: communication, quantitative literacy, collaboration",
	MasteryAreas:   "Exploratory electives across science, commerce and humanities",
	Reasoning:      "Your aptitude profile does not concentrate in a single cluster yet, which is common and keeps many doors open. Use electives and projects to discover where your interest deepens.",
	Club:           "Explorers Club",
	TargetAudience: "Learners still mapping their strengths",
	Tagline:        "Wide open is a strong position",
}

// topAptitudeCategories returns the display labels of the n highest-scoring
// aptitude categories, ranked by percentage descending with ties keeping
// declaration order.
func topAptitudeCategories(bundle *ScoreBundle, n int) []string {
	ranked := make([]Category, len(aptitudeCategories))
	copy(ranked, aptitudeCategories)
	sort.SliceStable(ranked, func(i, j int) bool {
		return bundle.CategoryWiseScore[ranked[i]].Percentage > bundle.CategoryWiseScore[ranked[j]].Percentage
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	labels := make([]string, 0, n)
	for _, cat := range ranked[:n] {
		labels = append(labels, aptitudeDisplayNames[cat])
	}
	return labels
}

// selectCareerMapping evaluates the rule table against the top-three set and
// always returns a mapping; the fallback keeps the output contract total.
func selectCareerMapping(topThree []string) *CareerMapping {
	present := make(map[string]bool, len(topThree))
	for _, label := range topThree {
		present[label] = true
	}

	for _, rule := range careerRules {
		if present[rule.triple[0]] && present[rule.triple[1]] && present[rule.triple[2]] {
			m := rule.mapping
			return &m
		}
	}

	m := fallbackCareerMapping
	return &m
}
