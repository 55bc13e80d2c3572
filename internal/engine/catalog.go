package engine

import (
	"sort"

	"maturitymap/internal/model"
)

// Catalog is the validated, immutable question set the engine computes over.
// It is built once per catalog version and safe for concurrent readers;
// nothing mutates it after NewCatalog returns.
type Catalog struct {
	version   string
	questions map[string]*model.Question
	ordered   []*model.Question // stable id order for deterministic iteration
}

// NewCatalog validates the question set and builds the indexed catalog.
// Validation failures return a *ConfigurationError and the catalog must not
// be used.
func NewCatalog(version string, questions []model.Question) (*Catalog, error) {
	c := &Catalog{
		version:   version,
		questions: make(map[string]*model.Question, len(questions)),
	}

	for i := range questions {
		q := &questions[i]
		if q.ID == "" {
			return nil, newConfigErrorf("question at index %d has no id", i)
		}
		if _, dup := c.questions[q.ID]; dup {
			return nil, newConfigErrorf("duplicate question id %q", q.ID)
		}
		if q.Weight < 0 {
			return nil, newConfigErrorf("question %q has negative weight %v", q.ID, q.Weight)
		}
		for _, o := range q.Options {
			if o.IsUnknown() {
				continue
			}
			if o.Value < 0 || o.Value > 100 {
				return nil, newConfigErrorf("question %q option %q value %d outside 0-100", q.ID, o.Label, o.Value)
			}
		}
		c.questions[q.ID] = q
	}

	for _, q := range c.questions {
		for _, dep := range q.Dependencies {
			if _, ok := c.questions[dep.QuestionID]; !ok {
				return nil, newConfigErrorf("question %q depends on unknown question %q", q.ID, dep.QuestionID)
			}
		}
	}

	if err := c.checkAcyclic(); err != nil {
		return nil, err
	}

	c.ordered = make([]*model.Question, 0, len(c.questions))
	for _, q := range c.questions {
		c.ordered = append(c.ordered, q)
	}
	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].ID < c.ordered[j].ID })

	return c, nil
}

// checkAcyclic runs Kahn's algorithm over the dependency edges. A cycle in
// the catalog means some questions can never become eligible.
func (c *Catalog) checkAcyclic() error {
	indegree := make(map[string]int, len(c.questions))
	dependents := make(map[string][]string, len(c.questions))
	for id := range c.questions {
		indegree[id] = 0
	}
	for id, q := range c.questions {
		for _, dep := range q.Dependencies {
			indegree[id]++
			dependents[dep.QuestionID] = append(dependents[dep.QuestionID], id)
		}
	}

	queue := make([]string, 0, len(indegree))
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dependent := range dependents[id] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if visited != len(c.questions) {
		var cyclic []string
		for id, deg := range indegree {
			if deg > 0 {
				cyclic = append(cyclic, id)
			}
		}
		sort.Strings(cyclic)
		return newConfigErrorf("dependency cycle involving questions %v", cyclic)
	}
	return nil
}

// Version returns the catalog content version
func (c *Catalog) Version() string {
	return c.version
}

// Question looks up a question by id
func (c *Catalog) Question(id string) (*model.Question, bool) {
	q, ok := c.questions[id]
	return q, ok
}

// Questions returns all questions in stable id order
func (c *Catalog) Questions() []*model.Question {
	return c.ordered
}

// QuestionsByType returns questions tagged with the given assessment type,
// or all questions when assessmentType is empty.
func (c *Catalog) QuestionsByType(assessmentType string) []*model.Question {
	if assessmentType == "" {
		return c.ordered
	}
	var out []*model.Question
	for _, q := range c.ordered {
		if q.AssessmentType == assessmentType {
			out = append(out, q)
		}
	}
	return out
}

// Len returns the number of questions in the catalog
func (c *Catalog) Len() int {
	return len(c.questions)
}
