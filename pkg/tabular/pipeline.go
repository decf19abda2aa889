package tabular

import "context"

// Transform is a mutation applied to a Table. Implementations either return
// a table reflecting the whole change or an error with the input untouched.
type Transform interface {
	Name() string
	Apply(ctx context.Context, t *Table) (*Table, error)
}

// Pipeline composes a sequence of Transforms.
type Pipeline struct {
	steps []Transform
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

func (p *Pipeline) Len() int { return len(p.steps) }

func (p *Pipeline) Run(ctx context.Context, t *Table) (*Table, error) {
	var err error
	cur := t
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur, err = step.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
