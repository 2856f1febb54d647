package catalog

type Lesson struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Difficulty  string `yaml:"difficulty" json:"difficulty"`
	Duration    string `yaml:"duration" json:"duration"`
	Content     string `yaml:"content" json:"content"`
}

type Guide struct {
	Category string   `yaml:"category" json:"category"`
	Lessons  []Lesson `yaml:"lessons" json:"lessons"`
}

type Tip struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type UseCase struct {
	Title    string   `yaml:"title" json:"title"`
	Examples []string `yaml:"examples" json:"examples"`
}

// Learning — обучающий раздел и списки с главной страницы
type Learning struct {
	Guides    []Guide   `yaml:"guides" json:"guides"`
	QuickTips []Tip     `yaml:"quickTips" json:"quickTips"`
	Features  []Tip     `yaml:"features" json:"features"`
	UseCases  []UseCase `yaml:"useCases" json:"useCases"`
}

func (c *Catalog) Guides() []Guide {
	out := make([]Guide, len(c.learn.Guides))
	for i, g := range c.learn.Guides {
		g.Lessons = append([]Lesson(nil), g.Lessons...)
		out[i] = g
	}
	return out
}

func (c *Catalog) QuickTips() []Tip {
	return append([]Tip(nil), c.learn.QuickTips...)
}

func (c *Catalog) Features() []Tip {
	return append([]Tip(nil), c.learn.Features...)
}

func (c *Catalog) UseCases() []UseCase {
	out := make([]UseCase, len(c.learn.UseCases))
	for i, u := range c.learn.UseCases {
		u.Examples = append([]string(nil), u.Examples...)
		out[i] = u
	}
	return out
}
