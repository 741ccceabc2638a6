package codemod

// Step 一个纯函数形式的改写步骤：文本输入，文本输出
type Step func(text string) (string, StepResult, error)

// Pipeline 有序的改写步骤，后面的步骤看到前面步骤的输出
type Pipeline struct {
	steps  []Step
	manual []StructuralEdit
}

// NewPipeline 编译所有正则修改项，收集结构性修改项
func NewPipeline(edits []Edit) (*Pipeline, error) {
	p := &Pipeline{}
	for _, edit := range edits {
		switch edit.Kind {
		case KindMechanical:
			compiled, err := CompileRule(edit.Rule)
			if err != nil {
				return nil, err
			}
			p.steps = append(p.steps, compiled.Step())
		case KindStructural:
			p.manual = append(p.manual, edit.Structural)
		}
	}
	return p, nil
}

// Len 返回自动步骤数
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Manual 返回需要人工处理的修改
func (p *Pipeline) Manual() []StructuralEdit {
	return p.manual
}

// Run 依次执行所有步骤。出错时返回出错前的文本。
func (p *Pipeline) Run(text string) (string, []StepResult, error) {
	results := make([]StepResult, 0, len(p.steps))
	for _, step := range p.steps {
		out, res, err := step(text)
		if err != nil {
			return text, results, err
		}
		results = append(results, res)
		text = out
	}
	return text, results, nil
}
