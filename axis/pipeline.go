package axis

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Pipeline applies its stages left to right. The zero value is the
// identity. Nested pipelines are flattened on insertion.
type Pipeline struct {
	stages []Processor
}

func NewPipeline(processors ...Processor) Pipeline {
	var p Pipeline
	for _, proc := range processors {
		p.Push(proc)
	}
	return p
}

// With returns a copy of p with proc appended.
func (p Pipeline) With(proc Processor) Pipeline {
	out := Pipeline{stages: make([]Processor, len(p.stages), len(p.stages)+1)}
	copy(out.stages, p.stages)
	out.Push(proc)
	return out
}

func (p *Pipeline) Push(proc Processor) {
	if proc == nil {
		return
	}
	// Copies of p may share the backing array, so never append in place.
	stages := p.stages[:len(p.stages):len(p.stages)]
	switch nested := proc.(type) {
	case Pipeline:
		p.stages = append(stages, nested.stages...)
	case *Pipeline:
		p.stages = append(stages, nested.stages...)
	default:
		p.stages = append(stages, proc)
	}
}

// Set replaces the stage at index. It panics if index is out of range.
func (p *Pipeline) Set(index int, proc Processor) {
	if index < 0 || index >= len(p.stages) {
		panic(fmt.Sprintf("axis: pipeline index %d out of range [0, %d)", index, len(p.stages)))
	}
	if proc == nil {
		panic("axis: pipeline stage is nil")
	}
	p.stages = slices.Clone(p.stages)
	p.stages[index] = proc
}

func (p *Pipeline) Clear() {
	p.stages = nil
}

func (p Pipeline) Len() int { return len(p.stages) }

func (p Pipeline) Stages() []Processor {
	out := make([]Processor, len(p.stages))
	copy(out, p.stages)
	return out
}

func (p Pipeline) Process(value float32) float32 {
	for _, stage := range p.stages {
		value = stage.Process(value)
	}
	return value
}

func (p Pipeline) String() string {
	return joinStages("Pipeline", p.stages)
}

func (Pipeline) isProcessor() {}

// DualPipeline is the dual-axis Pipeline.
type DualPipeline struct {
	stages []DualProcessor
}

func NewDualPipeline(processors ...DualProcessor) DualPipeline {
	var p DualPipeline
	for _, proc := range processors {
		p.Push(proc)
	}
	return p
}

func (p DualPipeline) With(proc DualProcessor) DualPipeline {
	out := DualPipeline{stages: make([]DualProcessor, len(p.stages), len(p.stages)+1)}
	copy(out.stages, p.stages)
	out.Push(proc)
	return out
}

func (p *DualPipeline) Push(proc DualProcessor) {
	if proc == nil {
		return
	}
	stages := p.stages[:len(p.stages):len(p.stages)]
	switch nested := proc.(type) {
	case DualPipeline:
		p.stages = append(stages, nested.stages...)
	case *DualPipeline:
		p.stages = append(stages, nested.stages...)
	default:
		p.stages = append(stages, proc)
	}
}

func (p *DualPipeline) Set(index int, proc DualProcessor) {
	if index < 0 || index >= len(p.stages) {
		panic(fmt.Sprintf("axis: dual pipeline index %d out of range [0, %d)", index, len(p.stages)))
	}
	if proc == nil {
		panic("axis: dual pipeline stage is nil")
	}
	p.stages = slices.Clone(p.stages)
	p.stages[index] = proc
}

func (p *DualPipeline) Clear() {
	p.stages = nil
}

func (p DualPipeline) Len() int { return len(p.stages) }

func (p DualPipeline) Stages() []DualProcessor {
	out := make([]DualProcessor, len(p.stages))
	copy(out, p.stages)
	return out
}

func (p DualPipeline) Process(value mgl32.Vec2) mgl32.Vec2 {
	for _, stage := range p.stages {
		value = stage.Process(value)
	}
	return value
}

func (p DualPipeline) String() string {
	return joinStages("DualPipeline", p.stages)
}

func (DualPipeline) isDualProcessor() {}
