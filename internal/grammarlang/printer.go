package grammarlang

import (
	"fmt"
	"strconv"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (p *Program) String() string {
	var b strings.Builder
	for _, c := range p.Components {
		b.WriteString(c.String())
		b.WriteString("\n")
	}
	if p.Root != nil {
		b.WriteString(p.Root.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (c *ComponentDecl) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("component %s: %d {\n", c.Name, c.Label))
	if c.Start != nil {
		b.WriteString(indent(1) + c.Start.String() + "\n")
	}
	for _, f := range c.Finals {
		b.WriteString(indent(1) + f.String() + "\n")
	}
	for _, a := range c.Arcs {
		b.WriteString(indent(1) + a.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (s *StartDecl) String() string {
	return fmt.Sprintf("start: %d", s.State)
}

func (f *FinalDecl) String() string {
	return fmt.Sprintf("final: %d %s", f.State, formatWeight(f.Weight))
}

func (a *ArcDecl) String() string {
	return fmt.Sprintf("arc %d %d %d %d %s", a.From, a.To, a.ILabel, a.OLabel, formatWeight(a.Weight))
}

func (r *RootDecl) String() string {
	return fmt.Sprintf("root: %d", r.Label)
}

func formatWeight(w Weight) string {
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}
