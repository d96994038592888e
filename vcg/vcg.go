package vcg

import (
	"fmt"
	"io"
)

// View names one of the five graphs the pass can dump per block per
// register class.
type View string

const (
	ViewCBC    View = "CBC"
	ViewKILL   View = "KILL"
	ViewPKG    View = "PKG"
	ViewDVG    View = "DVG"
	ViewDVGPKG View = "DVG-PKG"
)

// Request names the file a Dump call produces: <IRG>-<Class>-block-<Block>-RSS-<View>.vcg.
type Request struct {
	IRG   string
	Class string
	Block int
	View  View
	Title string
}

// Filename returns the canonical file name for req.
func (r Request) Filename() string {
	return fmt.Sprintf("%s-%s-block-%d-RSS-%s.vcg", r.IRG, r.Class, r.Block, r.View)
}

// Sink is the seam rss.Prepare writes debug graphs through. write is called
// with a Writer already positioned inside an open "graph: { ... }" block; the
// Sink is responsible for the header and the closing brace.
type Sink interface {
	Dump(req Request, write func(w *Writer)) error
}

// Writer renders VCG node and edge statements to an underlying io.Writer.
// It has no state beyond the destination: callers are free to emit nodes and
// edges in any order VCG tolerates.
type Writer struct {
	w io.Writer
}

// Node emits a single VCG node statement.
func (w *Writer) Node(title, label string) {
	fmt.Fprintf(w.w, "node: { title: %q label: %q }\n", title, label)
}

// Edge emits a single VCG directed edge statement.
func (w *Writer) Edge(source, target, label string) {
	fmt.Fprintf(w.w, "edge: { sourcename: %q targetname: %q label: %q }\n", source, target, label)
}

// Comment emits a VCG comment line, handy for annotating a view with the
// metric values (R, Ω₁, Ω₂) that drove a decision.
func (w *Writer) Comment(format string, args ...any) {
	fmt.Fprintf(w.w, "// %s\n", fmt.Sprintf(format, args...))
}
