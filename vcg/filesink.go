package vcg

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes each Dump request to its own .vcg file under Dir (the
// current directory if Dir is empty).
type FileSink struct {
	Dir string
}

// NewFileSink returns a FileSink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Dump implements Sink: it opens req.Filename() under s.Dir, writes the VCG
// header, runs write against the open graph, then closes it.
func (s *FileSink) Dump(req Request, write func(w *Writer)) error {
	if req.IRG == "" {
		return ErrEmptyIRGName
	}

	path := req.Filename()
	if s.Dir != "" {
		path = filepath.Join(s.Dir, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vcg: create %s: %w", path, err)
	}
	defer f.Close()

	title := req.Title
	if title == "" {
		title = path
	}

	fmt.Fprintf(f, "graph: { title: %q display_edge_labels: no layoutalgorithm: mindepth manhattan_edges: yes\n", title)
	write(&Writer{w: f})
	fmt.Fprintln(f, "}")

	return nil
}
