package mhs

import (
	"bufio"
	"io"
	"strings"
)

// Write emits f in MHS syntax.
func (f File) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, a := range f.Attributes {
		writeAttr(bw, "", a)
	}
	for _, b := range f.Blocks {
		bw.WriteString("\nBEGIN ")
		bw.WriteString(b.Name)
		bw.WriteByte('\n')
		for _, a := range b.Attributes {
			writeAttr(bw, " ", a)
		}
		bw.WriteString("END\n")
	}
	return bw.Flush()
}

// String returns the MHS text of f.
func (f File) String() string {
	var sb strings.Builder
	_ = f.Write(&sb)
	return sb.String()
}

func writeAttr(w *bufio.Writer, indent string, a Attribute) {
	w.WriteString(indent)
	w.WriteString(a.Kind.String())
	for i, as := range a.Assignments {
		if i == 0 {
			w.WriteByte(' ')
		} else {
			w.WriteString(", ")
		}
		w.WriteString(as.Name)
		w.WriteString(" = ")
		w.WriteString(as.Value.String())
	}
	w.WriteByte('\n')
}
