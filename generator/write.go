package generator

import (
	"bufio"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/ir"
)

// IRSuffix is appended to a module name to form its file name.
const IRSuffix = ".ir.json"

// Write publishes results below root. Paths carried by the results are
// relative to root; deployment sources are read as given. Top-level
// entries that already exist below root are replaced.
func Write(root string, results []*backend.Result) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return outputError(err, "create output root")
	}
	stage, err := os.MkdirTemp(root, ".boardgen-")
	if err != nil {
		return outputError(err, "create staging directory")
	}
	defer os.RemoveAll(stage)

	for _, res := range results {
		w := writer{root: stage, log: Logger().With(zap.String("backend", res.Backend))}
		if err := w.result(res); err != nil {
			return outputError(err, "write "+res.Backend+" output").WithBackend(res.Backend)
		}
	}
	return publish(stage, root)
}

func outputError(err error, detail string) *errors.Error {
	return errors.Wrap(errors.PhaseOutput, errors.KindIO, err, detail)
}

type writer struct {
	root string
	log  *zap.Logger
}

func (w writer) result(res *backend.Result) error {
	for _, m := range res.Modules {
		if err := w.module(m); err != nil {
			return err
		}
	}
	for _, d := range res.Descriptors {
		if err := w.descriptor(d); err != nil {
			return err
		}
	}
	for _, t := range res.Texts {
		if err := w.text(t); err != nil {
			return err
		}
	}
	for _, d := range res.Deploy {
		if err := w.deploy(d); err != nil {
			return err
		}
	}
	return nil
}

// create opens rel below the staging root for writing.
func (w writer) create(rel string) (*os.File, error) {
	path := filepath.Join(w.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, pkgerrors.Wrapf(err, "create directory for %s", rel)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "create %s", rel)
	}
	w.log.Debug("writing", zap.String("path", rel))
	return f, nil
}

// emit creates rel and streams fill into it.
func (w writer) emit(rel string, fill func(io.Writer) error) error {
	f, err := w.create(rel)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := fill(bw); err != nil {
		f.Close()
		return pkgerrors.Wrapf(err, "write %s", rel)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return pkgerrors.Wrapf(err, "flush %s", rel)
	}
	return pkgerrors.Wrapf(f.Close(), "close %s", rel)
}

func (w writer) module(m ir.Module) error {
	return w.emit(filepath.Join(m.Dir, m.Name+IRSuffix), func(out io.Writer) error {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	})
}

func (w writer) descriptor(d backend.Descriptor) error {
	return w.emit(filepath.Join(d.Dir, d.Name), d.File.Write)
}

func (w writer) text(t backend.Text) error {
	return w.emit(filepath.Join(t.Dir, t.Name), func(out io.Writer) error {
		for _, line := range t.Lines {
			if _, err := io.WriteString(out, line+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// deploy copies a template file, or a template directory recursively.
func (w writer) deploy(d backend.Deployment) error {
	info, err := os.Stat(d.Source)
	if err != nil {
		return pkgerrors.Wrapf(err, "deploy %s", d.Source)
	}
	if !info.IsDir() {
		return w.copyFile(d.Source, d.Dest)
	}
	return filepath.WalkDir(d.Source, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return pkgerrors.Wrapf(err, "deploy %s", path)
		}
		if e.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(d.Source, path)
		if err != nil {
			return pkgerrors.WithStack(err)
		}
		return w.copyFile(path, filepath.Join(d.Dest, rel))
	})
}

func (w writer) copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return pkgerrors.Wrapf(err, "open template %s", src)
	}
	defer in.Close()
	return w.emit(dest, func(out io.Writer) error {
		_, err := io.Copy(out, in)
		return err
	})
}

// publish moves every top-level entry of stage into root.
func publish(stage, root string) error {
	entries, err := os.ReadDir(stage)
	if err != nil {
		return outputError(err, "read staging directory")
	}
	for _, e := range entries {
		from := filepath.Join(stage, e.Name())
		to := filepath.Join(root, e.Name())
		if err := os.RemoveAll(to); err != nil {
			return outputError(err, "replace "+to)
		}
		if err := os.Rename(from, to); err != nil {
			return outputError(err, "publish "+to)
		}
		Logger().Info("published", zap.String("path", to))
	}
	return nil
}

// Paths lists every file Write would produce for results, relative to the
// output root, in write order. Directory deployments appear as the
// directory itself.
func Paths(results []*backend.Result) []string {
	var out []string
	for _, res := range results {
		for _, m := range res.Modules {
			out = append(out, filepath.ToSlash(filepath.Join(m.Dir, m.Name+IRSuffix)))
		}
		for _, d := range res.Descriptors {
			out = append(out, filepath.ToSlash(filepath.Join(d.Dir, d.Name)))
		}
		for _, t := range res.Texts {
			out = append(out, filepath.ToSlash(filepath.Join(t.Dir, t.Name)))
		}
		for _, d := range res.Deploy {
			out = append(out, filepath.ToSlash(filepath.Clean(d.Dest)))
		}
	}
	return out
}
