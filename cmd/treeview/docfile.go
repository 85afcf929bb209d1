package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/model"
)

type document struct {
	name   string
	data   []byte
	format format.Format
}

// readDocs reads each file, or in when files is empty. "-" names in.
func (cfg *MainConfig) readDocs(in io.Reader, files []string) ([]document, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]document, 0, len(files))
	for _, file := range files {
		d, err := readFile(in, file)
		if err != nil {
			return nil, err
		}
		res = append(res, document{name: file, data: d, format: cfg.formatOf(file, d)})
	}
	return res, nil
}

func readFile(in io.Reader, path string) ([]byte, error) {
	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// formatOf prefers -I, then the file suffix, then the content.
func (cfg *MainConfig) formatOf(name string, d []byte) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromSuffix(name); ok {
		return f
	}
	return format.Sniff(d)
}

// load returns a model holding doc, configured to serialize for w.
func (cfg *MainConfig) load(doc document, w io.Writer) (model.View, error) {
	opts, err := cfg.modelOpts(w)
	if err != nil {
		return nil, err
	}
	v, err := model.New(doc.format, opts...)
	if err != nil {
		return nil, err
	}
	if !v.Load(doc.data) {
		return nil, fmt.Errorf("error loading %s: %w", doc.name, v.LastError())
	}
	return v, nil
}

// eachView loads every document named by files and calls f with its
// model. Documents are separated by "---" lines in the output.
func (cfg *MainConfig) eachView(in io.Reader, w io.Writer, files []string, f func(document, model.View) error) error {
	docs, err := cfg.readDocs(in, files)
	if err != nil {
		return err
	}
	for i, doc := range docs {
		v, err := cfg.load(doc, w)
		if err != nil {
			return err
		}
		if !v.HasTree() {
			theLog.Info("empty document", "file", doc.name)
		}
		if err := f(doc, v); err != nil {
			return fmt.Errorf("error processing %s: %w", doc.name, err)
		}
		if i < len(docs)-1 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
