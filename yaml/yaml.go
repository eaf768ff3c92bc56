// Package yaml decodes catalog and directory snapshots from YAML using
// gopkg.in/yaml.v3. Mapping order is taken from the node tree, so the
// directory keeps the order in which it was written.
package yaml

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/shelf"
	"gopkg.in/yaml.v3"
)

// Ensure Decoder implements shelf.SnapshotDecoder at compile time.
var _ shelf.SnapshotDecoder = (*Decoder)(nil)

// Decoder reads YAML snapshots.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

type file struct {
	Title  string   `yaml:"title"`
	URL    string   `yaml:"url"`
	Tags   []string `yaml:"tags"`
	Titolo string   `yaml:"titolo"`
	Link   string   `yaml:"link"`
	Tag    []string `yaml:"tag"`
}

func (f file) toFile() *shelf.File {
	out := &shelf.File{Title: f.Title, URL: f.URL, Tags: f.Tags}
	if out.Title == "" {
		out.Title = f.Titolo
	}
	if out.URL == "" {
		out.URL = f.Link
	}
	if out.Tags == nil {
		out.Tags = f.Tag
	}
	return out
}

// DecodeCatalog reads a single-key mapping from the root name to its folder.
func (d *Decoder) DecodeCatalog(r io.Reader) (*shelf.Catalog, error) {
	doc, err := decodeDocument(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var root *shelf.Folder
	err = eachPair(doc, func(name string, value *yaml.Node) error {
		if root != nil {
			return shelf.Errorf(shelf.EINVALID, "catalog must have exactly one root, found %q and %q", root.Title, name)
		}
		folder, err := decodeFolder(name, value)
		if err != nil {
			return err
		}
		root = folder
		return nil
	})
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, shelf.Errorf(shelf.EINVALID, "catalog: no root folder")
	}
	return &shelf.Catalog{Root: root}, nil
}

func decodeFolder(title string, n *yaml.Node) (*shelf.Folder, error) {
	folder := &shelf.Folder{
		Title:    title,
		Files:    []*shelf.File{},
		Children: make(map[string]*shelf.Folder),
	}
	if n.Tag == "!!null" {
		return folder, nil
	}
	err := eachPair(n, func(key string, value *yaml.Node) error {
		switch key {
		case "files":
			var files []file
			if err := value.Decode(&files); err != nil {
				return shelf.Errorf(shelf.EINVALID, "folder %q: files: %v", title, err)
			}
			for _, f := range files {
				folder.Files = append(folder.Files, f.toFile())
			}
		case "subfolders":
			if value.Tag == "!!null" {
				return nil
			}
			return eachPair(value, func(name string, value *yaml.Node) error {
				if _, dup := folder.Children[name]; dup {
					return shelf.Errorf(shelf.EINVALID, "folder %q: duplicate subfolder %q", title, name)
				}
				child, err := decodeFolder(name, value)
				if err != nil {
					return err
				}
				folder.Children[name] = child
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// DecodeDirectory reads year -> subject -> name -> email, keeping key order.
func (d *Decoder) DecodeDirectory(r io.Reader) (*shelf.Directory, error) {
	doc, err := decodeDocument(r)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}

	dir := &shelf.Directory{}
	err = eachPair(doc, func(yearName string, value *yaml.Node) error {
		if _, dup := dir.Year(yearName); dup {
			return shelf.Errorf(shelf.EINVALID, "duplicate year %q", yearName)
		}
		year := &shelf.Year{Name: yearName}
		err := eachPair(value, func(subjectName string, value *yaml.Node) error {
			if _, dup := year.Subject(subjectName); dup {
				return shelf.Errorf(shelf.EINVALID, "year %q: duplicate subject %q", yearName, subjectName)
			}
			subject := &shelf.Subject{Name: subjectName}
			err := eachPair(value, func(name string, value *yaml.Node) error {
				if value.Kind != yaml.ScalarNode {
					return shelf.Errorf(shelf.EINVALID, "%s/%s: email for %q must be a string", yearName, subjectName, name)
				}
				subject.Contacts = append(subject.Contacts, shelf.Contact{Name: name, Email: value.Value})
				return nil
			})
			if err != nil {
				return err
			}
			year.Subjects = append(year.Subjects, subject)
			return nil
		})
		if err != nil {
			return err
		}
		dir.Years = append(dir.Years, year)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dir, nil
}

func decodeDocument(r io.Reader) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, shelf.Errorf(shelf.EINVALID, "empty document")
		}
		return nil, shelf.Errorf(shelf.EINVALID, "%v", err)
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0], nil
	}
	return &doc, nil
}

// eachPair calls fn for every key/value pair of a mapping node, in order.
func eachPair(n *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if n.Kind != yaml.MappingNode {
		return shelf.Errorf(shelf.EINVALID, "line %d: expected mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
