// Package json decodes catalog and directory snapshots from JSON.
//
// Object keys are read in document order so the directory keeps the order in
// which years, subjects and contacts were written.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/shelf"
)

// Ensure Decoder implements shelf.SnapshotDecoder at compile time.
var _ shelf.SnapshotDecoder = (*Decoder)(nil)

// Decoder reads JSON snapshots.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// node is the on-disk shape of a catalog folder.
type node struct {
	Files      []file          `json:"files"`
	Subfolders json.RawMessage `json:"subfolders"`
}

// file accepts both the English keys and the Italian ones written by the
// Drive ingestion job (titolo, link, tag).
type file struct {
	Title  string   `json:"title"`
	URL    string   `json:"url"`
	Tags   []string `json:"tags"`
	Titolo string   `json:"titolo"`
	Link   string   `json:"link"`
	Tag    []string `json:"tag"`
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

// DecodeCatalog reads a single-key object mapping the root name to its folder.
func (d *Decoder) DecodeCatalog(r io.Reader) (*shelf.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var root *shelf.Folder
	err = eachMember(data, func(name string, value json.RawMessage) error {
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
		return nil, wrap("catalog", err)
	}
	if root == nil {
		return nil, shelf.Errorf(shelf.EINVALID, "catalog: no root folder")
	}
	return &shelf.Catalog{Root: root}, nil
}

func decodeFolder(title string, data json.RawMessage) (*shelf.Folder, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, shelf.Errorf(shelf.EINVALID, "folder %q: %v", title, err)
	}

	folder := &shelf.Folder{
		Title:    title,
		Files:    make([]*shelf.File, 0, len(n.Files)),
		Children: make(map[string]*shelf.Folder),
	}
	for _, f := range n.Files {
		folder.Files = append(folder.Files, f.toFile())
	}

	if len(n.Subfolders) == 0 || string(n.Subfolders) == "null" {
		return folder, nil
	}
	err := eachMember(n.Subfolders, func(name string, value json.RawMessage) error {
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
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// DecodeDirectory reads year -> subject -> name -> email, keeping key order.
func (d *Decoder) DecodeDirectory(r io.Reader) (*shelf.Directory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	dir := &shelf.Directory{}
	seenYears := make(map[string]bool)
	err = eachMember(data, func(yearName string, value json.RawMessage) error {
		if seenYears[yearName] {
			return shelf.Errorf(shelf.EINVALID, "duplicate year %q", yearName)
		}
		seenYears[yearName] = true

		year := &shelf.Year{Name: yearName}
		seenSubjects := make(map[string]bool)
		err := eachMember(value, func(subjectName string, value json.RawMessage) error {
			if seenSubjects[subjectName] {
				return shelf.Errorf(shelf.EINVALID, "year %q: duplicate subject %q", yearName, subjectName)
			}
			seenSubjects[subjectName] = true

			subject := &shelf.Subject{Name: subjectName}
			err := eachMember(value, func(name string, value json.RawMessage) error {
				var email string
				if err := json.Unmarshal(value, &email); err != nil {
					return shelf.Errorf(shelf.EINVALID, "%s/%s: email for %q must be a string", yearName, subjectName, name)
				}
				subject.Contacts = append(subject.Contacts, shelf.Contact{Name: name, Email: email})
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
		return nil, wrap("directory", err)
	}
	return dir, nil
}

// eachMember calls fn for every member of the JSON object in data, in
// document order.
func eachMember(data []byte, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return shelf.Errorf(shelf.EINVALID, "%v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return shelf.Errorf(shelf.EINVALID, "expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return shelf.Errorf(shelf.EINVALID, "%v", err)
		}
		key, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return shelf.Errorf(shelf.EINVALID, "value of %q: %v", key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return shelf.Errorf(shelf.EINVALID, "%v", err)
	}
	return nil
}

func wrap(what string, err error) error {
	var e *shelf.Error
	if errors.As(err, &e) {
		return shelf.Errorf(e.Code, "%s: %s", what, e.Message)
	}
	return fmt.Errorf("%s: %w", what, err)
}
