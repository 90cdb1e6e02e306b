package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/studentcheck/svc/student"
)

type inputFormat string

const (
	inputAuto inputFormat = ""
	inputYAML inputFormat = "yaml"
	inputJSON inputFormat = "json"
)

func parseInputFormat(s string) (inputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return inputAuto, nil
	case "yaml", "yml":
		return inputYAML, nil
	case "json":
		return inputJSON, nil
	}
	return "", fmt.Errorf("%w: %q", errUnsupportedInput, s)
}

// formatFor picks the format of a named source. Unknown extensions and
// stdin are read as YAML, which also accepts JSON documents.
func formatFor(name string, format inputFormat) inputFormat {
	if format != inputAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return inputJSON
	}
	return inputYAML
}

// recordsDocument is the object form of an input file.
type recordsDocument struct {
	Students []student.Record `json:"students" yaml:"students"`
}

// readRecords decodes student records from r. The document is either a list
// of records or an object with a "students" list.
func readRecords(r io.Reader, format inputFormat) ([]student.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(errReadingInput, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	switch format {
	case inputJSON:
		return decodeJSON(data)
	default:
		return decodeYAML(data)
	}
}

func decodeJSON(data []byte) ([]student.Record, error) {
	data = bytes.TrimSpace(data)
	if data[0] == '[' {
		var records []student.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, errors.Join(errDecodingInput, err)
		}
		return records, nil
	}

	var doc recordsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(errDecodingInput, err)
	}
	return doc.Students, nil
}

func decodeYAML(data []byte) ([]student.Record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Join(errDecodingInput, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var records []student.Record
		if err := root.Decode(&records); err != nil {
			return nil, errors.Join(errDecodingInput, err)
		}
		return records, nil
	}

	var doc recordsDocument
	if err := root.Decode(&doc); err != nil {
		return nil, errors.Join(errDecodingInput, err)
	}
	return doc.Students, nil
}
