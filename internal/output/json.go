// Package output serializes student records to the JSON document read by the web front end.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dadeserasmus/internal/apperrors"
	"dadeserasmus/internal/models"
)

const indent = "  "

// Encode renders students as an indented JSON array. Non-ASCII text, including
// U+2028 and U+2029, and the characters <, > and & are written literally.
// The document has no trailing newline.
func Encode(students []models.Student) ([]byte, error) {
	if students == nil {
		students = []models.Student{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(students); err != nil {
		return nil, err
	}

	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that encoding/json
// always emits back into the literal runes. An escape preceded by an escaped
// backslash is text and is kept.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); i++ {
		if data[i] == '\\' && i+5 < len(data) && bytes.HasPrefix(data[i+1:], []byte("u202")) &&
			(data[i+5] == '8' || data[i+5] == '9') && precedingBackslashes(data, i)%2 == 0 {
			if data[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5

			continue
		}

		out = append(out, data[i])
	}

	return out
}

func precedingBackslashes(data []byte, i int) int {
	n := 0
	for j := i - 1; j >= 0 && data[j] == '\\'; j-- {
		n++
	}

	return n
}

// WriteJSON encodes students and replaces the file at path.
func WriteJSON(path string, students []models.Student) error {
	data, err := Encode(students)
	if err != nil {
		return apperrors.New(apperrors.KindInternal, "failed to encode students", err)
	}

	if err := WriteFileAtomic(path, data, 0o644); err != nil {
		return apperrors.OutputWrite(fmt.Sprintf("cannot write %s", path), err)
	}

	return nil
}

// ReadJSON loads a document previously written by WriteJSON.
func ReadJSON(path string) ([]models.Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.InputNotFound(fmt.Sprintf("%s not found", path), err)
		}
		return nil, apperrors.InputNotFound(fmt.Sprintf("cannot read %s", path), err)
	}

	students := []models.Student{}
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, apperrors.Format(fmt.Sprintf("%s is not a student document", path), err)
	}

	return students, nil
}
