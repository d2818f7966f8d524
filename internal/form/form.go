// Package form holds the editable state of the estimator: an ordered list of
// labeled digit-only fields and a cursor selecting the field that receives
// input. It has no knowledge of pricing or of the terminal.
package form

import "strconv"

// Field is a single labeled value in the form.
// Value only ever contains ASCII digits (or is empty).
type Field struct {
	Label string
	Value string
}

// Form is an ordered, fixed-length set of fields plus a selection cursor.
// It is owned by one render/input loop and is not safe for concurrent use.
type Form struct {
	fields   []Field
	selected int
}

// New creates a form with one empty field per label and the first field selected.
// With no labels the form still holds a single unlabeled field.
func New(labels ...string) *Form {
	if len(labels) == 0 {
		labels = []string{""}
	}

	fields := make([]Field, len(labels))
	for i, l := range labels {
		fields[i] = Field{Label: l}
	}

	return &Form{fields: fields}
}

// Len returns the number of fields.
func (f *Form) Len() int {
	return len(f.fields)
}

// Selected returns the index of the selected field.
func (f *Form) Selected() int {
	return f.selected
}

// Select moves the cursor to index i, clamped into range.
func (f *Form) Select(i int) {
	f.selected = max(0, min(i, len(f.fields)-1))
}

// MoveUp selects the previous field. No-op on the first field.
func (f *Form) MoveUp() {
	if f.selected > 0 {
		f.selected--
	}
}

// MoveDown selects the next field. No-op on the last field.
func (f *Form) MoveDown() {
	if f.selected < len(f.fields)-1 {
		f.selected++
	}
}

// AppendDigit appends r to the selected field when r is an ASCII digit.
// Any other rune is ignored.
func (f *Form) AppendDigit(r rune) {
	if !isDigit(r) {
		return
	}
	f.fields[f.selected].Value += string(r)
}

// Backspace removes the last character of the selected field, if any.
func (f *Form) Backspace() {
	v := f.fields[f.selected].Value
	if v == "" {
		return
	}
	// Values are ASCII-only, so dropping one byte drops one character.
	f.fields[f.selected].Value = v[:len(v)-1]
}

// SetValue replaces the value of field i with the ASCII digits of s.
// Out-of-range indexes are ignored.
func (f *Form) SetValue(i int, s string) {
	if i < 0 || i >= len(f.fields) {
		return
	}

	digits := make([]byte, 0, len(s))
	for _, r := range s {
		if isDigit(r) {
			digits = append(digits, byte(r))
		}
	}
	f.fields[i].Value = string(digits)
}

// ValueAsNumber parses field i as a base-10 unsigned integer.
// Empty, unparseable or overflowing values read as 0, as does an index that
// does not name a field.
func (f *Form) ValueAsNumber(i int) uint64 {
	if i < 0 || i >= len(f.fields) {
		return 0
	}
	n, err := strconv.ParseUint(f.fields[i].Value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Values returns ValueAsNumber for every field, in field order.
func (f *Form) Values() []uint64 {
	out := make([]uint64, len(f.fields))
	for i := range f.fields {
		out[i] = f.ValueAsNumber(i)
	}
	return out
}

// Field returns a copy of field i. The zero Field is returned for a bad index.
func (f *Form) Field(i int) Field {
	if i < 0 || i >= len(f.fields) {
		return Field{}
	}
	return f.fields[i]
}

// Fields returns a copy of all fields.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Labels returns the field labels in order.
func (f *Form) Labels() []string {
	out := make([]string, len(f.fields))
	for i, fd := range f.fields {
		out[i] = fd.Label
	}
	return out
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
