package asm

import (
	"maps"
	"slices"
)

// Label is the definition of a jump label.
type Label struct {
	LineNo int // Source line of the definition.
	Ip     int // Word address assigned during the label scan.
}

// LabelTable maps label names to word addresses. It is built once by
// ScanLabels and is read only afterwards.
type LabelTable struct {
	label map[string]Label
}

// Lookup returns the definition of a label.
func (lt LabelTable) Lookup(name string) (label Label, ok bool) {
	label, ok = lt.label[name]
	return
}

// Len returns the number of labels.
func (lt LabelTable) Len() int {
	return len(lt.label)
}

// Names returns the label names in sorted order.
func (lt LabelTable) Names() []string {
	return slices.Sorted(maps.Keys(lt.label))
}

// Addresses returns a copy of the table as name to word address.
func (lt LabelTable) Addresses() map[string]int {
	addrs := make(map[string]int, len(lt.label))
	for name, label := range lt.label {
		addrs[name] = label.Ip
	}
	return addrs
}

// ScanLabels assigns a word address to every label in the source. Every
// non-blank line after its label is assumed to be one instruction word.
func ScanLabels(lines []string) (lt LabelTable, err error) {
	lt.label = make(map[string]Label, 16)

	ip := 0
	for n, text := range lines {
		line := splitLine(text)
		if line.Empty() {
			continue
		}

		if line.HasLabel {
			_, ok := lt.label[line.Label]
			if ok {
				err = &ErrSyntax{
					LineNo: n + 1,
					Line:   text,
					Err:    &ErrToken{Token: line.Label, Err: ErrLabelDuplicate},
				}
				return
			}
			lt.label[line.Label] = Label{LineNo: n + 1, Ip: ip}
		}

		if len(line.Body) != 0 {
			ip++
		}
	}

	return
}
