package ast

// File is one whole compilation unit: inner attributes followed by items.
type File struct {
	Info
	Attrs []Attr
	Items []Item
}
