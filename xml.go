package cfgdoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// XML is the structured codec mirroring Document/Section/Entry as
// Sections > Section > (name, Keys > Key > (name, value)).
//
// This is a private round-trip format, not a general-purpose schema:
// comments are never persisted and every value decodes as a string in its
// display form.
type XML struct{}

type xmlDocument struct {
	XMLName  xml.Name     `xml:"Sections"`
	Sections []xmlSection `xml:"Section"`
}

type xmlSection struct {
	Name string   `xml:"name"`
	Keys []xmlKey `xml:"Keys>Key"`
}

// xmlKey collects every child element of a Key so Decode can accept any
// element name for the value part.
type xmlKey struct {
	Elems []xmlElem `xml:",any"`
}

type xmlElem struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// Decode parses the XML tree into a document. Within each Key the child
// element named "name" (matched case-insensitively) supplies the entry name
// and any other child element supplies the value as its text content. Keys
// without a name element are dropped.
func (XML) Decode(r io.Reader) (*Document, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	d := New()
	for _, xs := range doc.Sections {
		s := d.GetOrCreate(xs.Name)
		for _, xk := range xs.Keys {
			var name, value string
			for _, el := range xk.Elems {
				if strings.EqualFold(el.XMLName.Local, "name") {
					name = el.Text
				} else {
					value = el.Text
				}
			}
			if name == "" {
				continue
			}
			s.Set(name, &Entry{name: name, value: StringValue(value)})
		}
	}

	return d, nil
}

type xmlKeyOut struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

type xmlSectionOut struct {
	Name string      `xml:"name"`
	Keys []xmlKeyOut `xml:"Keys>Key"`
}

type xmlDocumentOut struct {
	XMLName  xml.Name        `xml:"Sections"`
	Sections []xmlSectionOut `xml:"Section"`
}

// Encode writes the document as indented UTF-8 XML. All scalars serialize
// via their display form.
func (XML) Encode(w io.Writer, d *Document) error {
	out := xmlDocumentOut{}
	for _, s := range d.Sections() {
		xs := xmlSectionOut{Name: s.Name()}
		for _, e := range s.Entries() {
			xs.Keys = append(xs.Keys, xmlKeyOut{Name: e.Name(), Value: e.Value().String()})
		}
		out.Sections = append(out.Sections, xs)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}
