package exporter

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"roomroster/pkg/contracts/domain"
)

// xmlRooms is the markup shape of the combined output: every list becomes an
// element holding one child per item, named after the singular of the list.
type xmlRooms struct {
	XMLName xml.Name  `xml:"rooms"`
	Rooms   []xmlRoom `xml:"room"`
}

type xmlRoom struct {
	ID       int         `xml:"id"`
	Name     string      `xml:"name"`
	Students xmlStudents `xml:"students"`
}

type xmlStudents struct {
	Items []domain.Student `xml:"student"`
}

func renderXML(rooms []domain.RoomWithStudents) ([]byte, error) {
	doc := xmlRooms{Rooms: make([]xmlRoom, 0, len(rooms))}
	for _, r := range rooms {
		doc.Rooms = append(doc.Rooms, xmlRoom{
			ID:       r.ID,
			Name:     r.Name,
			Students: xmlStudents{Items: r.Students},
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode XML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode XML: %w", err)
	}
	return buf.Bytes(), nil
}
