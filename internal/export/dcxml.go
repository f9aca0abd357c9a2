// Package export renders the collection in interchange formats. Dublin
// Core XML carries the item's advanced metadata fields; plain catalog
// fields map onto title, description and subject elements.
package export

import (
	"encoding/xml"
	"fmt"

	"packrat/internal/models"
)

const dcNamespace = "http://purl.org/dc/elements/1.1/"

type dcRecord struct {
	XMLName      xml.Name `xml:"record"`
	Title        string   `xml:"dc:title,omitempty"`
	Description  string   `xml:"dc:description,omitempty"`
	Date         string   `xml:"dc:date,omitempty"`
	Type         string   `xml:"dc:type,omitempty"`
	Format       string   `xml:"dc:format,omitempty"`
	Coverage     string   `xml:"dc:coverage,omitempty"`
	Rights       string   `xml:"dc:rights,omitempty"`
	Publisher    string   `xml:"dc:publisher,omitempty"`
	Language     string   `xml:"dc:language,omitempty"`
	Source       string   `xml:"dc:source,omitempty"`
	Creators     []string `xml:"dc:creator,omitempty"`
	Contributors []string `xml:"dc:contributor,omitempty"`
	Subjects     []string `xml:"dc:subject,omitempty"`
	Identifiers  []string `xml:"dc:identifier,omitempty"`
}

type dcRecords struct {
	XMLName xml.Name   `xml:"records"`
	XMLNS   string     `xml:"xmlns:dc,attr"`
	Records []dcRecord `xml:"record"`
}

// DublinCoreXML renders items as a Dublin Core records document. Empty
// fields are omitted from each record.
func DublinCoreXML(items []models.Item) ([]byte, error) {
	doc := dcRecords{XMLNS: dcNamespace}
	for _, item := range items {
		record := dcRecord{
			Title:       item.Name,
			Description: item.Description,
			Subjects:    item.Tags,
		}
		if adv := item.Advanced; adv != nil {
			record.Date = adv.Date
			record.Type = adv.Type
			record.Format = adv.Format
			record.Coverage = adv.Coverage
			record.Rights = adv.Rights
			record.Publisher = adv.Publisher
			record.Language = adv.Language
			record.Source = adv.Source
			record.Creators = adv.Creators
			record.Contributors = adv.Contributors
			record.Identifiers = adv.Identifiers
		}
		doc.Records = append(doc.Records, record)
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding dublin core records: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
