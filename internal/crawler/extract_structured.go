package crawler

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const ldTypeItemList = "ItemList"

// ldAddress mirrors the schema.org PostalAddress fields we care about.
type ldAddress struct {
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
}

// ldListElement wraps the "item" object of an itemListElement entry.
type ldListElement struct {
	Item *ldEntry `json:"item"`
}

// ldEntry is the typed shape of an ItemList item.
type ldEntry struct {
	Name    string     `json:"name"`
	URL     string     `json:"url"`
	Address *ldAddress `json:"address"`
}

// ldBlock is the typed shape of one JSON-LD payload object.
type ldBlock struct {
	Type            string          `json:"@type"`
	ItemListElement []ldListElement `json:"itemListElement"`
}

// decodeStructuredBlocks parses a single script payload, which may hold one
// object or an array of objects. A payload that matches neither shape is a
// parse failure for the whole block.
func decodeStructuredBlocks(raw string) ([]ldBlock, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var blocks []ldBlock
		if err := json.Unmarshal([]byte(raw), &blocks); err != nil {
			return nil, err
		}
		return blocks, nil
	}
	var block ldBlock
	if err := json.Unmarshal([]byte(raw), &block); err != nil {
		return nil, err
	}
	return []ldBlock{block}, nil
}

// ExtractStructured walks the page's JSON-LD blocks and builds facility
// records from every ItemList entry carrying a name and URL. Entries without
// a nested address fall back to the supplied default state/city. Malformed
// blocks are skipped silently; later blocks still contribute.
func ExtractStructured(doc *goquery.Document, defaults Location) []Facility {
	var records []Facility
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		blocks, err := decodeStructuredBlocks(script.Text())
		if err != nil {
			return
		}
		for _, block := range blocks {
			if block.Type != ldTypeItemList {
				continue
			}
			for _, element := range block.ItemListElement {
				if rec, ok := facilityFromEntry(element.Item, defaults); ok {
					records = append(records, rec)
				}
			}
		}
	})
	return records
}

func facilityFromEntry(entry *ldEntry, defaults Location) (Facility, bool) {
	if entry == nil {
		return Facility{}, false
	}
	name := normalizeWhitespace(entry.Name)
	rawURL := strings.TrimSpace(entry.URL)
	if name == "" || rawURL == "" {
		return Facility{}, false
	}
	rec := Facility{
		Name: name,
		URL:  rawURL,
	}
	if entry.Address != nil {
		rec.Address = normalizeWhitespace(entry.Address.StreetAddress)
		rec.City = normalizeWhitespace(entry.Address.AddressLocality)
		rec.State = normalizeWhitespace(entry.Address.AddressRegion)
		rec.PostalCode = normalizeWhitespace(entry.Address.PostalCode)
	}
	if rec.City == "" {
		rec.City = defaults.City
	}
	if rec.State == "" {
		rec.State = defaults.State
	}
	return rec, true
}
