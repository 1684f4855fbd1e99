package ingest

import (
	"strings"
	"testing"

	"github.com/oxhq/browscap/internal/properties"
)

func header() string {
	return strings.Join(properties.FieldOrder(), ",")
}

func TestCatalogSkipsMetadataAndReadsHeader(t *testing.T) {
	fields := make([]string, len(properties.FieldOrder()))
	fields[0] = "Mozilla/5.0 Test"
	fields[5] = "Chrome"
	dataRow := strings.Join(fields, ",")

	csvText := "GJK_Browscap_Version,2024.01\n" +
		"This file was generated by...\n" +
		header() + "\n" +
		dataRow + "\n"

	got, err := Catalog(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].PropertyName != "Mozilla/5.0 Test" {
		t.Fatalf("PropertyName = %q", got[0].PropertyName)
	}
	if got[0].Browser != "Chrome" {
		t.Fatalf("Browser = %q", got[0].Browser)
	}
}

func TestCatalogRejectsMismatchedHeader(t *testing.T) {
	csvText := "meta1\nmeta2\nWrongColumn,Other\ndata,row\n"
	if _, err := Catalog(strings.NewReader(csvText)); err == nil {
		t.Fatal("expected error for mismatched header")
	}
}

func TestCatalogDecodesLatin1Bytes(t *testing.T) {
	// 0xE9 in ISO-8859-1 is 'é'.
	dataRow := "Caf\xe9 Browser" + strings.Repeat(",", len(properties.FieldOrder())-1)

	csvText := "meta1\nmeta2\n" + header() + "\n" + dataRow + "\n"

	got, err := Catalog(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d", len(got))
	}
	if got[0].PropertyName != "Café Browser" {
		t.Fatalf("PropertyName = %q, want %q", got[0].PropertyName, "Café Browser")
	}
}

func TestCatalogRejectsEmptyPropertyName(t *testing.T) {
	dataRow := strings.Repeat(",", len(properties.FieldOrder())-1)
	csvText := "meta1\nmeta2\n" + header() + "\n" + dataRow + "\n"
	if _, err := Catalog(strings.NewReader(csvText)); err == nil {
		t.Fatal("expected error for empty PropertyName")
	}
}
