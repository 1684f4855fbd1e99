// Package ingest reads a Browscap CSV catalog feed into Properties records.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/oxhq/browscap/internal/properties"
)

// metadataRows is the number of leading rows skipped before the header row:
// the feed's first two rows are release metadata, not column names.
const metadataRows = 2

// Catalog reads r, a Latin-1 (ISO-8859-1) encoded CSV feed, and returns one
// Properties record per data row. The first two rows are skipped as
// metadata; the third supplies column names, which are mapped onto
// Properties fields by position using properties.FieldOrder. A header with
// fewer columns than that list, or whose leading columns are named or
// ordered differently, is rejected rather than silently misaligned; extra
// trailing columns are accepted and ignored.
func Catalog(r io.Reader) ([]properties.Properties, error) {
	decoded := transform.NewReader(r, charmap.ISO8859_1.NewDecoder())

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for i := 0; i < metadataRows; i++ {
		if _, err := cr.Read(); err != nil {
			return nil, fmt.Errorf("ingest: read metadata row %d: %w", i+1, err)
		}
	}

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: read header row: %w", err)
	}
	want := properties.FieldOrder()
	if len(header) < len(want) {
		return nil, fmt.Errorf("ingest: header has %d columns, want at least %d", len(header), len(want))
	}
	for i, name := range want {
		if header[i] != name {
			return nil, fmt.Errorf("ingest: header column %d is %q, want %q", i, header[i], name)
		}
	}

	var out []properties.Properties
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read record: %w", err)
		}
		p, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// decodeRow maps a CSV record's positional fields onto a Properties value,
// following the exact field order of properties.FieldOrder.
func decodeRow(row []string) (properties.Properties, error) {
	var p properties.Properties
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	p.PropertyName = get(0)
	p.MasterParent = get(1)
	p.LiteMode = get(2)
	p.Parent = get(3)
	p.Comment = get(4)
	p.Browser = get(5)
	p.BrowserType = get(6)
	p.BrowserBits = get(7)
	p.BrowserMaker = get(8)
	p.BrowserModus = get(9)
	p.Version = get(10)
	p.MajorVer = get(11)
	p.MinorVer = get(12)
	p.Platform = get(13)
	p.PlatformVersion = get(14)
	p.PlatformDescription = get(15)
	p.PlatformBits = get(16)
	p.PlatformMaker = get(17)
	p.Alpha = get(18)
	p.Beta = get(19)
	p.Win16 = get(20)
	p.Win32 = get(21)
	p.Win64 = get(22)
	p.Frames = get(23)
	p.IFrames = get(24)
	p.Tables = get(25)
	p.Cookies = get(26)
	p.BackgroundSounds = get(27)
	p.JavaScript = get(28)
	p.VBScript = get(29)
	p.JavaApplets = get(30)
	p.ActiveXControls = get(31)
	p.IsMobileDevice = get(32)
	p.IsTablet = get(33)
	p.IsSyndicationReader = get(34)
	p.Crawler = get(35)
	p.IsFake = get(36)
	p.IsAnonymized = get(37)
	p.IsModified = get(38)
	p.CssVersion = get(39)
	p.AolVersion = get(40)
	p.DeviceName = get(41)
	p.DeviceMaker = get(42)
	p.DeviceType = get(43)
	p.DevicePointingMethod = get(44)
	p.DeviceCodeName = get(45)
	p.DeviceBrandName = get(46)
	p.RenderingEngineName = get(47)
	p.RenderingEngineVersion = get(48)
	p.RenderingEngineDescription = get(49)
	p.RenderingEngineMaker = get(50)

	if p.PropertyName == "" {
		return properties.Properties{}, fmt.Errorf("ingest: record has empty PropertyName")
	}
	return p, nil
}
