// Package properties defines the immutable Browscap property record attached
// to every Full node in the pattern index.
package properties

import "reflect"

// Properties is an immutable tuple of browser/device attributes associated
// with one Browscap pattern. The first field mirrors the pattern string
// itself. Field values are preserved verbatim as strings, including the
// literal "true"/"false" tokens the catalog uses for booleans, and are
// opaque to the index beyond PropertyName.
type Properties struct {
	PropertyName string
	MasterParent string
	LiteMode     string
	Parent       string
	Comment      string

	Browser      string
	BrowserType  string
	BrowserBits  string
	BrowserMaker string
	BrowserModus string
	Version      string
	MajorVer     string
	MinorVer     string

	Platform            string
	PlatformVersion     string
	PlatformDescription string
	PlatformBits        string
	PlatformMaker       string

	Alpha  string
	Beta   string
	Win16  string
	Win32  string
	Win64  string
	Frames string

	IFrames          string
	Tables           string
	Cookies          string
	BackgroundSounds string
	JavaScript       string
	VBScript         string
	JavaApplets      string
	ActiveXControls  string

	IsMobileDevice      string
	IsTablet            string
	IsSyndicationReader string
	Crawler             string
	IsFake              string
	IsAnonymized        string
	IsModified          string
	CssVersion          string
	AolVersion          string

	DeviceName           string
	DeviceMaker          string
	DeviceType           string
	DevicePointingMethod string
	DeviceCodeName       string
	DeviceBrandName      string

	RenderingEngineName        string
	RenderingEngineVersion     string
	RenderingEngineDescription string
	RenderingEngineMaker       string
}

// Pattern returns the Browscap pattern this record describes.
func (p Properties) Pattern() string {
	return p.PropertyName
}

// fieldOrder lists the field names in catalog column order, used both by the
// CSV ingestion header mapping and by deterministic serialization ordering.
var fieldOrder = []string{
	"PropertyName", "MasterParent", "LiteMode", "Parent", "Comment", "Browser",
	"Browser_Type", "Browser_Bits", "Browser_Maker", "Browser_Modus", "Version",
	"MajorVer", "MinorVer", "Platform", "Platform_Version",
	"Platform_Description", "Platform_Bits", "Platform_Maker", "Alpha", "Beta",
	"Win16", "Win32", "Win64", "Frames", "IFrames", "Tables", "Cookies",
	"BackgroundSounds", "JavaScript", "VBScript", "JavaApplets",
	"ActiveXControls", "isMobileDevice", "isTablet", "isSyndicationReader",
	"Crawler", "isFake", "isAnonymized", "isModified", "CssVersion",
	"AolVersion", "Device_Name", "Device_Maker", "Device_Type",
	"Device_Pointing_Method", "Device_Code_Name", "Device_Brand_Name",
	"RenderingEngine_Name", "RenderingEngine_Version",
	"RenderingEngine_Description", "RenderingEngine_Maker",
}

// FieldOrder returns the canonical catalog column order.
func FieldOrder() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Values returns the record's field values in the same order as
// FieldOrder, for callers (CSV writers, diffing) that need a positional
// view instead of named field access. The struct's declared field order is
// kept in lockstep with fieldOrder for exactly this reason.
func (p Properties) Values() []string {
	v := reflect.ValueOf(p)
	out := make([]string, v.NumField())
	for i := range out {
		out[i] = v.Field(i).String()
	}
	return out
}
