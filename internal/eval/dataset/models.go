// Package dataset loads marketing brief datasets for offline evaluation.
package dataset

// Brief is one evaluation record: a generation request plus the brand
// terminology the generated content is scored against.
type Brief struct {
	ID          string   `json:"id" parquet:"id"` // Primary key
	Topic       string   `json:"topic" parquet:"topic"`
	Industry    string   `json:"industry" parquet:"industry"`
	Formats     []string `json:"formats" parquet:"formats,list"`
	Terminology []string `json:"terminology" parquet:"terminology,list"`
	Tone        string   `json:"tone" parquet:"tone"`
	Style       string   `json:"style" parquet:"style"`
}
