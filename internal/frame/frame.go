package frame

// Frame is one text-art snapshot pushed by the frame source.
type Frame struct {
	Rows       []string `json:"ascii"`
	Resolution int      `json:"resolution"`
	Theme      string   `json:"theme,omitempty"`
}

// wireFrame mirrors Frame with pointer fields so that absent keys can be
// told apart from zero values.
type wireFrame struct {
	Rows       *[]string `json:"ascii"`
	Resolution *int      `json:"resolution"`
	Theme      *string   `json:"theme"`
}
