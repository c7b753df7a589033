package models

// Palette is the colour record of one scheme
type Palette struct {
	Text            string `json:"text"`
	TextSecondary   string `json:"textSecondary"`
	Background      string `json:"background"`
	Card            string `json:"card"`
	GlassCard       string `json:"glassCard"`
	Tint            string `json:"tint"`
	Accent          string `json:"accent"`
	TabIconDefault  string `json:"tabIconDefault"`
	TabIconSelected string `json:"tabIconSelected"`
	Border          string `json:"border"`
	Notification    string `json:"notification"`
	Success         string `json:"success"`
	Warning         string `json:"warning"`
	Error           string `json:"error"`
	Button          string `json:"button"`
	ButtonText      string `json:"buttonText"`
	Shimmer         string `json:"shimmer"`
	ModalBackground string `json:"modalBackground"`
}
