package entities

const (
	MESSAGE_START_TRACKING   = "startTracking"
	MESSAGE_TRACKING_RESULTS = "trackingResults"
	MESSAGE_ERROR            = "error"
)

// InboundMessage is what the presentation layer sends to carbonj.
type InboundMessage struct {
	Type     string    `mapstructure:"type" validate:"required"`
	Document *Document `mapstructure:"document"`
}

// Document describes the file currently open in the editor. An empty path means no file is open.
type Document struct {
	Path       string `mapstructure:"path" json:"path"`
	LanguageId string `mapstructure:"languageId" json:"languageId" validate:"required"`
}

// Message is what carbonj sends back. Exactly one of Data and Message is set.
type Message struct {
	Type    string          `json:"type"`
	Data    *TrackingReport `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (m *Message) IsError() bool {
	return m.Type == MESSAGE_ERROR
}
