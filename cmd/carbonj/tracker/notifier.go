package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/samber/lo"
)

// Notifier delivers messages to the presentation layer.
type Notifier interface {
	Notify(message *entities.Message) error
}

// JSONLinesNotifier writes each message as a single line of JSON.
type JSONLinesNotifier struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

func NewJSONLinesNotifier(w io.Writer) *JSONLinesNotifier {
	return &JSONLinesNotifier{encoder: json.NewEncoder(w)}
}

func (n *JSONLinesNotifier) Notify(message *entities.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.encoder.Encode(message); err != nil {
		return fmt.Errorf("Error marshalling the message: %w", err)
	}
	return nil
}

// ChannelNotifier hands messages to an in-process consumer, for hosts that embed the tracker
// instead of talking to carbonj over stdout.
type ChannelNotifier struct {
	C chan *entities.Message
}

func NewChannelNotifier(size int) *ChannelNotifier {
	return &ChannelNotifier{C: make(chan *entities.Message, size)}
}

func (n *ChannelNotifier) Notify(message *entities.Message) error {
	n.C <- message
	return nil
}

// TextNotifier renders messages for people, the same way the side panel lays them out.
type TextNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextNotifier(w io.Writer) *TextNotifier {
	return &TextNotifier{w: w}
}

func (n *TextNotifier) Notify(message *entities.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := io.WriteString(n.w, RenderText(message))
	return err
}

func RenderText(message *entities.Message) string {
	if message.IsError() {
		return fmt.Sprintf("Error: %s\n", message.Message)
	}

	report := message.Data
	builder := strings.Builder{}

	fmt.Fprintf(&builder, "File: %s\n", report.FileName)
	fmt.Fprintf(&builder, "Language: %s\n", report.Language)
	if report.SystemInfo != nil && report.SystemInfo.Cpu != nil {
		fmt.Fprintf(&builder, "CPU: %s %s\n", report.SystemInfo.Cpu.Manufacturer, report.SystemInfo.Cpu.Brand)
	}
	if report.SystemInfo != nil && report.SystemInfo.Memory != nil {
		fmt.Fprintf(&builder, "Memory: %.0f GB\n", math.Round(float64(report.SystemInfo.Memory.Total)/(1024*1024*1024)))
	}

	execution := report.Execution
	fmt.Fprintf(&builder, "Execution Time: %d ms\n", execution.DurationMs)
	fmt.Fprintf(&builder, "Output:\n%s\n", lo.Ternary(execution.Stdout == "", "(none)", execution.Stdout))
	errorText, _ := lo.Coalesce(execution.Stderr, lo.FromPtr(execution.Error), "(none)")
	fmt.Fprintf(&builder, "Error:\n%s\n", errorText)

	fmt.Fprintf(&builder, "Estimated Energy: %.3f mWh\n", report.Emissions.EnergyMWh)
	fmt.Fprintf(&builder, "Estimated CO2 Emissions: %.2f g\n", report.Emissions.EmissionsG)

	return builder.String()
}
