package results

import "encoding/json"

// rgEvent mirrors one line of `rg --json` output. Only the fields we
// need are decoded; the stream also carries begin/end/summary/context
// events which either have no data payload or no line number.
type rgEvent struct {
	Data *rgEventData `json:"data"`
}

type rgEventData struct {
	Path struct {
		Text string `json:"text"`
	} `json:"path"`
	LineNumber int `json:"line_number"`
}

// ParseLine parses a single line of ripgrep JSON output.
// It returns ok=false for anything that is not a usable match event:
// malformed JSON, events without a data payload, and payloads missing a
// path or a positive line number. Ingestion never fails on one line.
func ParseLine(line string) (Match, bool) {
	var event rgEvent
	if err := json.Unmarshal([]byte(line), &event); err != nil {
		return Match{}, false
	}
	if event.Data == nil {
		return Match{}, false
	}
	if event.Data.Path.Text == "" || event.Data.LineNumber <= 0 {
		return Match{}, false
	}
	return Match{
		Path:       event.Data.Path.Text,
		LineNumber: event.Data.LineNumber,
	}, true
}
