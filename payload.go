package planpdf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lvillar/planpdf/content"
	"github.com/lvillar/planpdf/stats"
)

// Payload is the plan service's response to a generation request.
type Payload struct {
	Status      string  `json:"status"`
	BMI         Numeric `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
	PlanType    string  `json:"plan_type"`
	AIPlan      string  `json:"ai_plan"`
	Message     string  `json:"message,omitempty"`

	// Goal is not part of the response; callers may copy it from the
	// request as a focus fallback.
	Goal string `json:"-"`
}

// ParsePayload decodes a service response. A status other than "success"
// yields ErrBackend carrying the service's message.
func ParsePayload(r io.Reader) (*Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, &RenderError{Op: "ParsePayload", Err: fmt.Errorf("%w: %w", ErrInvalidParam, err)}
	}
	if p.Status != "success" {
		msg := p.Message
		if msg == "" {
			msg = "status " + strconv.Quote(p.Status)
		}
		return nil, newRenderError("ParsePayload", ErrBackend, errors.New(msg))
	}
	return &p, nil
}

// Document parses the plan markup.
func (p *Payload) Document() (*content.Document, error) {
	return content.ParseString(p.AIPlan)
}

// Summary returns the stats box values carried by the payload. The service
// sends the focus as plan_type ("Muscle Gain Focus"); Goal is only used when
// plan_type is empty. A missing category is derived from the BMI.
func (p *Payload) Summary() stats.Summary {
	s := stats.Summary{
		BMI:      p.BMI.String(),
		Category: p.BMICategory,
		Focus:    p.PlanType,
	}
	if s.Focus == "" && p.Goal != "" {
		s.Focus = p.Goal + " Focus"
	}
	if s.Category == "" {
		if bmi, ok := p.BMI.Float(); ok && bmi > 0 {
			s.Category = stats.Category(bmi)
		}
	}
	return s
}

// Numeric accepts a JSON number or a numeric string such as "22.86".
type Numeric struct {
	raw string
}

func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		n.raw = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n.raw = strings.TrimSpace(s)
		return nil
	}
	var f json.Number
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("bmi: %w", err)
	}
	n.raw = f.String()
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(n.raw, 64); err == nil {
		return []byte(n.raw), nil
	}
	return json.Marshal(n.raw)
}

// String returns the value as received, or stats.Unknown when absent.
func (n Numeric) String() string {
	if n.raw == "" {
		return stats.Unknown
	}
	return n.raw
}

// Float parses the value.
func (n Numeric) Float() (float64, bool) {
	f, err := strconv.ParseFloat(n.raw, 64)
	return f, err == nil
}
