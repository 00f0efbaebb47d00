package planpdf_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lvillar/planpdf"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		bmi      string
		category string
		wantErr  error
	}{
		{
			name:     "numeric bmi",
			body:     `{"status":"success","bmi":22.86,"bmi_category":"Normal Weight","plan_type":"Hypertrophy & Strength Training","ai_plan":"<p>x</p>"}`,
			bmi:      "22.86",
			category: "Normal Weight",
		},
		{
			name:     "string bmi",
			body:     `{"status":"success","bmi":"31.2","bmi_category":"Obese","ai_plan":""}`,
			bmi:      "31.2",
			category: "Obese",
		},
		{
			name: "missing bmi",
			body: `{"status":"success","ai_plan":""}`,
			bmi:  "--",
		},
		{
			name:    "backend error",
			body:    `{"status":"error","message":"model overloaded"}`,
			wantErr: planpdf.ErrBackend,
		},
		{
			name:    "not json",
			body:    `<html>`,
			wantErr: planpdf.ErrInvalidParam,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := planpdf.ParsePayload(strings.NewReader(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			s := p.Summary()
			if s.BMI != tt.bmi || s.Category != tt.category {
				t.Errorf("Summary = %+v", s)
			}
		})
	}
}

func TestBackendMessageSurfaced(t *testing.T) {
	_, err := planpdf.ParsePayload(strings.NewReader(`{"status":"error","message":"model overloaded"}`))
	if err == nil || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("err = %v", err)
	}
}

func TestPayloadDocumentAndFocus(t *testing.T) {
	p, err := planpdf.ParsePayload(strings.NewReader(`{"status":"success","bmi":24,"ai_plan":"<div data-plan-tag=\"workout-card\"><strong>Day 1</strong></div>"}`))
	if err != nil {
		t.Fatal(err)
	}
	p.Goal = "Weight Loss"
	if got := p.Summary().Focus; got != "Weight Loss Focus" {
		t.Errorf("Focus = %q", got)
	}
	if got := p.Summary().Category; got != "Normal Weight" {
		t.Errorf("derived Category = %q", got)
	}
	doc, err := p.Document()
	if err != nil {
		t.Fatal(err)
	}
	art, err := planpdf.Render(doc, p.Summary(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(strings.Join(art.PageText(1), "\n"), "Day 1") {
		t.Error("payload plan not rendered")
	}
}

func TestSummaryFromServiceResponse(t *testing.T) {
	body := `{"status":"success","bmi":22.86,"bmi_category":"Normal Weight","plan_type":"Muscle Gain Focus","ai_plan":"<p>x</p>"}`
	p, err := planpdf.ParsePayload(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	p.Goal = "Weight Loss"
	s := p.Summary()
	if s.Focus != "Muscle Gain Focus" {
		t.Errorf("Focus = %q, want the service's plan_type", s.Focus)
	}
	if s.Strategy != "" {
		t.Errorf("Strategy = %q, want empty", s.Strategy)
	}
	if got, want := s.Line(), "BMI: 22.86   |   Category: Normal Weight   |   Focus: Muscle Gain Focus"; got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}

	doc, err := p.Document()
	if err != nil {
		t.Fatal(err)
	}
	art, err := planpdf.Render(doc, s, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range art.PageText(1) {
		if strings.HasPrefix(line, "Coach Strategy:") {
			t.Errorf("unexpected strategy line %q", line)
		}
	}
}
