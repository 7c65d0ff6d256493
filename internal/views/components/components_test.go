package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"hydromix/internal/mixture"
)

func TestErrorBannerRendersMessage(t *testing.T) {
	var buf bytes.Buffer
	if err := ErrorBanner(mixture.MsgInvalidSize).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render error banner: %v", err)
	}
	if !strings.Contains(buf.String(), mixture.MsgInvalidSize) {
		t.Fatalf("expected message in output: %s", buf.String())
	}

	buf.Reset()
	if err := ErrorBanner("  ").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render empty banner: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty banner to render nothing, got %q", buf.String())
	}
}

func TestWeightRowRendersValues(t *testing.T) {
	var buf bytes.Buffer
	if err := WeightRow("Epsom Salt", "60.00").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render weight row: %v", err)
	}
	out := buf.String()
	for _, token := range []string{"Epsom Salt:", "60.00", "grams"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q: %s", token, out)
		}
	}
}

func TestSelectMarksSelectedOption(t *testing.T) {
	var buf bytes.Buffer
	options := UnitOptions(mixture.ContainerVariant.Units)
	if err := Select("unit", "unit", options, string(mixture.Gallon)).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render select: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<option value="gallon" selected>Gallon</option>`) {
		t.Fatalf("expected gallon to be selected: %s", out)
	}
	if !strings.Contains(out, `<option value="5gallon">5 Gallons</option>`) {
		t.Fatalf("expected five gallon option: %s", out)
	}
	if strings.Contains(out, `value="liter"`) {
		t.Fatalf("expected container variant to omit litres: %s", out)
	}
}

func TestPresetListRendersLinks(t *testing.T) {
	var buf bytes.Buffer
	links := []PresetLink{{Slug: "bucket", Label: "Bucket", Hint: "1 5-gal"}}
	if err := PresetList(links).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render preset list: %v", err)
	}
	if !strings.Contains(buf.String(), `href="/?preset=bucket"`) {
		t.Fatalf("expected preset link: %s", buf.String())
	}
}

func TestResolveSystem(t *testing.T) {
	if got := ResolveSystem("imperial", mixture.Metric); got != mixture.Imperial {
		t.Fatalf("ResolveSystem(imperial) = %q", got)
	}
	if got := ResolveSystem("galactic", mixture.Metric); got != mixture.Metric {
		t.Fatalf("expected fallback, got %q", got)
	}
	if len(SystemOptions()) != 2 {
		t.Fatalf("expected two system options")
	}
}
