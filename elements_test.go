package aegis

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func apophisRecord() ElementRecord {
	return ElementRecord{
		Epoch: "2461000.5",
		Elements: []Element{
			{Name: "a", Value: "0.9224"},
			{Name: "e", Value: "0.1914"},
			{Name: "i", Value: "3.3314"},
			{Name: "om", Value: "204.446"},
			{Name: "w", Value: "126.394"},
			{Name: "ma", Value: "268.714"},
		},
	}
}

func TestExtractElements(t *testing.T) {
	set, err := ExtractElements(apophisRecord(), nil)
	if err != nil {
		t.Fatalf("extraction failed: %s", err)
	}
	if !scalar.EqualWithinAbs(set.SemiMajorAxisAU, 0.9224, 1e-12) {
		t.Fatalf("wrong semi-major axis: %v", set.SemiMajorAxisAU)
	}
	if !scalar.EqualWithinAbs(set.EpochJD, 2461000.5, 1e-9) {
		t.Fatalf("wrong epoch: %v", set.EpochJD)
	}
	if err := set.Validate(); err != nil {
		t.Fatalf("extracted set does not validate: %s", err)
	}
}

func TestExtractElementsMissing(t *testing.T) {
	rec := apophisRecord()
	rec.Elements = rec.Elements[:4] // drop w and ma
	_, err := ExtractElements(rec, nil)
	if KindOf(err) != KindMissingElements {
		t.Fatalf("expected missing elements, got %v", err)
	}
	if !strings.Contains(err.Error(), "ma") || !strings.Contains(err.Error(), "w") {
		t.Fatalf("error does not name the absent keys: %s", err)
	}
}

func TestExtractElementsUnparsableBecomesMissing(t *testing.T) {
	rec := apophisRecord()
	rec.Elements[5].Value = "not-a-number" // ma
	_, err := ExtractElements(rec, nil)
	if KindOf(err) != KindMissingElements {
		t.Fatalf("expected missing elements after skipping unparsable value, got %v", err)
	}
}

func TestExtractElementsUnparsableExtraIsSkipped(t *testing.T) {
	rec := apophisRecord()
	rec.Elements = append(rec.Elements, Element{Name: "per", Value: "??"})
	if _, err := ExtractElements(rec, nil); err != nil {
		t.Fatalf("unparsable optional element must not be fatal: %s", err)
	}
}

func TestExtractElementsInvalidEpoch(t *testing.T) {
	rec := apophisRecord()
	rec.Epoch = "yesterday"
	_, err := ExtractElements(rec, nil)
	if KindOf(err) != KindInvalidEpoch {
		t.Fatalf("expected invalid epoch, got %v", err)
	}
}

func TestEpochBoundaries(t *testing.T) {
	cases := []struct {
		epoch string
		kind  Kind
	}{
		{"2415020.5", KindUnknown}, // exact lower bound succeeds
		{"2415020.4", KindEpochOutOfRange},
		{"2488070.5", KindUnknown}, // exact upper bound succeeds
		{"2488070.6", KindEpochOutOfRange},
	}
	for _, tc := range cases {
		rec := apophisRecord()
		rec.Epoch = tc.epoch
		_, err := ExtractElements(rec, nil)
		if KindOf(err) != tc.kind {
			t.Errorf("epoch %s: expected kind %v, got error %v", tc.epoch, tc.kind, err)
		}
	}
}

func TestExtractElementsRangeChecks(t *testing.T) {
	cases := []struct {
		name, value string
		kind        Kind
	}{
		{"a", "0", KindInvalidSemiMajorAxis},
		{"a", "-1.2", KindInvalidSemiMajorAxis},
		{"e", "1.0", KindInvalidEccentricity},
		{"e", "-0.1", KindInvalidEccentricity},
		{"i", "200", KindInvalidInclination},
		{"i", "-5", KindInvalidInclination},
	}
	for _, tc := range cases {
		rec := apophisRecord()
		for j := range rec.Elements {
			if rec.Elements[j].Name == tc.name {
				rec.Elements[j].Value = tc.value
			}
		}
		_, err := ExtractElements(rec, nil)
		if KindOf(err) != tc.kind {
			t.Errorf("%s=%s: expected kind %v, got error %v", tc.name, tc.value, tc.kind, err)
		}
	}
}

func TestExtractElementsNormalizesAngles(t *testing.T) {
	rec := apophisRecord()
	for j := range rec.Elements {
		switch rec.Elements[j].Name {
		case "om":
			rec.Elements[j].Value = "364.446"
		case "w":
			rec.Elements[j].Value = "-33.606"
		case "ma":
			rec.Elements[j].Value = "720.0"
		}
	}
	set, err := ExtractElements(rec, nil)
	if err != nil {
		t.Fatalf("extraction failed: %s", err)
	}
	if !scalar.EqualWithinAbs(set.NodeDeg, 4.446, 1e-9) {
		t.Errorf("om not normalized: %v", set.NodeDeg)
	}
	if !scalar.EqualWithinAbs(set.ArgPeriapsisDeg, 326.394, 1e-9) {
		t.Errorf("w not normalized: %v", set.ArgPeriapsisDeg)
	}
	if !scalar.EqualWithinAbs(set.MeanAnomalyDeg, 0, 1e-9) {
		t.Errorf("ma not normalized: %v", set.MeanAnomalyDeg)
	}
}

func TestKindOfUnwraps(t *testing.T) {
	err := wrapf(KindDeflectionFailed, errf(KindEpochOutOfRange, "inner"), "outer")
	if KindOf(err) != KindDeflectionFailed {
		t.Fatalf("outer kind lost: %v", KindOf(err))
	}
	if err.Unwrap() == nil || KindOf(err.Unwrap()) != KindEpochOutOfRange {
		t.Fatalf("cause kind lost")
	}
}
