package properties

import "testing"

func TestFieldOrderAndValuesStayInLockstep(t *testing.T) {
	p := Properties{PropertyName: "ab", Browser: "Chrome", RenderingEngineMaker: "Blink"}

	order := FieldOrder()
	values := p.Values()
	if len(order) != len(values) {
		t.Fatalf("len(FieldOrder())=%d, len(Values())=%d", len(order), len(values))
	}

	if order[0] != "PropertyName" || values[0] != "ab" {
		t.Fatalf("position 0: field=%q value=%q", order[0], values[0])
	}
	if order[len(order)-1] != "RenderingEngine_Maker" || values[len(values)-1] != "Blink" {
		t.Fatalf("last position: field=%q value=%q", order[len(order)-1], values[len(values)-1])
	}
}

func TestPattern(t *testing.T) {
	p := Properties{PropertyName: "Mozilla/5.0*"}
	if p.Pattern() != "Mozilla/5.0*" {
		t.Fatalf("Pattern() = %q", p.Pattern())
	}
}

func TestFieldOrderReturnsACopy(t *testing.T) {
	order := FieldOrder()
	order[0] = "mutated"
	if FieldOrder()[0] == "mutated" {
		t.Fatal("FieldOrder() leaked its backing array")
	}
}
