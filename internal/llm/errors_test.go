package llm

import (
	"errors"
	"testing"
)

func TestClassifyNil(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Errorf("Classify(nil) = %v", got)
	}
}

func TestClassifyModelNotFound(t *testing.T) {
	err := Classify(errors.New("googleapi: Error 404: models/gemini-nope is not found for API version v1beta"))

	if !errors.Is(err, ErrPermanent) {
		t.Error("expected ErrPermanent")
	}
	if errors.Is(err, ErrTransient) {
		t.Error("did not expect ErrTransient")
	}
	if err.Error() != "googleapi: Error 404: models/gemini-nope is not found for API version v1beta" {
		t.Errorf("message changed: %v", err)
	}
}

func TestClassifyTransient(t *testing.T) {
	err := Classify(errors.New("context deadline exceeded"))

	if !errors.Is(err, ErrTransient) {
		t.Error("expected ErrTransient")
	}
	if errors.Is(err, ErrPermanent) {
		t.Error("did not expect ErrPermanent")
	}
}

func TestClassifyIdempotent(t *testing.T) {
	first := Classify(errors.New("quota exceeded"))
	second := Classify(first)

	if second != first {
		t.Error("classified error should pass through unchanged")
	}
}

func TestIsModelNotFound(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"googleapi: Error 404: models/gemini-x is not found for API version v1beta", true},
		{"rpc error: code = NotFound desc = requested entity was not found", true},
		{"unsupported model: gpt-1", true},
		{"error, status code: 404, message: The model 'gpt-nope' does not exist", true},
		{"rate limit exceeded", false},
		{"resource exhausted", false},
		{"connection reset by peer", false},
		{"404 page not found", false},
	}

	for _, tt := range tests {
		if got := IsModelNotFound(errors.New(tt.msg)); got != tt.want {
			t.Errorf("IsModelNotFound(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}

	if IsModelNotFound(nil) {
		t.Error("IsModelNotFound(nil) = true")
	}
}
