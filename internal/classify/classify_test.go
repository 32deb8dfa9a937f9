package classify

import "testing"

func TestClassify(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name  string
		text  string
		title string
		want  string
	}{
		{
			name:  "nda",
			text:  "The Receiving Party shall protect the Disclosing Party's Confidential Information and trade secrets.",
			title: "Mutual Non-Disclosure Agreement",
			want:  "nda",
		},
		{
			name:  "lease",
			text:  "Landlord leases to Tenant the Premises. Tenant shall pay rent monthly and a security deposit of two months.",
			title: "Residential Lease",
			want:  "lease",
		},
		{
			name:  "loan",
			text:  "Borrower promises to repay Lender the principal amount with interest rate of 8% per annum, secured by collateral.",
			title: "",
			want:  "loan",
		},
		{
			name:  "no signals",
			text:  "A short note about nothing in particular.",
			title: "",
			want:  "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := c.Classify(tt.text, tt.title)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
			if conf < 0.3 || conf > 0.95 {
				t.Errorf("confidence %f out of [0.3, 0.95]", conf)
			}
		})
	}
}

func TestClassifyTitleOutweighsBody(t *testing.T) {
	c := NewKeywordClassifier()
	// Body mentions employment twice; the title names the document and
	// counts triple, so the service agreement label wins.
	text := "The employee reports to the employer weekly."
	got, _ := c.Classify(text, "Statement of Work for service provider engagement")
	if got != "service_agreement" {
		t.Errorf("Classify() = %q, want service_agreement", got)
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"nda", "Non-Disclosure Agreement"},
		{"saas", "SaaS Agreement"},
		{"generic", "General Agreement"},
		{"", "General Agreement"},
	}

	for _, tt := range tests {
		if got := TypeName(tt.label); got != tt.want {
			t.Errorf("TypeName(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
